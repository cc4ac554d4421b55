// Package info provides the runner logic for showing store details.
package info

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/dayplan/pkg/store"
)

// Info prints the resolved configuration and store contents summary.
type Info struct {
	Config      store.Config
	Persistence store.Persistence
}

// Do executes the info operation.
func (n *Info) Do(ctx context.Context) error {
	if override := os.Getenv("DAYPLAN_CONFIG_PATH"); override != "" {
		fmt.Println("DAYPLAN_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("DAYPLAN_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	fmt.Println("Config.path: ", n.Config.BasePath())

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	fmt.Printf("Tasks: %d\n", len(n.Persistence.AllTasks(ctx)))
	fmt.Printf("Routines: %d\n", len(n.Persistence.Routines(ctx)))
	fmt.Printf("Sections: %d\n", len(n.Persistence.Sections(ctx)))
	return nil
}
