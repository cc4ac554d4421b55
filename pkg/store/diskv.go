package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/section"
	"tableflip.dev/dayplan/pkg/task"
)

// Bucket prefixes partition the key space. Task keys embed the date so
// a day's documents share a directory: "task-2026-03-10-<id>".
const (
	taskBucket    = "task"
	routineBucket = "routine"
	sectionBucket = "section"
)

// Load creates a Persistence backed by diskv using the provided
// config; a nil config loads the default one.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

func taskKey(t *task.Task) string {
	return fmt.Sprintf("%s-%s-%s", taskBucket, t.Date, t.ID)
}

func routineKey(r *routine.Routine) string {
	return fmt.Sprintf("%s-%s", routineBucket, r.ID)
}

func sectionKey(s *section.Section) string {
	return fmt.Sprintf("%s-%s", sectionBucket, s.ID)
}

func inBucket(key, bucket string) bool {
	return strings.HasPrefix(key, bucket+"-")
}

// taskDateOf extracts the date from a task key.
func taskDateOf(key string) string {
	rest := strings.TrimPrefix(key, taskBucket+"-")
	if len(rest) < len("2006-01-02") {
		return ""
	}
	return rest[:len("2006-01-02")]
}

func (p *persistence) readTask(key string) (*task.Task, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	t := &task.Task{}
	if err := json.Unmarshal(val, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *persistence) TasksOn(ctx context.Context, date string) []*task.Task {
	prefix := fmt.Sprintf("%s-%s-", taskBucket, date)
	all := make([]*task.Task, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		t, err := p.readTask(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, t)
	}
	sortTasks(all)
	return all
}

func (p *persistence) AllTasks(ctx context.Context) []*task.Task {
	all := make([]*task.Task, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if !inBucket(key, taskBucket) {
			continue
		}
		t, err := p.readTask(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, t)
	}
	sortTasks(all)
	return all
}

// SaveTask is a create-or-overwrite keyed by the task's id, which
// makes materializing a virtual instance idempotent under concurrent
// double invocation.
func (p *persistence) SaveTask(t *task.Task) error {
	if t.Date == "" {
		return errors.New("store: task date required")
	}
	t.EnsureID()
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return p.d.Write(taskKey(t), data)
}

func (p *persistence) DeleteTask(t *task.Task) error {
	return p.d.Erase(taskKey(t))
}

func (p *persistence) Routines(ctx context.Context) []*routine.Routine {
	all := make([]*routine.Routine, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if !inBucket(key, routineBucket) {
			continue
		}
		val, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		r := &routine.Routine{}
		if err := json.Unmarshal(val, r); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, r)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Title != all[j].Title {
			return all[i].Title < all[j].Title
		}
		return all[i].ID < all[j].ID
	})
	return all
}

func (p *persistence) SaveRoutine(r *routine.Routine) error {
	if r.ID == "" {
		return errors.New("store: routine id required")
	}
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return p.d.Write(routineKey(r), data)
}

func (p *persistence) DeleteRoutine(r *routine.Routine) error {
	return p.d.Erase(routineKey(r))
}

func (p *persistence) Sections(ctx context.Context) []*section.Section {
	all := make([]*section.Section, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if !inBucket(key, sectionBucket) {
			continue
		}
		val, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		s := &section.Section{}
		if err := json.Unmarshal(val, s); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, s)
	}
	section.Sort(all)
	return all
}

func (p *persistence) SaveSection(s *section.Section) error {
	if s.ID == "" {
		return errors.New("store: section id required")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return p.d.Write(sectionKey(s), data)
}

func (p *persistence) DeleteSection(s *section.Section) error {
	return p.d.Erase(sectionKey(s))
}

func sortTasks(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		left := tasks[i]
		right := tasks[j]
		if left.Date != right.Date {
			return left.Date < right.Date
		}
		return left.ID < right.ID
	})
}
