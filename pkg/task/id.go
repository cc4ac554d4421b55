package task

import (
	"fmt"
	"strings"
)

// virtualPrefix marks deterministic routine-instance ids. The id is the
// whole dedup mechanism: the expander refuses to synthesize an instance
// whose id already exists, so it lives here as a shared constructor
// rather than ad hoc string building at the call sites.
const virtualPrefix = "routine-"

// InstanceID builds the deterministic id for a routine occurrence on a
// date, "routine-{routineID}-{date}".
func InstanceID(routineID, date string) string {
	return fmt.Sprintf("%s%s-%s", virtualPrefix, routineID, date)
}

// IsVirtualID reports whether an id follows the routine-instance form.
func IsVirtualID(id string) bool {
	return strings.HasPrefix(id, virtualPrefix)
}
