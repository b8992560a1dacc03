package fontfx

import (
	"fmt"
	"os"
	"time"
)

// globalDebug enables transition and scheduler tracing on stderr. Objects do
// not hold a pointer to any shared owner, so the flag is package-wide.
var globalDebug bool

// SetDebugMode enables or disables debug tracing. When enabled every state
// notification and every fired scheduler bucket is written to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug tracing is enabled.
func DebugMode() bool {
	return globalDebug
}

func debugTransition(ev StateEvent) {
	_, _ = fmt.Fprintf(os.Stderr, "[fontfx] %T %s -> %s\n", ev.Source, ev.Kind, ev.State)
}

func debugBucket(due time.Time, now time.Time, tasks int) {
	_, _ = fmt.Fprintf(os.Stderr, "[fontfx] scheduler: fired %d task(s) due %s (late by %v)\n",
		tasks, due.Format(time.RFC3339Nano), now.Sub(due))
}
