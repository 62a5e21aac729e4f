// Package lifecycle holds constants shared by components that participate
// in the application's startup and shutdown sequence.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of a single component.
const DefaultTimeout = 10 * time.Second
