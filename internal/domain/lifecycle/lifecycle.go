// Package lifecycle holds shared shutdown constants for long-running components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and stores.
const DefaultTimeout = 30 * time.Second
