// Package lifecycle holds shared shutdown constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of long-running components.
const DefaultTimeout = 10 * time.Second
