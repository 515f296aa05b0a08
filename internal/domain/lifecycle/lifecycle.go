// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown hooks.
const DefaultTimeout = 10 * time.Second
