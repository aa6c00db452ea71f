// Package lifecycle holds shared constants for process start and stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown work such as
// pinging the database on start or draining the HTTP server on stop.
const DefaultTimeout = 10 * time.Second
