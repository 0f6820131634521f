// Package lifecycle holds shared application lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks so a stuck dependency
// cannot hang the process indefinitely.
const DefaultTimeout = 10 * time.Second
