// Package lifecycle holds values shared by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start or stop hook.
const DefaultTimeout = 15 * time.Second
