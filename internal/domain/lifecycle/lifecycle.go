// Package lifecycle holds shared process lifecycle settings.
package lifecycle

import "time"

// DefaultTimeout bounds each fx start/stop hook.
const DefaultTimeout = 15 * time.Second
