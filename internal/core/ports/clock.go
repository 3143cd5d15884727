package ports

import "time"

// Clock timestamps tracking records. Tests inject a fixed clock.
type Clock interface {
	Now() time.Time
}
