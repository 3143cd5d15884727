// Package clock provides the wall clock used outside tests.
package clock

import "time"

// System implements ports.Clock with the current UTC time, truncated to the
// microsecond resolution of a PostgreSQL timestamptz.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
