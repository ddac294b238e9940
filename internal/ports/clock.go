package ports

import (
	"time"
)

// Clock defines where "now" comes from
// This is a PORT - adapters (system, fixed) will implement it
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC
type SystemClock struct{}

// Now returns the current UTC time
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
