package clock

import "time"

// Clock supplies the current time. Business logic that cares about
// "now" (past-booking checks, same-day slot filtering, due dates)
// takes a Clock instead of calling time.Now directly, so tests can pin
// the moment.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by the wall clock, in UTC.
type System struct{}

func NewSystem() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a Clock frozen at a single instant, for tests.
type Fixed struct {
	t time.Time
}

func NewFixed(t time.Time) Fixed {
	return Fixed{t: t}
}

func (f Fixed) Now() time.Time {
	return f.t
}
