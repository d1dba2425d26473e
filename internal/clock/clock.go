package clock

import "time"

// Clock is the source of "now" for every rule that depends on the current
// time (past-slot filtering, verification stamps, cancellation stamps).
type Clock interface {
	Now() time.Time
}

type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Fixed always returns T.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
