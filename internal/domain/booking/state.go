package booking

import (
	"strings"
	"time"
)

// State classifies bookings relative to a point in time or by status. It is
// only used to filter queries and is never stored.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var knownStates = []State{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected}

// ParseState converts a case-insensitive token into a State.
func ParseState(token string) (State, error) {
	candidate := State(strings.ToUpper(strings.TrimSpace(token)))
	for _, s := range knownStates {
		if s == candidate {
			return s, nil
		}
	}
	return "", ErrUnknownState.Withf("Unknown state: %s", token)
}

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}

// Filter is a State evaluated at a fixed instant.
type Filter struct {
	State State
	Now   time.Time
}

// Matches reports whether b falls in the filter. Interval bounds are
// inclusive for CURRENT and exclusive for PAST and FUTURE.
func (f Filter) Matches(b *Booking) bool {
	switch f.State {
	case StateAll:
		return true
	case StateCurrent:
		return !b.Start().After(f.Now) && !b.End().Before(f.Now)
	case StatePast:
		return b.End().Before(f.Now)
	case StateFuture:
		return b.Start().After(f.Now)
	case StateWaiting:
		return b.Status() == StatusWaiting
	case StateRejected:
		return b.Status() == StatusRejected
	default:
		return false
	}
}
