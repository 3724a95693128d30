package availability

type Transition string

const (
	BecameFull    Transition = "became_full"
	BecameOpen    Transition = "became_open"
	BecameBlocked Transition = "became_blocked"
)

// TransitionBetween returns the state change from prev to next, if any.
// A nil prev is the Draft state.
func TransitionBetween(prev, next *Slot) (Transition, bool) {
	if next == nil {
		return "", false
	}
	to := next.State()
	if prev != nil && prev.State() == to {
		return "", false
	}
	switch to {
	case StateFull:
		return BecameFull, true
	case StateBlocked:
		return BecameBlocked, true
	default:
		return BecameOpen, true
	}
}
