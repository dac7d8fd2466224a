package game

// Action represents a player decision during a hand
type Action int

const (
	Hit Action = iota
	Stand
	DoubleDown
	Split
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case DoubleDown:
		return "double down"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

func containsAction(actions []Action, action Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
