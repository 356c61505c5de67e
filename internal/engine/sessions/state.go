package sessions

// State is the lifecycle state of the session for one key.
type State uint8

const (
	// Absent means no session exists for the key.
	Absent State = iota
	// Launching means a process is being started or connected.
	Launching
	// Active means the session accepts calls.
	Active
	// Closing means the session is being shut down.
	Closing
	// Failed means the session stopped responding and awaits removal.
	Failed
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Launching:
		return "launching"
	case Active:
		return "active"
	case Closing:
		return "closing"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// canMove reports whether the lifecycle allows from -> to.
func canMove(from, to State) bool {
	switch from {
	case Absent:
		return to == Launching
	case Launching:
		return to == Active || to == Absent
	case Active:
		return to == Closing || to == Failed
	case Closing, Failed:
		return to == Absent
	default:
		return false
	}
}
