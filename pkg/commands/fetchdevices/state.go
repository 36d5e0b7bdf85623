package fetchdevices

// State is a step of a fetch run
type State int

const (
	StateValidatingInputs State = iota
	StateResolvingGroups
	StateFetchingDevices
	StateMerging
	StateWriting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateValidatingInputs:
		return "validating_inputs"
	case StateResolvingGroups:
		return "resolving_groups"
	case StateFetchingDevices:
		return "fetching_devices"
	case StateMerging:
		return "merging"
	case StateWriting:
		return "writing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
