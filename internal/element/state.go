package element

// State is a semantic descriptor of a control, used to pick colours.
type State int

const (
	StateDefault State = iota
	StateTrue
	StateFalse
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateTrue:
		return "true"
	case StateFalse:
		return "false"
	case StateInvalid:
		return "invalid"
	}
	return "default"
}
