package level

// Command is a discrete input event that drives state transitions.
type Command int

const (
	CommandStart Command = iota
	CommandContinue
	CommandRestart
)

func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandContinue:
		return "continue"
	case CommandRestart:
		return "restart"
	default:
		return "unknown"
	}
}
