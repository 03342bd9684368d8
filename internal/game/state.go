package game

import "encoding/json"

// State is the run state machine value.
type State int

const (
	StateTitle State = iota
	StatePlay
	StateHit
	StateLevelClear
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlay:
		return "play"
	case StateHit:
		return "hit"
	case StateLevelClear:
		return "level_clear"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes State as a string.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// EventKind identifies something the presentation layer may react to.
type EventKind int

const (
	EventCollected EventKind = iota
	EventCaught
	EventEscaped
)

func (k EventKind) String() string {
	switch k {
	case EventCollected:
		return "collected"
	case EventCaught:
		return "caught"
	case EventEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes EventKind as a string.
func (k EventKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Event is emitted by a simulation step.
type Event struct {
	Kind EventKind `json:"kind"`

	// Collected: notes picked up this frame.
	Count int `json:"count,omitempty"`
	// Score after the event.
	Score int `json:"score"`
	// Caught: lives left, and whether that ended the run.
	Lives    int  `json:"lives"`
	GameOver bool `json:"game_over,omitempty"`
	// Escaped: level that will be played next, and the bonus awarded.
	Level int `json:"level,omitempty"`
	Bonus int `json:"bonus,omitempty"`
}
