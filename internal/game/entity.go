package game

import "encoding/json"

// Kind tags an entity for asset lookup. The simulation only cares about boxes.
type Kind int

const (
	KindWall Kind = iota
	KindNote
	KindGate
	KindPlayer
	KindPursuer
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindNote:
		return "note"
	case KindGate:
		return "gate"
	case KindPlayer:
		return "player"
	case KindPursuer:
		return "pursuer"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Kind as a string.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Entity is anything with a position box that a renderer can draw.
type Entity interface {
	Kind() Kind
	Bounds() Rect
}

// Note is a collectible that grants score and a speed boost.
type Note struct {
	ID  int  `json:"id"`
	Box Rect `json:"box"`
}

func (n *Note) Kind() Kind   { return KindNote }
func (n *Note) Bounds() Rect { return n.Box }

// Gate is the level exit.
type Gate struct {
	Box Rect `json:"box"`
}

func (g *Gate) Kind() Kind   { return KindGate }
func (g *Gate) Bounds() Rect { return g.Box }

// Wall is a solid tile.
type Wall struct {
	Box Rect `json:"box"`
}

func (w Wall) Kind() Kind   { return KindWall }
func (w Wall) Bounds() Rect { return w.Box }
