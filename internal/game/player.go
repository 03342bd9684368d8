package game

import (
	"encoding/json"
	"strings"
)

// Variant selects the player skin. It has no gameplay effect.
type Variant int

const (
	VariantMale Variant = iota
	VariantFemale
)

func (v Variant) String() string {
	switch v {
	case VariantFemale:
		return "female"
	default:
		return "male"
	}
}

// ParseVariant maps "m", "male", "F", "Female"... to a Variant. Anything not
// starting with f is male.
func ParseVariant(s string) Variant {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "f") {
		return VariantFemale
	}
	return VariantMale
}

// MarshalJSON serializes Variant as a string.
func (v Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON deserializes Variant from a string.
func (v *Variant) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = ParseVariant(s)
	return nil
}

// Intent is one frame of directional input. Any combination may be held.
type Intent struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// Axes converts the held directions into -1/0/1 per axis. Opposite keys cancel.
func (in Intent) Axes() (float64, float64) {
	var x, y float64
	if in.Left {
		x--
	}
	if in.Right {
		x++
	}
	if in.Up {
		y--
	}
	if in.Down {
		y++
	}
	return x, y
}

type Player struct {
	Name      string  `json:"name"`
	Variant   Variant `json:"variant"`
	Box       Rect    `json:"box"`
	BaseSpeed float64 `json:"base_speed"`
	Speed     float64 `json:"speed"`
	BoostLeft int     `json:"boost_left"`
	Lives     int     `json:"lives"`
	Score     int     `json:"score"`
}

func NewPlayer(name string, variant Variant, x, y float64) *Player {
	return &Player{
		Name:      SanitizeName(name),
		Variant:   variant,
		Box:       Rect{X: x, Y: y, W: PlayerSize, H: PlayerSize},
		BaseSpeed: PlayerBaseSpeed,
		Speed:     PlayerBaseSpeed,
		Lives:     StartingLives,
	}
}

// SanitizeName trims the name, drops non-printable runes and truncates to
// MaxNameLength. An empty result falls back to DefaultPlayerName.
func SanitizeName(name string) string {
	var b strings.Builder
	n := 0
	for _, r := range strings.TrimSpace(name) {
		if n == MaxNameLength {
			break
		}
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
		n++
	}
	if b.Len() == 0 {
		return DefaultPlayerName
	}
	return b.String()
}

func (p *Player) Kind() Kind { return KindPlayer }
func (p *Player) Bounds() Rect { return p.Box }

func (p *Player) SetPosition(x, y float64) {
	p.Box = p.Box.At(x, y)
}

// Update moves the player one frame along the held directions, resolving
// against walls, then advances the boost countdown.
func (p *Player) Update(in Intent, walls []Rect) {
	ax, ay := in.Axes()
	p.Box = Resolve(p.Box, ax*p.Speed, ay*p.Speed, walls)

	if p.BoostLeft > 0 {
		p.BoostLeft--
		if p.BoostLeft == 0 {
			p.Speed = p.BaseSpeed
		}
	}
}

// Boost raises speed to base+amount (capped at PlayerMaxSpeed) for the given
// number of frames. Boosting again while active only refreshes the countdown.
func (p *Player) Boost(amount float64, frames int) {
	p.Speed = min(p.BaseSpeed+amount, PlayerMaxSpeed)
	p.BoostLeft = frames
}

// IsBoosted reports whether a boost countdown is running.
func (p *Player) IsBoosted() bool {
	return p.BoostLeft > 0
}

// Hit removes a life and reports whether any remain.
func (p *Player) Hit() bool {
	if p.Lives > 0 {
		p.Lives--
	}
	return p.Lives > 0
}

func (p *Player) AddScore(points int) {
	if points > 0 {
		p.Score += points
	}
}

// ResetMovement drops any running boost, used when a level is rebuilt.
func (p *Player) ResetMovement() {
	p.Speed = p.BaseSpeed
	p.BoostLeft = 0
}
