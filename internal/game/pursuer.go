package game

// Pursuer chases a target by moving along the sign of the offset on each axis.
// It does not path-find and can stall against a wall across its heading.
type Pursuer struct {
	Box       Rect    `json:"box"`
	BaseSpeed float64 `json:"base_speed"`
	Speed     float64 `json:"speed"`

	// speedLimit is the player's base speed; Speed always stays below it.
	speedLimit float64
}

// NewPursuer places a pursuer at (x, y). A base speed that is not strictly
// below playerBase is pulled down so the level stays winnable.
func NewPursuer(x, y, baseSpeed, playerBase float64) *Pursuer {
	h := &Pursuer{
		Box:        Rect{X: x, Y: y, W: PursuerSize, H: PursuerSize},
		BaseSpeed:  baseSpeed,
		speedLimit: playerBase,
	}
	h.BaseSpeed = h.clamp(h.BaseSpeed)
	h.Speed = h.BaseSpeed
	return h
}

func (h *Pursuer) Kind() Kind   { return KindPursuer }
func (h *Pursuer) Bounds() Rect { return h.Box }

func (h *Pursuer) SetPosition(x, y float64) {
	h.Box = h.Box.At(x, y)
}

// SpeedFor returns the speed used on the given level.
func (h *Pursuer) SpeedFor(level int) float64 {
	if level < 1 {
		level = 1
	}
	return h.clamp(h.BaseSpeed + PursuerLevelIncrement*float64(level-1))
}

func (h *Pursuer) clamp(speed float64) float64 {
	if speed < h.speedLimit {
		return speed
	}
	speed = max(PursuerMinSpeed, h.speedLimit-PursuerFallbackGap)
	if speed >= h.speedLimit {
		speed = h.speedLimit / 2
	}
	return speed
}

// Update steps one frame toward target.
func (h *Pursuer) Update(target Rect, walls []Rect, level int) {
	h.Speed = h.SpeedFor(level)
	dx := sign(target.X-h.Box.X) * h.Speed
	dy := sign(target.Y-h.Box.Y) * h.Speed
	h.Box = Resolve(h.Box, dx, dy, walls)
}
