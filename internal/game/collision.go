package game

// Rect is an axis-aligned box in pixel space. X, Y is the top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether two boxes share interior area. Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// At returns a copy of the box with its top-left moved to (x, y).
func (r Rect) At(x, y float64) Rect {
	r.X, r.Y = x, y
	return r
}

// Resolve moves box by (dx, dy), X axis first then Y, and pushes it back out of
// any obstacle it enters. On each axis the leading edge snaps to the nearest
// obstacle edge in the direction of travel, so sliding along a wall works when
// moving diagonally. When several obstacles overlap on one axis the most
// restrictive snap wins regardless of obstacle order.
func Resolve(box Rect, dx, dy float64, obstacles []Rect) Rect {
	if dx != 0 {
		box.X += dx
		box.X = clampX(box, dx, obstacles)
	}
	if dy != 0 {
		box.Y += dy
		box.Y = clampY(box, dy, obstacles)
	}
	return box
}

func clampX(box Rect, dx float64, obstacles []Rect) float64 {
	x := box.X
	for _, o := range obstacles {
		if !box.Overlaps(o) {
			continue
		}
		if dx > 0 {
			if snap := o.X - box.W; snap < x {
				x = snap
			}
		} else if snap := o.Right(); snap > x {
			x = snap
		}
	}
	return x
}

func clampY(box Rect, dy float64, obstacles []Rect) float64 {
	y := box.Y
	for _, o := range obstacles {
		if !box.Overlaps(o) {
			continue
		}
		if dy > 0 {
			if snap := o.Y - box.H; snap < y {
				y = snap
			}
		} else if snap := o.Bottom(); snap > y {
			y = snap
		}
	}
	return y
}

// OverlapsAny reports whether box overlaps at least one obstacle.
func OverlapsAny(box Rect, obstacles []Rect) bool {
	for _, o := range obstacles {
		if box.Overlaps(o) {
			return true
		}
	}
	return false
}

// sign returns -1, 0 or 1.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
