package game

import (
	"math/rand"
	"slices"

	"github.com/ugaemi/campus-maze/internal/maze"
)

// CellRect returns the pixel box of a grid cell.
func CellRect(p maze.Point) Rect {
	return Rect{
		X: float64(p.Col * TileSize),
		Y: float64(p.Row * TileSize),
		W: TileSize,
		H: TileSize,
	}
}

// WallRects converts every wall cell to its tile box.
func WallRects(m *maze.Maze) []Rect {
	cells := m.WallCells()
	walls := make([]Rect, 0, len(cells))
	for _, c := range cells {
		walls = append(walls, CellRect(c))
	}
	return walls
}

// NoteRect centers a note inside the given cell.
func NoteRect(p maze.Point) Rect {
	cell := CellRect(p)
	cx, cy := cell.Center()
	return Rect{X: cx - NoteSize/2, Y: cy - NoteSize/2, W: NoteSize, H: NoteSize}
}

// ChooseNoteCells picks n cells from free. With stack set, cells are drawn
// uniformly with repetition; otherwise they are distinct and the result is
// capped at len(free).
func ChooseNoteCells(free []maze.Point, n int, stack bool, rng *rand.Rand) []maze.Point {
	if len(free) == 0 || n <= 0 {
		return nil
	}

	if stack {
		cells := make([]maze.Point, n)
		for i := range cells {
			cells[i] = free[rng.Intn(len(free))]
		}
		return cells
	}

	if n > len(free) {
		n = len(free)
	}
	perm := rng.Perm(len(free))
	cells := make([]maze.Point, n)
	for i := range cells {
		cells[i] = free[perm[i]]
	}
	return cells
}

// NearestFree returns the free cell closest to target by grid distance.
// Ties go to the earlier cell in free. ok is false when free is empty.
func NearestFree(free []maze.Point, target maze.Point) (maze.Point, bool) {
	return NearestFreeExcept(free, target)
}

// NearestFreeExcept is NearestFree skipping the excluded cells. When every
// free cell is excluded it falls back to the excluded ones.
func NearestFreeExcept(free []maze.Point, target maze.Point, exclude ...maze.Point) (maze.Point, bool) {
	var best maze.Point
	bestDist, found := 0, false
	for _, p := range free {
		if slices.Contains(exclude, p) {
			continue
		}
		if d := gridDist(p, target); !found || d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	if !found && len(exclude) > 0 {
		return NearestFreeExcept(free, target)
	}
	return best, found
}

// CellAt returns the grid cell containing the pixel (x, y), clamped to the
// non-negative quadrant.
func CellAt(x, y float64) maze.Point {
	return maze.Point{
		Row: max(0, int(y)/TileSize),
		Col: max(0, int(x)/TileSize),
	}
}

func gridDist(a, b maze.Point) int {
	dr := a.Row - b.Row
	dc := a.Col - b.Col
	return dr*dr + dc*dc
}

// Layout is the derived placement for a level.
type Layout struct {
	Player  maze.Point
	Gate    maze.Point
	Pursuer maze.Point
	Notes   []maze.Point
}

// PlanLayout derives spawn cells from the row-major free list: the player
// starts on the first free cell, the gate sits on the last and the pursuer on
// the middle one. ok is false when free is empty.
func PlanLayout(free []maze.Point, notes int, stack bool, rng *rand.Rand) (Layout, bool) {
	if len(free) == 0 {
		return Layout{}, false
	}
	return Layout{
		Player:  free[0],
		Gate:    free[len(free)-1],
		Pursuer: free[len(free)/2],
		Notes:   ChooseNoteCells(free, notes, stack, rng),
	}, true
}
