// Package maze builds perfect mazes on an odd-sized cell grid.
package maze

import (
	"math/rand"
	"strings"
)

// MinSize is the smallest grid edge: a single interior cell inside a wall ring.
const MinSize = 3

type Cell int

const (
	Wall Cell = iota
	Floor
)

func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	default:
		return "unknown"
	}
}

// Point is a grid coordinate.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Maze is a generated grid indexed [row][col].
type Maze struct {
	cells  [][]Cell
	rows   int
	cols   int
	carves int
}

// Start is the lattice cell carving begins from.
var Start = Point{Row: 1, Col: 1}

// lattice steps: right, left, down, up
var steps = [4]Point{{0, 2}, {0, -2}, {2, 0}, {-2, 0}}

// Generate carves a perfect maze of at least cols x rows cells.
// Even dimensions are bumped to the next odd value and anything below MinSize
// is clamped, so the result always has a wall border and a reachable exit.
func Generate(cols, rows int, rng *rand.Rand) *Maze {
	cols = normalize(cols)
	rows = normalize(rows)

	m := &Maze{rows: rows, cols: cols, cells: make([][]Cell, rows)}
	for r := range m.cells {
		m.cells[r] = make([]Cell, cols)
	}

	m.cells[Start.Row][Start.Col] = Floor
	stack := []Point{Start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		dirs := steps
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

		moved := false
		for _, d := range dirs {
			next := Point{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if !m.interior(next) || m.cells[next.Row][next.Col] != Wall {
				continue
			}
			m.cells[cur.Row+d.Row/2][cur.Col+d.Col/2] = Floor
			m.cells[next.Row][next.Col] = Floor
			m.carves++
			stack = append(stack, next)
			moved = true
			break
		}
		if !moved {
			stack = stack[:len(stack)-1]
		}
	}

	exit := m.Exit()
	m.cells[exit.Row][exit.Col] = Floor
	return m
}

func normalize(n int) int {
	if n < MinSize {
		return MinSize
	}
	if n%2 == 0 {
		n++
	}
	return n
}

func (m *Maze) interior(p Point) bool {
	return p.Row >= 1 && p.Row < m.rows-1 && p.Col >= 1 && p.Col < m.cols-1
}

// Rows returns the grid height.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the grid width.
func (m *Maze) Cols() int { return m.cols }

// Carves returns how many connector+target pairs were opened by the DFS.
func (m *Maze) Carves() int { return m.carves }

// Exit is the lattice cell diagonally opposite Start.
func (m *Maze) Exit() Point {
	return Point{Row: m.rows - 2, Col: m.cols - 2}
}

// At returns the cell at p. Out-of-range points read as Wall.
func (m *Maze) At(p Point) Cell {
	if p.Row < 0 || p.Row >= m.rows || p.Col < 0 || p.Col >= m.cols {
		return Wall
	}
	return m.cells[p.Row][p.Col]
}

// IsWall reports whether the cell at (row, col) is blocked.
func (m *Maze) IsWall(row, col int) bool {
	return m.At(Point{Row: row, Col: col}) == Wall
}

// FreeCells lists Floor cells in row-major order.
func (m *Maze) FreeCells() []Point {
	var free []Point
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if m.cells[r][c] == Floor {
				free = append(free, Point{Row: r, Col: c})
			}
		}
	}
	return free
}

// WallCells lists Wall cells in row-major order.
func (m *Maze) WallCells() []Point {
	var walls []Point
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if m.cells[r][c] == Wall {
				walls = append(walls, Point{Row: r, Col: c})
			}
		}
	}
	return walls
}

// String renders the grid with '#' for walls and '.' for floor.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow(m.rows * (m.cols + 1))
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if m.cells[r][c] == Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse builds a Maze from the String format. Rows must be equal length.
// Carves is left at zero.
func Parse(s string) *Maze {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	m := &Maze{rows: len(lines), cells: make([][]Cell, len(lines))}
	for r, line := range lines {
		m.cells[r] = make([]Cell, len(line))
		for c, ch := range line {
			if ch == '#' {
				m.cells[r][c] = Wall
			} else {
				m.cells[r][c] = Floor
			}
		}
		if len(line) > m.cols {
			m.cols = len(line)
		}
	}
	return m
}
