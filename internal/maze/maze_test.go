package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestGenerate_FiveByFive(t *testing.T) {
	m := Generate(5, 5, newRand(1))

	assert.Equal(t, 5, m.Rows())
	assert.Equal(t, 5, m.Cols())
	assert.Equal(t, Floor, m.At(Point{1, 1}))
	assert.Equal(t, Wall, m.At(Point{0, 0}))
}

func TestGenerate_Dimensions(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		wantCols   int
		wantRows   int
	}{
		{"already odd", 7, 9, 7, 9},
		{"even bumped", 22, 15, 23, 15},
		{"both even", 4, 6, 5, 7},
		{"zero", 0, 0, 3, 3},
		{"negative", -5, -2, 3, 3},
		{"one", 1, 1, 3, 3},
		{"two", 2, 2, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Generate(tt.cols, tt.rows, newRand(7))
			assert.Equal(t, tt.wantCols, m.Cols())
			assert.Equal(t, tt.wantRows, m.Rows())
			assert.Equal(t, Floor, m.At(Start))
			assert.Equal(t, Floor, m.At(m.Exit()))
		})
	}
}

func TestGenerate_MinimumGridIsSingleCell(t *testing.T) {
	m := Generate(0, -1, newRand(3))

	free := m.FreeCells()
	require.Len(t, free, 1)
	assert.Equal(t, Start, free[0])
	assert.Equal(t, 0, m.Carves())
}

func TestGenerate_BorderIsWall(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		m := Generate(23, 15, newRand(seed))
		for c := 0; c < m.Cols(); c++ {
			assert.True(t, m.IsWall(0, c), "seed %d: top border col %d", seed, c)
			assert.True(t, m.IsWall(m.Rows()-1, c), "seed %d: bottom border col %d", seed, c)
		}
		for r := 0; r < m.Rows(); r++ {
			assert.True(t, m.IsWall(r, 0), "seed %d: left border row %d", seed, r)
			assert.True(t, m.IsWall(r, m.Cols()-1), "seed %d: right border row %d", seed, r)
		}
	}
}

func TestGenerate_SpanningTree(t *testing.T) {
	sizes := [][2]int{{5, 5}, {9, 7}, {23, 15}, {41, 41}}

	for _, size := range sizes {
		for seed := int64(0); seed < 10; seed++ {
			m := Generate(size[0], size[1], newRand(seed))
			free := m.FreeCells()

			assert.Equal(t, m.Carves()*2+1, len(free), "floor count must match carve count")

			visited, edges := walk(m)
			assert.Equal(t, len(free), visited, "every floor cell reachable from start")
			// A connected graph with V nodes is a tree iff it has V-1 edges.
			assert.Equal(t, visited-1, edges, "floor cells must form a tree")
		}
	}
}

func TestGenerate_AllLatticeCellsVisited(t *testing.T) {
	m := Generate(15, 11, newRand(42))
	for r := 1; r < m.Rows()-1; r += 2 {
		for c := 1; c < m.Cols()-1; c += 2 {
			assert.Equal(t, Floor, m.At(Point{r, c}), "lattice cell (%d,%d)", r, c)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(23, 15, newRand(99))
	b := Generate(23, 15, newRand(99))
	assert.Equal(t, a.String(), b.String())

	c := Generate(23, 15, newRand(100))
	assert.NotEqual(t, a.String(), c.String())
}

func TestFreeCells_RowMajor(t *testing.T) {
	m := Parse("#####\n#...#\n#.#.#\n#####\n")

	free := m.FreeCells()
	require.Len(t, free, 5)
	assert.Equal(t, Point{1, 1}, free[0])
	assert.Equal(t, Point{2, 3}, free[len(free)-1])
	assert.Len(t, m.WallCells(), 15)
}

func TestParse_RoundTripsString(t *testing.T) {
	m := Generate(11, 9, newRand(5))
	assert.Equal(t, m.String(), Parse(m.String()).String())
}

func TestAt_OutOfRangeIsWall(t *testing.T) {
	m := Generate(5, 5, newRand(1))
	assert.Equal(t, Wall, m.At(Point{-1, 0}))
	assert.Equal(t, Wall, m.At(Point{0, 99}))
}

// walk runs a BFS from Start and returns the visited count and the number of
// distinct undirected floor-to-floor adjacencies seen.
func walk(m *Maze) (visited, edges int) {
	seen := map[Point]bool{Start: true}
	queue := []Point{Start}
	neighbours := []Point{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		visited++
		for _, d := range neighbours {
			n := Point{p.Row + d.Row, p.Col + d.Col}
			if m.At(n) != Floor {
				continue
			}
			// count each undirected edge once
			if p.Row < n.Row || (p.Row == n.Row && p.Col < n.Col) {
				edges++
			}
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return visited, edges
}
