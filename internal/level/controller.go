package level

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"

	"github.com/ugaemi/campus-maze/internal/game"
	"github.com/ugaemi/campus-maze/internal/maze"
)

var (
	// ErrNoFreeCells is returned when a generated maze has nowhere to spawn.
	ErrNoFreeCells = errors.New("maze has no free cells")
	// ErrInvalidCommand is returned for a command the current state does not accept.
	ErrInvalidCommand = errors.New("command not valid in current state")
)

// Generator builds the maze for a level.
type Generator func(cols, rows int, rng *rand.Rand) *maze.Maze

// Options configures a Controller.
type Options struct {
	// Seed for maze carving and note placement. Zero picks a time-based seed.
	Seed int64
	// StackNotes allows several notes on the same cell.
	StackNotes bool
	Name       string
	Variant    game.Variant
	// Generator defaults to maze.Generate.
	Generator Generator
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		StackNotes: true,
		Name:       game.DefaultPlayerName,
		Variant:    game.VariantMale,
		Generator:  maze.Generate,
	}
}

// Controller owns a run: the current level's maze, walls, notes and movers,
// and the state machine that sequences levels. It is not safe for concurrent
// use; a single frame loop drives it.
type Controller struct {
	opts Options
	rng  *rand.Rand
	log  *slog.Logger

	runID   string
	state   game.State
	level   int
	name    string
	variant game.Variant

	grid       *maze.Maze
	free       []maze.Point
	walls      []game.Rect
	notes      *intmap.Map[int, *game.Note]
	nextNoteID int
	player     *game.Player
	pursuer    *game.Pursuer
	gate       *game.Gate

	// level spawn and gate cells, kept clear on respawn
	spawnCell maze.Point
	gateCell  maze.Point

	livesAtLevelStart int
}

// NewController creates a controller in the title state.
func NewController(opts Options) *Controller {
	if opts.Generator == nil {
		opts.Generator = maze.Generate
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Controller{
		opts: opts,
		rng:  rand.New(rand.NewSource(seed)),
	}
	c.reset()
	c.log.Info("run created", "seed", seed)
	return c
}

// reset discards all run state and returns to the title screen.
func (c *Controller) reset() {
	c.runID = uuid.New().String()
	c.log = slog.With("run", c.runID)
	c.state = game.StateTitle
	c.level = 1
	c.name = game.SanitizeName(c.opts.Name)
	c.variant = c.opts.Variant

	c.grid = nil
	c.free = nil
	c.walls = nil
	c.notes = intmap.New[int, *game.Note](game.NoteCount(game.MaxLevel))
	c.nextNoteID = 0
	c.player = nil
	c.pursuer = nil
	c.gate = nil
	c.spawnCell, c.gateCell = maze.Point{}, maze.Point{}
	c.livesAtLevelStart = 0
}

func (c *Controller) RunID() string      { return c.runID }
func (c *Controller) State() game.State  { return c.state }
func (c *Controller) Level() int         { return c.level }
func (c *Controller) Walls() []game.Rect { return c.walls }

// Player returns the player, or nil before the first level starts.
func (c *Controller) Player() *game.Player { return c.player }

// Pursuer returns the pursuer, or nil before the first level starts.
func (c *Controller) Pursuer() *game.Pursuer { return c.pursuer }

// Gate returns the exit gate, or nil before the first level starts.
func (c *Controller) Gate() *game.Gate { return c.gate }

// NoteCount returns how many notes are still on the field.
func (c *Controller) NoteCount() int { return c.notes.Len() }

// Notes returns the remaining notes ordered by ID.
func (c *Controller) Notes() []*game.Note {
	notes := make([]*game.Note, 0, c.notes.Len())
	c.notes.ForEach(func(_ int, n *game.Note) bool {
		notes = append(notes, n)
		return true
	})
	slices.SortFunc(notes, func(a, b *game.Note) int { return a.ID - b.ID })
	return notes
}

// Profile returns the configured display name and variant.
func (c *Controller) Profile() (string, game.Variant) {
	return c.name, c.variant
}

// SetProfile changes the display name and variant. Only allowed on the title screen.
func (c *Controller) SetProfile(name string, variant game.Variant) error {
	if c.state != game.StateTitle {
		return fmt.Errorf("%w: set profile in %s", ErrInvalidCommand, c.state)
	}
	c.name = game.SanitizeName(name)
	c.variant = variant
	return nil
}

// Handle applies a discrete command. Commands that do not fit the current
// state return ErrInvalidCommand and change nothing. A level that cannot be
// built returns ErrNoFreeCells and leaves the state as it was.
func (c *Controller) Handle(cmd Command) error {
	switch {
	case cmd == CommandStart && c.state == game.StateTitle:
		c.level = 1
		return c.startLevel()

	case cmd == CommandContinue && c.state == game.StateHit:
		c.respawn()
		c.state = game.StatePlay
		return nil

	case cmd == CommandContinue && c.state == game.StateLevelClear:
		return c.startLevel()

	case cmd == CommandRestart && c.state == game.StateGameOver:
		c.log.Info("run discarded", "level", c.level, "score", c.player.Score)
		c.reset()
		c.log.Info("run created")
		return nil
	}
	return fmt.Errorf("%w: %s in %s", ErrInvalidCommand, cmd, c.state)
}

// startLevel builds the current level from a fresh maze. The player keeps
// lives and score across levels; everything else is rebuilt.
func (c *Controller) startLevel() error {
	grid := c.opts.Generator(game.GridCols, game.GridRows, c.rng)
	free := grid.FreeCells()
	layout, ok := game.PlanLayout(free, game.NoteCount(c.level), c.opts.StackNotes, c.rng)
	if !ok {
		c.log.Error("level start refused", "level", c.level, "error", ErrNoFreeCells)
		return fmt.Errorf("level %d: %w", c.level, ErrNoFreeCells)
	}

	// Old level state is dropped only once the new one is known to be valid.
	c.grid = grid
	c.free = free
	c.walls = game.WallRects(grid)

	c.notes.Clear()
	for _, cell := range layout.Notes {
		c.nextNoteID++
		c.notes.Put(c.nextNoteID, &game.Note{ID: c.nextNoteID, Box: game.NoteRect(cell)})
	}

	start := game.CellRect(layout.Player)
	px, py := start.X+game.PlayerSpawnInset, start.Y+game.PlayerSpawnInset
	if c.player == nil {
		c.player = game.NewPlayer(c.name, c.variant, px, py)
	} else {
		c.player.SetPosition(px, py)
		c.player.ResetMovement()
	}

	c.gate = &game.Gate{Box: game.CellRect(layout.Gate)}
	c.spawnCell, c.gateCell = layout.Player, layout.Gate

	lair := game.CellRect(layout.Pursuer)
	c.pursuer = game.NewPursuer(lair.X, lair.Y, game.PursuerBaseSpeed, c.player.BaseSpeed)
	c.pursuer.Speed = c.pursuer.SpeedFor(c.level)

	c.livesAtLevelStart = c.player.Lives
	c.state = game.StatePlay

	c.log.Info("level started",
		"level", c.level,
		"cols", grid.Cols(),
		"rows", grid.Rows(),
		"walls", len(c.walls),
		"notes", c.notes.Len(),
		"pursuer_speed", c.pursuer.Speed,
	)
	return nil
}

// respawn moves the player near the top-left corner of the field and the
// pursuer near the bottom-right one. Neither lands on the level spawn or the
// gate unless the maze has no other free cell.
func (c *Controller) respawn() {
	width := float64(c.grid.Cols() * game.TileSize)
	height := float64(c.grid.Rows() * game.TileSize)

	home := game.CellAt(game.RespawnInset, game.RespawnInset)
	if cell, ok := game.NearestFreeExcept(c.free, home, c.spawnCell, c.gateCell); ok {
		r := game.CellRect(cell)
		c.player.SetPosition(r.X+game.PlayerSpawnInset, r.Y+game.PlayerSpawnInset)
	}

	corner := game.CellAt(width-game.RespawnCornerOffset, height-game.RespawnCornerOffset)
	if cell, ok := game.NearestFreeExcept(c.free, corner, c.spawnCell, c.gateCell); ok {
		r := game.CellRect(cell)
		c.pursuer.SetPosition(r.X, r.Y)
	}

	c.log.Debug("respawned", "player", c.player.Box, "pursuer", c.pursuer.Box)
}

// Step advances the simulation by one frame. It does nothing outside the
// play state. The pursuer reacts to the player position resolved this frame.
func (c *Controller) Step(in game.Intent) []game.Event {
	if c.state != game.StatePlay {
		return nil
	}

	c.player.Update(in, c.walls)
	c.pursuer.Update(c.player.Box, c.walls, c.level)

	var events []game.Event

	// Scan first, then remove, so the set is never mutated mid-iteration.
	taken := game.CollectNotes(c.player.Box, c.Notes())
	for _, id := range taken {
		c.notes.Del(id)
	}
	if len(taken) > 0 {
		c.player.AddScore(game.NoteScore * len(taken))
		c.player.Boost(game.BoostAmount, game.BoostFrames)
		events = append(events, game.Event{
			Kind:  game.EventCollected,
			Count: len(taken),
			Score: c.player.Score,
			Lives: c.player.Lives,
		})
		c.log.Debug("notes collected", "count", len(taken), "left", c.notes.Len())
	}

	if c.player.Box.Overlaps(c.pursuer.Box) {
		alive := c.player.Hit()
		if alive {
			c.state = game.StateHit
			c.log.Info("player caught", "level", c.level, "lives", c.player.Lives)
		} else {
			c.state = game.StateGameOver
			c.log.Info("game over", "level", c.level, "score", c.player.Score)
		}
		return append(events, game.Event{
			Kind:     game.EventCaught,
			Score:    c.player.Score,
			Lives:    c.player.Lives,
			GameOver: !alive,
		})
	}

	if c.player.Box.Overlaps(c.gate.Box) {
		bonus := game.GateBonus(c.livesAtLevelStart, c.player.Lives)
		c.player.AddScore(bonus)
		cleared := c.level
		c.level = game.NextLevel(c.level)
		c.state = game.StateLevelClear
		c.log.Info("level cleared", "level", cleared, "bonus", bonus, "score", c.player.Score)
		events = append(events, game.Event{
			Kind:  game.EventEscaped,
			Score: c.player.Score,
			Lives: c.player.Lives,
			Level: c.level,
			Bonus: bonus,
		})
	}

	return events
}
