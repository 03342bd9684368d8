package runner

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/campus-maze/internal/game"
	"github.com/ugaemi/campus-maze/internal/level"
	"github.com/ugaemi/campus-maze/internal/maze"
)

const corridor = "" +
	"#######\n" +
	"#.....#\n" +
	"#######\n"

func newController() *level.Controller {
	opts := level.DefaultOptions()
	opts.Seed = 7
	opts.Generator = func(int, int, *rand.Rand) *maze.Maze {
		return maze.Parse(corridor)
	}
	return level.NewController(opts)
}

var holdRight = InputFunc(func(game.State) game.Intent {
	return game.Intent{Right: true}
})

var idle = InputFunc(func(game.State) game.Intent {
	return game.Intent{}
})

func TestTick_StartsRun(t *testing.T) {
	r := New(newController(), idle, false)
	assert.Equal(t, game.StateTitle, r.Snapshot().State)

	_, finished, err := r.Tick()

	require.NoError(t, err)
	assert.False(t, finished)
	assert.Equal(t, game.StatePlay, r.Snapshot().State)
	assert.Equal(t, 1, r.Frames())
}

func TestTick_PlaysToGameOverWithAutoContinue(t *testing.T) {
	r := New(newController(), holdRight, true)

	var caught int
	finished := false
	for i := 0; i < 5000 && !finished; i++ {
		events, done, err := r.Tick()
		require.NoError(t, err)
		for _, ev := range events {
			if ev.Kind == game.EventCaught {
				caught++
			}
		}
		finished = done
	}

	require.True(t, finished, "run should end in game over")
	snap := r.Snapshot()
	assert.Equal(t, game.StateGameOver, snap.State)
	assert.Equal(t, 0, snap.HUD.Lives)
	assert.Equal(t, game.StartingLives, caught)
}

func TestTick_WaitsWithoutAutoContinue(t *testing.T) {
	r := New(newController(), holdRight, false)

	for i := 0; i < 500 && r.Snapshot().State != game.StateHit; i++ {
		_, _, err := r.Tick()
		require.NoError(t, err)
	}
	require.Equal(t, game.StateHit, r.Snapshot().State)

	for i := 0; i < 10; i++ {
		r.Tick()
	}
	assert.Equal(t, game.StateHit, r.Snapshot().State)
	assert.Equal(t, 2, r.Snapshot().HUD.Lives)
}

func TestTick_ReportsRefusedLevel(t *testing.T) {
	opts := level.DefaultOptions()
	opts.Generator = func(int, int, *rand.Rand) *maze.Maze {
		return maze.Parse("###\n###\n###\n")
	}
	r := New(level.NewController(opts), idle, true)

	_, _, err := r.Tick()

	assert.ErrorIs(t, err, level.ErrNoFreeCells)
	assert.Equal(t, game.StateTitle, r.Snapshot().State)
}

func TestRun_StopsOnStop(t *testing.T) {
	r := New(newController(), idle, false)
	r.interval = time.Millisecond

	errCh := make(chan error, 1)
	go func() { errCh <- r.Run(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	r.Stop()
	r.Stop() // double stop is safe

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("run did not stop")
	}
	assert.Positive(t, r.Frames())
}

func TestRun_StopsOnCancel(t *testing.T) {
	r := New(newController(), idle, false)
	r.interval = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRun_EndsOnGameOver(t *testing.T) {
	r := New(newController(), holdRight, true)
	r.interval = time.Millisecond

	var mu sync.Mutex
	var kinds []game.EventKind
	r.OnEvent = func(ev game.Event) {
		mu.Lock()
		kinds = append(kinds, ev.Kind)
		mu.Unlock()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, r.Run(ctx))
	assert.Equal(t, game.StateGameOver, r.Snapshot().State)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, kinds, game.EventCaught)
}

func TestRandomWalk(t *testing.T) {
	w := NewRandomWalk(3, 4)

	first := w.Next(game.StatePlay)
	x, y := first.Axes()
	assert.True(t, x != 0 || y != 0)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, w.Next(game.StatePlay), "intent held for the hold period")
	}

	for i := 0; i < 200; i++ {
		x, y := w.Next(game.StatePlay).Axes()
		assert.True(t, x != 0 || y != 0, "never idle")
	}
}
