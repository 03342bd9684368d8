// Command mazesim plays the maze headlessly with a random-walk autopilot and
// logs every event. Useful for soak runs against the level controller.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ugaemi/campus-maze/internal/config"
	"github.com/ugaemi/campus-maze/internal/game"
	"github.com/ugaemi/campus-maze/internal/level"
	"github.com/ugaemi/campus-maze/internal/runner"
)

func main() {
	cfg := config.Load()
	config.SetupLogger(cfg)

	opts := level.DefaultOptions()
	opts.Seed = cfg.Seed
	opts.StackNotes = cfg.StackNotes
	opts.Name = cfg.PlayerName
	opts.Variant = game.ParseVariant(cfg.PlayerVariant)

	ctrl := level.NewController(opts)
	r := runner.New(ctrl, runner.NewRandomWalk(cfg.Seed, game.TickRate/2), cfg.SimAutoContinue)
	r.OnEvent = func(ev game.Event) {
		slog.Info("event", "kind", ev.Kind, "score", ev.Score, "lives", ev.Lives,
			"level", ev.Level, "bonus", ev.Bonus, "game_over", ev.GameOver)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.SimDuration)
	defer cancel()

	slog.Info("simulation starting", "run", ctrl.RunID(), "duration", cfg.SimDuration,
		"auto_continue", cfg.SimAutoContinue)

	err := r.Run(ctx)
	snap := r.Snapshot()
	switch {
	case err == nil, errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		slog.Info("simulation stopped", "state", snap.State, "frames", r.Frames(),
			"level", snap.HUD.Level, "score", snap.HUD.Score, "lives", snap.HUD.Lives)
	default:
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}
