// Command mazerunner opens the maze game window.
package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ugaemi/campus-maze/internal/config"
	"github.com/ugaemi/campus-maze/internal/ebitenui"
	"github.com/ugaemi/campus-maze/internal/game"
	"github.com/ugaemi/campus-maze/internal/level"
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
	g, err := ebitenui.New(ctrl, ebitenui.LoadAssets(cfg.AssetsDir))
	if err != nil {
		slog.Error("game setup failed", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(ebitenui.ScreenWidth*cfg.WindowScale, ebitenui.ScreenHeight*cfg.WindowScale)
	ebiten.SetWindowTitle("Campus Maze Runner")
	ebiten.SetTPS(game.TickRate)

	slog.Info("window starting", "run", ctrl.RunID(), "assets", cfg.AssetsDir, "scale", cfg.WindowScale)
	if err := ebiten.RunGame(g); err != nil {
		slog.Error("game exited", "error", err)
		os.Exit(1)
	}
}
