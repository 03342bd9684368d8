// Package ebitenui renders a level controller in a desktop window and maps
// keyboard input onto it.
package ebitenui

import (
	"bytes"
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ugaemi/campus-maze/internal/game"
	"github.com/ugaemi/campus-maze/internal/level"
)

// Logical screen size: the odd-normalized grid in pixels.
const (
	ScreenWidth  = (game.GridCols | 1) * game.TileSize
	ScreenHeight = (game.GridRows | 1) * game.TileSize
)

const bannerSeconds = 0.4

// Game implements ebiten.Game on top of a level controller. Pausing is
// handled here; the controller never sees it.
type Game struct {
	ctrl   *level.Controller
	assets *Assets
	audio  *audio.Context

	face    *text.GoTextFace
	bigFace *text.GoTextFace

	name    string
	variant game.Variant
	typed   []rune

	paused      bool
	lastState   game.State
	banner      *gween.Tween
	bannerAlpha float32
	status      string
}

// New creates the window game. Audio is only initialised when at least one
// sound cue loaded.
func New(ctrl *level.Controller, assets *Assets) (*Game, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}

	_, variant := ctrl.Profile()
	g := &Game{
		ctrl:      ctrl,
		assets:    assets,
		face:      &text.GoTextFace{Source: regular, Size: 20},
		bigFace:   &text.GoTextFace{Source: bold, Size: 48},
		variant:   variant,
		lastState: ctrl.State(),
	}
	if len(assets.Sounds) > 0 {
		g.audio = audio.NewContext(sampleRate)
	}
	return g, nil
}

func (g *Game) Update() error {
	switch g.ctrl.State() {
	case game.StateTitle:
		g.updateTitle()

	case game.StatePlay:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.paused = !g.paused
		}
		if !g.paused {
			g.play(g.ctrl.Step(intentFrom(ebiten.IsKeyPressed)))
		}

	case game.StateHit, game.StateLevelClear:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.command(level.CommandContinue)
		}

	case game.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.command(level.CommandRestart)
			g.name = ""
			_, g.variant = g.ctrl.Profile()
		}
	}

	if st := g.ctrl.State(); st != g.lastState {
		g.lastState = st
		g.paused = false
		g.banner = gween.New(0, 1, bannerSeconds, ease.OutQuad)
		g.bannerAlpha = 0
	}
	if g.banner != nil {
		alpha, done := g.banner.Update(1 / float32(game.TickRate))
		g.bannerAlpha = alpha
		if done {
			g.banner = nil
		}
	}
	return nil
}

func (g *Game) updateTitle() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.variant = game.VariantMale
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.variant = game.VariantFemale
	}
	g.typed = ebiten.AppendInputChars(g.typed[:0])
	g.name = editName(g.name, g.typed, inpututil.IsKeyJustPressed(ebiten.KeyBackspace))

	if !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	name := strings.TrimSpace(g.name)
	if name == "" {
		name, _ = g.ctrl.Profile()
	}
	if err := g.ctrl.SetProfile(name, g.variant); err != nil {
		g.fail(err)
		return
	}
	g.command(level.CommandStart)
}

func (g *Game) command(cmd level.Command) {
	if err := g.ctrl.Handle(cmd); err != nil {
		g.fail(err)
		return
	}
	g.status = ""
}

func (g *Game) fail(err error) {
	slog.Warn("command refused", "error", err)
	g.status = err.Error()
}

func (g *Game) play(events []game.Event) {
	if g.audio == nil {
		return
	}
	for _, ev := range events {
		if b := g.assets.Sounds[ev.Kind]; b != nil {
			g.audio.NewPlayerFromBytes(b).Play()
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.ctrl.Snapshot()

	switch snap.State {
	case game.StateTitle:
		g.drawTitle(screen)
	case game.StateGameOver:
		g.drawGameOver(screen, snap)
	default:
		g.drawField(screen, snap)
		g.drawHUD(screen, snap)
		switch {
		case snap.State == game.StateHit:
			g.drawBanner(screen, "You were caught! Press ENTER to continue", colorRed)
		case snap.State == game.StateLevelClear:
			g.drawBanner(screen, fmt.Sprintf("Level cleared! Press ENTER for level %d", snap.HUD.Level), colorGold)
		case g.paused:
			g.drawBanner(screen, "Paused (P to resume)", color.White)
		}
	}

	if g.status != "" {
		g.drawText(screen, g.status, g.face, 8, ScreenHeight-28, colorRed, text.AlignStart)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	screen.Fill(color.Black)
	cx := float64(ScreenWidth) / 2
	g.drawText(screen, "Campus Maze Runner", g.bigFace, cx, 120, color.White, text.AlignCenter)
	g.drawText(screen, "Press ENTER to Start", g.face, cx, 260, color.White, text.AlignCenter)
	variant := "Male"
	if g.variant == game.VariantFemale {
		variant = "Female"
	}
	g.drawText(screen, fmt.Sprintf("Selected: %s (M/F to toggle)", variant), g.face, cx, 300, color.White, text.AlignCenter)
	g.drawText(screen, fmt.Sprintf("Name: %s_", g.name), g.face, cx, 340, color.White, text.AlignCenter)
}

func (g *Game) drawGameOver(screen *ebiten.Image, snap level.Snapshot) {
	screen.Fill(color.Black)
	cx := float64(ScreenWidth) / 2
	g.drawText(screen, "GAME OVER", g.bigFace, cx, 180, fade(colorRed, g.alpha()), text.AlignCenter)
	g.drawText(screen, fmt.Sprintf("%s scored %d on level %d", snap.Name, snap.HUD.Score, snap.HUD.Level),
		g.face, cx, 250, color.White, text.AlignCenter)
	g.drawText(screen, "Press R or ENTER to Restart", g.face, cx, 290, color.White, text.AlignCenter)
}

func (g *Game) drawField(screen *ebiten.Image, snap level.Snapshot) {
	screen.Fill(colorFloor)

	for _, s := range snap.Sprites {
		b := s.Box
		switch s.Kind {
		case game.KindWall:
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colorWallSide, false)
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H)-6, colorWallTop, false)
		case game.KindGate:
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colorGold, false)
		case game.KindNote:
			drawSprite(screen, g.assets.Note, b)
		case game.KindPursuer:
			drawSprite(screen, g.assets.Pursuer, b)
		case game.KindPlayer:
			img := g.assets.Boy
			if snap.Variant == game.VariantFemale {
				img = g.assets.Girl
			}
			drawSprite(screen, img, b)
			cx, _ := b.Center()
			g.drawText(screen, snap.Name, g.face, cx, b.Y-22, color.White, text.AlignCenter)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, snap level.Snapshot) {
	vector.DrawFilledRect(screen, 4, 4, 300, 28, color.RGBA{0, 0, 0, 160}, false)
	hud := fmt.Sprintf("Score:%d  Lvl:%d  Lives:%d", snap.HUD.Score, snap.HUD.Level, snap.HUD.Lives)
	g.drawText(screen, hud, g.face, 8, 6, color.White, text.AlignStart)
	if snap.HUD.Boosted {
		g.drawText(screen, "BOOST", g.face, 312, 6, colorGold, text.AlignStart)
	}
}

func (g *Game) drawBanner(screen *ebiten.Image, msg string, c color.Color) {
	a := g.alpha()
	vector.DrawFilledRect(screen, 0, float32(ScreenHeight)/2-30, float32(ScreenWidth), 60,
		color.RGBA{0, 0, 0, uint8(180 * a)}, false)
	g.drawText(screen, msg, g.face, float64(ScreenWidth)/2, float64(ScreenHeight)/2-12, fade(c, a), text.AlignCenter)
}

func (g *Game) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}

// alpha is the banner fade-in progress, 1 once the tween has finished.
func (g *Game) alpha() float32 {
	if g.banner == nil {
		return 1
	}
	return g.bannerAlpha
}

func drawSprite(screen, img *ebiten.Image, box game.Rect) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(box.W/float64(b.Dx()), box.H/float64(b.Dy()))
	op.GeoM.Translate(box.X, box.Y)
	screen.DrawImage(img, op)
}

func fade(c color.Color, a float32) color.Color {
	r, gr, b, al := c.RGBA()
	scale := func(v uint32) uint8 { return uint8(float32(v>>8) * a) }
	return color.RGBA{scale(r), scale(gr), scale(b), scale(al)}
}
