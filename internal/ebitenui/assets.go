package ebitenui

import (
	"fmt"
	"image/color"
	_ "image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/ugaemi/campus-maze/internal/game"
)

const sampleRate = 44100

var (
	colorFloor    = color.RGBA{230, 229, 220, 255}
	colorWallTop  = color.RGBA{30, 80, 220, 255}
	colorWallSide = color.RGBA{20, 50, 150, 255}
	colorRed      = color.RGBA{220, 20, 60, 255}
	colorGold     = color.RGBA{255, 215, 0, 255}
	colorNote     = color.RGBA{40, 200, 40, 255}
	colorBoy      = color.RGBA{70, 130, 220, 255}
	colorGirl     = color.RGBA{230, 110, 170, 255}
	colorPursuer  = color.RGBA{90, 60, 40, 255}
)

// placeholders fill in for sprite images that fail to load.
var placeholders = map[string]color.RGBA{
	"boy.png":  colorBoy,
	"girl.png": colorGirl,
	"hod.png":  colorPursuer,
	"note.png": colorNote,
}

// Assets holds sprite images and decoded sound cues. A missing image is
// replaced by a solid placeholder; a missing sound is nil and stays silent.
type Assets struct {
	Boy     *ebiten.Image
	Girl    *ebiten.Image
	Pursuer *ebiten.Image
	Note    *ebiten.Image

	Sounds map[game.EventKind][]byte
}

// LoadAssets reads boy.png, girl.png, hod.png, note.png and the three WAV
// cues from dir.
func LoadAssets(dir string) *Assets {
	a := &Assets{
		Boy:     loadImage(dir, "boy.png", game.PlayerSize),
		Girl:    loadImage(dir, "girl.png", game.PlayerSize),
		Pursuer: loadImage(dir, "hod.png", game.PursuerSize),
		Note:    loadImage(dir, "note.png", game.NoteSize),
		Sounds:  make(map[game.EventKind][]byte),
	}

	cues := map[game.EventKind]string{
		game.EventCollected: "footstep.wav",
		game.EventCaught:    "caught.wav",
		game.EventEscaped:   "bell.wav",
	}
	for kind, name := range cues {
		b, err := loadSound(filepath.Join(dir, name))
		if err != nil {
			slog.Warn("sound unavailable", "file", name, "error", err)
			continue
		}
		a.Sounds[kind] = b
	}
	return a
}

func loadImage(dir, name string, size float64) *ebiten.Image {
	img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, name))
	if err != nil {
		slog.Warn("image unavailable, using placeholder", "file", name, "error", err)
		return placeholder(placeholders[name], int(size))
	}
	return img
}

func placeholder(c color.Color, size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(c)
	return img
}

func loadSound(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	b, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return b, nil
}
