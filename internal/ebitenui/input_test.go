package ebitenui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/ugaemi/campus-maze/internal/game"
)

func pressedSet(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestIntentFrom(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want game.Intent
	}{
		{"nothing", nil, game.Intent{}},
		{"arrow up", []ebiten.Key{ebiten.KeyArrowUp}, game.Intent{Up: true}},
		{"wasd down", []ebiten.Key{ebiten.KeyS}, game.Intent{Down: true}},
		{"diagonal mixed", []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowDown}, game.Intent{Left: true, Down: true}},
		{"both schemes same way", []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, game.Intent{Right: true}},
		{"opposites kept for cancelling", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight}, game.Intent{Left: true, Right: true}},
		{"unrelated key", []ebiten.Key{ebiten.KeyP}, game.Intent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intentFrom(pressedSet(tt.keys...)))
		})
	}
}

func TestEditName(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		typed     string
		backspace bool
		want      string
	}{
		{"append", "Ad", "a", false, "Ada"},
		{"variant keys skipped", "", "Mufaro", false, "uaro"},
		{"backspace", "Ada", "", true, "Ad"},
		{"backspace on empty", "", "", true, ""},
		{"backspace multibyte", "Zoë", "", true, "Zo"},
		{"capped", "abcdeghijkl", "xyz", false, "abcdeghijklx"},
		{"control runes dropped", "A", "\t\x00b", false, "Ab"},
		{"backspace then type", "Ab", "c", true, "Ac"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := editName(tt.current, []rune(tt.typed), tt.backspace)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len([]rune(got)), game.MaxNameLength)
		})
	}
}

func TestScreenSize(t *testing.T) {
	assert.Equal(t, 23*game.TileSize, ScreenWidth)
	assert.Equal(t, 15*game.TileSize, ScreenHeight)
}
