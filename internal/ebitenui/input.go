package ebitenui

import (
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ugaemi/campus-maze/internal/game"
)

var (
	upKeys    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	downKeys  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
)

// intentFrom reads the held movement keys through pressed.
func intentFrom(pressed func(ebiten.Key) bool) game.Intent {
	held := func(keys []ebiten.Key) bool {
		for _, k := range keys {
			if pressed(k) {
				return true
			}
		}
		return false
	}
	return game.Intent{
		Up:    held(upKeys),
		Down:  held(downKeys),
		Left:  held(leftKeys),
		Right: held(rightKeys),
	}
}

// editName applies one frame of title-screen typing to name. M and F select
// the variant and are never typed.
func editName(name string, typed []rune, backspace bool) string {
	if backspace && name != "" {
		_, size := utf8.DecodeLastRuneInString(name)
		name = name[:len(name)-size]
	}
	for _, r := range typed {
		if isVariantRune(r) || !unicode.IsPrint(r) {
			continue
		}
		if utf8.RuneCountInString(name) >= game.MaxNameLength {
			break
		}
		name += string(r)
	}
	return name
}

func isVariantRune(r rune) bool {
	switch r {
	case 'm', 'M', 'f', 'F':
		return true
	}
	return false
}
