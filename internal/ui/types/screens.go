package types

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type Screen interface {
	Update() UIEvent
	Draw(screen *ebiten.Image)
}

type ScreenContext interface {
	Size() (int, int)
}
