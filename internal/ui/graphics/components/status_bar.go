package components

import (
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const gameOverHint = "C: copy score  |  ESC: quit"

type StatusBar struct {
	X, Y int
}

// NewStatusBar anchors the status text to the top-left tile.
func NewStatusBar(tileSize int) *StatusBar {
	return &StatusBar{
		X: max(tileSize-20, 2),
		Y: tileSize,
	}
}

func (sb *StatusBar) Lines(snap domain.Snapshot) []string {
	if snap.GameOver {
		return []string{snap.Status(), gameOverHint}
	}
	return []string{snap.Status()}
}

func (sb *StatusBar) Draw(screen *ebiten.Image, snap domain.Snapshot) {
	fonts := types.GetFonts()
	lines := sb.Lines(snap)

	text.Draw(screen, lines[0], fonts.Status, sb.X, sb.Y, types.StatusColor(snap.GameOver))
	for i, line := range lines[1:] {
		text.Draw(screen, line, fonts.Small, sb.X, sb.Y+18*(i+1), types.ColorTextDim)
	}
}
