package terminal

import (
	"snake/internal/domain"

	"github.com/gdamore/tcell/v2"
)

const (
	// Each tile is two columns wide so the board keeps its aspect ratio.
	cellWidth = 2
	boardTop  = 1

	runeEmpty = '·'
	runeFood  = '●'
	runeBody  = 'o'
	runeHead  = '@'
)

var (
	styleEmpty    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleFood     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBody     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleGameOver = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Cell maps a tile to its screen column and row.
func Cell(c domain.Coord) (int, int) {
	return c.X * cellWidth, c.Y + boardTop
}

func (r *Renderer) Draw(snap domain.Snapshot) {
	r.screen.Clear()

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			r.putTile(domain.Coord{X: x, Y: y}, runeEmpty, styleEmpty)
		}
	}

	r.putTile(snap.Food, runeFood, styleFood)
	for _, part := range snap.Body {
		r.putTile(part, runeBody, styleBody)
	}
	r.putTile(snap.Head, runeHead, styleHead)

	if snap.GameOver {
		drawText(r.screen, 0, 0, snap.Status(), styleGameOver)
		drawText(r.screen, 0, snap.Height+boardTop, "q/ESC: quit", styleHint)
	} else {
		drawText(r.screen, 0, 0, snap.Status(), styleStatus)
		drawText(r.screen, 0, snap.Height+boardTop, "arrows/WASD: move  q/ESC: quit", styleHint)
	}

	r.screen.Show()
}

func (r *Renderer) putTile(c domain.Coord, ch rune, st tcell.Style) {
	col, row := Cell(c)
	r.screen.SetContent(col, row, ch, nil, st)
	r.screen.SetContent(col+1, row, ' ', nil, st)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}
