package components

import (
	"image/color"

	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type FieldRenderer struct {
	TileSize int
	OffsetX  int
	OffsetY  int
}

func NewFieldRenderer(tileSize int) *FieldRenderer {
	return &FieldRenderer{
		TileSize: tileSize,
	}
}

// PixelSize is the board in pixels.
func (fr *FieldRenderer) PixelSize(field *domain.Field) (int, int) {
	if field == nil {
		return 0, 0
	}
	return field.Width * fr.TileSize, field.Height * fr.TileSize
}

// TileOrigin is the top-left pixel of a tile.
func (fr *FieldRenderer) TileOrigin(c domain.Coord) (float32, float32) {
	return float32(fr.OffsetX + c.X*fr.TileSize), float32(fr.OffsetY + c.Y*fr.TileSize)
}

// SegmentRect is a tile shrunk by one pixel on each side, so adjacent
// segments stay visually apart.
func (fr *FieldRenderer) SegmentRect(c domain.Coord) (x, y, size float32) {
	x, y = fr.TileOrigin(c)
	return x + 1, y + 1, float32(fr.TileSize - 2)
}

// FoodCircle fills the whole tile.
func (fr *FieldRenderer) FoodCircle(c domain.Coord) (cx, cy, r float32) {
	x, y := fr.TileOrigin(c)
	half := float32(fr.TileSize) / 2
	return x + half, y + half, half
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, field *domain.Field) {
	if field == nil {
		return
	}

	pw, ph := fr.PixelSize(field)
	w := float32(pw)
	h := float32(ph)

	vector.DrawFilledRect(screen,
		float32(fr.OffsetX), float32(fr.OffsetY),
		w, h,
		types.ColorBackground, false)

	for x := 0; x <= field.Width; x++ {
		x1 := float32(fr.OffsetX + x*fr.TileSize)
		vector.StrokeLine(screen,
			x1, float32(fr.OffsetY),
			x1, float32(fr.OffsetY)+h,
			1, types.ColorGrid, false)
	}
	for y := 0; y <= field.Height; y++ {
		y1 := float32(fr.OffsetY + y*fr.TileSize)
		vector.StrokeLine(screen,
			float32(fr.OffsetX), y1,
			float32(fr.OffsetX)+w, y1,
			1, types.ColorGrid, false)
	}
}

func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, food domain.Coord) {
	cx, cy, r := fr.FoodCircle(food)
	vector.DrawFilledCircle(screen, cx, cy, r, types.ColorFood, true)
}

func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, snap domain.Snapshot) {
	for _, part := range snap.Body {
		fr.drawSegment(screen, part, types.ColorBody)
	}

	headColor := types.ColorHead
	if snap.GameOver {
		headColor = types.Darken(headColor, 0.6)
	}
	fr.drawSegment(screen, snap.Head, headColor)
}

func (fr *FieldRenderer) drawSegment(screen *ebiten.Image, c domain.Coord, clr color.RGBA) {
	x, y, size := fr.SegmentRect(c)
	r := size / 2
	vector.DrawFilledCircle(screen, x+r, y+r, r, clr, true)
}
