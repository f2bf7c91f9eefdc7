package domain

// Field is the board measured in tiles.
type Field struct {
	Width  int
	Height int
}

// NewField derives the tile grid from a pixel board. Partial tiles are dropped.
func NewField(boardWidth, boardHeight, tileSize int) *Field {
	if tileSize <= 0 {
		return &Field{}
	}
	return &Field{
		Width:  boardWidth / tileSize,
		Height: boardHeight / tileSize,
	}
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

// Wrap moves a coordinate that left the board back onto the opposite edge.
// Only one violation is corrected per call, x before y, so a coordinate
// outside on both axes keeps its y overflow.
func (f *Field) Wrap(c Coord) Coord {
	if c.X < 0 {
		c.X = f.Width - 1
	} else if c.X >= f.Width {
		c.X = 0
	} else if c.Y < 0 {
		c.Y = f.Height - 1
	} else if c.Y >= f.Height {
		c.Y = 0
	}
	return c
}

func (f *Field) Move(c Coord, d Direction) Coord {
	return f.Wrap(c.Add(d.Delta()))
}

// Cells lists every tile, x-outer then y-inner.
func (f *Field) Cells() []Coord {
	cells := make([]Coord, 0, f.Width*f.Height)
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			cells = append(cells, Coord{X: x, Y: y})
		}
	}
	return cells
}

func (f *Field) Size() int {
	return f.Width * f.Height
}
