package types

import "image/color"

var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorGrid       = color.RGBA{25, 25, 30, 255}
	ColorFood       = color.RGBA{255, 0, 0, 255}
	ColorBody       = color.RGBA{0, 255, 0, 255}
	ColorHead       = color.RGBA{255, 255, 255, 255}
	ColorText       = color.RGBA{0, 255, 0, 255}
	ColorGameOver   = color.RGBA{255, 0, 0, 255}
	ColorTextDim    = color.RGBA{150, 150, 150, 255}
)

// StatusColor is green while the game runs and red once it is over.
func StatusColor(gameOver bool) color.RGBA {
	if gameOver {
		return ColorGameOver
	}
	return ColorText
}

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
