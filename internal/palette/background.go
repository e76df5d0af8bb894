package palette

import (
	"image/color"

	"github.com/iburimskiy/particle-field/internal/theme"
)

// Background returns the page gradient drawn under the particle layer.
func Background(t theme.Theme) (top, bottom color.RGBA) {
	if t == theme.Light {
		return color.RGBA{R: 0xb8, G: 0xa9, B: 0xf5, A: 0xff}, color.RGBA{R: 0xe6, G: 0xe9, B: 0xff, A: 0xff}
	}
	return color.RGBA{R: 0x0b, G: 0x0f, B: 0x1a, A: 0xff}, color.RGBA{R: 0x16, G: 0x1b, B: 0x33, A: 0xff}
}
