package domain

import "fmt"

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Palette used by the bar field.
var (
	ColorOrange    = Color{0xF9, 0x73, 0x16}
	ColorPurple    = Color{0xA8, 0x55, 0xF7}
	ColorBlue      = Color{0x42, 0x67, 0xB2}
	ColorSky       = Color{0x4E, 0xAB, 0xD0}
	ColorIndigo    = Color{0x56, 0x3A, 0xC9}
	ColorViolet    = Color{0x8B, 0x5C, 0xF6}
	ColorHighlight = Color{0xFC, 0xD3, 0x4D}
)
