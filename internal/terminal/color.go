package terminal

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

type colorKind uint8

const (
	kindNone colorKind = iota
	kindFixed
	kindRGB
)

// Color is a terminal color: either an xterm palette index or an RGB triple.
// The zero value means "terminal default".
type Color struct {
	kind    colorKind
	index   uint8
	r, g, b uint8
}

// Fixed returns a palette color (0-255).
func Fixed(index uint8) Color {
	return Color{kind: kindFixed, index: index}
}

// RGB returns a true color value.
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// IsDefault reports whether c leaves the terminal default in place.
func (c Color) IsDefault() bool {
	return c.kind == kindNone
}

// Lipgloss converts c to the lipgloss representation.
func (c Color) Lipgloss() lipgloss.TerminalColor {
	switch c.kind {
	case kindFixed:
		return lipgloss.Color(strconv.Itoa(int(c.index)))
	case kindRGB:
		return lipgloss.Color(c.hex())
	default:
		return lipgloss.NoColor{}
	}
}

func (c Color) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

func (c Color) String() string {
	switch c.kind {
	case kindFixed:
		return strconv.Itoa(int(c.index))
	case kindRGB:
		return c.hex()
	default:
		return "default"
	}
}

// MarshalYAML writes palette colors as integers and RGB colors as hex strings.
func (c Color) MarshalYAML() (any, error) {
	if c.kind == kindFixed {
		return int(c.index), nil
	}
	return c.String(), nil
}
