package terminal

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes accepted by ProfileFor.
const (
	ColorAlways = "always"
	ColorNever  = "never"
	ColorAuto   = "auto"
)

// Renderer paints text with foreground/background escape sequences. The
// color profile is fixed at construction because a prompt is almost always
// captured by the shell rather than written to a terminal directly.
type Renderer struct {
	r *lipgloss.Renderer
}

// NewRenderer returns a Renderer bound to w using the given profile.
func NewRenderer(w io.Writer, profile termenv.Profile) *Renderer {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	r.SetColorProfile(profile)
	return &Renderer{r: r}
}

// Paint wraps text in the escapes for fg on bg.
func (r *Renderer) Paint(text string, fg, bg Color) string {
	style := r.r.NewStyle()
	if !fg.IsDefault() {
		style = style.Foreground(fg.Lipgloss())
	}
	if !bg.IsDefault() {
		style = style.Background(bg.Lipgloss())
	}
	return style.Render(text)
}

// ProfileFor picks the color profile for a color mode. colorterm is the value
// of $COLORTERM and tty reports whether stdout is a terminal.
func ProfileFor(mode string, tty bool, colorterm string) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAuto:
		if !tty {
			return termenv.Ascii
		}
	}

	switch strings.ToLower(colorterm) {
	case "truecolor", "24bit":
		return termenv.TrueColor
	default:
		return termenv.ANSI256
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
