package modules

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/powerline/internal/prompt"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
)

const ellipsis = "…"

// Cwd renders the working directory as one segment per path component.
type Cwd struct {
	theme           theme.Theme
	env             Env
	maxLength       int
	wantedSegments  int
	resolveSymlinks bool
}

// NewCwd returns a cwd module. Paths wider than maxLength and deeper than
// wantedSegments keep only wantedSegments components around an ellipsis.
func NewCwd(t theme.Theme, env Env, maxLength, wantedSegments int, resolveSymlinks bool) *Cwd {
	return &Cwd{
		theme:           t,
		env:             env,
		maxLength:       maxLength,
		wantedSegments:  wantedSegments,
		resolveSymlinks: resolveSymlinks,
	}
}

func (c *Cwd) dir() (string, error) {
	if !c.resolveSymlinks {
		if pwd := c.env.getenv("PWD"); pwd != "" {
			return pwd, nil
		}
	}
	return c.env.getwd()
}

// AppendSegments appends the home marker and one segment per visible path component.
func (c *Cwd) AppendSegments(out *prompt.Line) {
	cwd, err := c.dir()
	if err != nil {
		out.Append(errorSegment(c.theme, "cwd", err))
		return
	}

	var segments []prompt.Segment
	if home := strings.TrimSuffix(c.env.getenv("HOME"), "/"); home != "" {
		if cwd == home || strings.HasPrefix(cwd, home+"/") {
			segments = append(segments, prompt.Simple(" ~ ", c.theme.Home.FG, c.theme.Home.BG))
			cwd = cwd[len(home):]
		}
	}

	var parts []string
	for _, p := range strings.Split(cwd, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) == 0 {
		if len(segments) == 0 {
			segments = append(segments, prompt.Simple(" / ", c.theme.CwdFG, c.theme.Path.BG))
		}
		out.Append(segments...)
		return
	}

	depth := len(parts)
	if runewidth.StringWidth(cwd) > c.maxLength && depth > c.wantedSegments {
		left := c.wantedSegments / 2
		right := c.wantedSegments - left
		kept := append([]string{}, parts[:left]...)
		kept = append(kept, ellipsis)
		parts = append(kept, parts[depth-right:]...)
	}

	for _, p := range parts {
		segments = append(segments, prompt.Special(" "+p+" ", c.theme.Path.FG, c.theme.Path.BG, prompt.SeparatorThin, c.theme.SeparatorFG))
	}

	last := &segments[len(segments)-1]
	*last = prompt.Simple(last.Text, c.theme.CwdFG, last.BG)
	out.Append(segments...)
}
