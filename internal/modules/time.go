package modules

import (
	"github.com/alexisbeaulieu97/powerline/internal/prompt"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
)

// DefaultTimeFormat is a time.Format layout for hours, minutes and seconds.
const DefaultTimeFormat = "15:04:05"

// Time renders the wall clock.
type Time struct {
	theme  theme.Theme
	env    Env
	layout string
}

// NewTime returns a clock module. An empty layout means DefaultTimeFormat.
func NewTime(t theme.Theme, env Env, layout string) *Time {
	if layout == "" {
		layout = DefaultTimeFormat
	}
	return &Time{theme: t, env: env, layout: layout}
}

// AppendSegments appends the current time.
func (t *Time) AppendSegments(out *prompt.Line) {
	out.Append(prompt.Simple(" "+t.env.now().Format(t.layout)+" ", t.theme.Time.FG, t.theme.Time.BG))
}
