package modules

import (
	"github.com/alexisbeaulieu97/powerline/internal/prompt"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
)

const lockGlyph = "\uE0A2"

// ReadOnly shows a lock when the working directory is not writable.
type ReadOnly struct {
	theme    theme.Theme
	env      Env
	writable func(dir string) bool
}

// NewReadOnly returns a module that flags non-writable working directories.
func NewReadOnly(t theme.Theme, env Env) *ReadOnly {
	return &ReadOnly{theme: t, env: env, writable: writable}
}

// AppendSegments appends a lock when the working directory is not writable.
func (r *ReadOnly) AppendSegments(out *prompt.Line) {
	dir, err := r.env.getwd()
	if err != nil {
		out.Append(errorSegment(r.theme, "readonly", err))
		return
	}
	if r.writable(dir) {
		return
	}
	out.Append(prompt.Simple(" "+lockGlyph+" ", r.theme.ReadOnly.FG, r.theme.ReadOnly.BG))
}
