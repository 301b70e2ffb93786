package modules

import (
	"strings"

	"github.com/alexisbeaulieu97/powerline/internal/prompt"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
)

// Host renders the short host name.
type Host struct {
	theme theme.Theme
	env   Env
}

// NewHost returns the short host name module.
func NewHost(t theme.Theme, env Env) *Host {
	return &Host{theme: t, env: env}
}

// AppendSegments appends the host name up to its first dot.
func (h *Host) AppendSegments(out *prompt.Line) {
	name, err := h.env.hostname()
	if err != nil {
		out.Append(errorSegment(h.theme, "host", err))
		return
	}
	if short, _, found := strings.Cut(name, "."); found {
		name = short
	}
	out.Append(prompt.Simple(" "+name+" ", h.theme.Hostname.FG, h.theme.Hostname.BG))
}
