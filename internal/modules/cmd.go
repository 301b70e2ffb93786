package modules

import (
	"github.com/alexisbeaulieu97/powerline/internal/prompt"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
)

// Cmd renders the prompt character, colored by the previous command's status.
type Cmd struct {
	theme    theme.Theme
	env      Env
	exitCode int
}

// NewCmd returns the prompt character module for the given exit status.
func NewCmd(t theme.Theme, env Env, exitCode int) *Cmd {
	return &Cmd{theme: t, env: env, exitCode: exitCode}
}

// AppendSegments appends "$", or "#" for root, in the passed or failed colors.
func (c *Cmd) AppendSegments(out *prompt.Line) {
	char := "$"
	if c.env.isRoot() {
		char = "#"
	}
	pair := c.theme.CmdPassed
	if c.exitCode != 0 {
		pair = c.theme.CmdFailed
	}
	out.Append(prompt.Simple(" "+char+" ", pair.FG, pair.BG))
}
