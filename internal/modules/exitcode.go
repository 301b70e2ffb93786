package modules

import (
	"strconv"

	"github.com/alexisbeaulieu97/powerline/internal/prompt"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
)

// ExitCode shows the previous command's status when it was non-zero.
type ExitCode struct {
	theme theme.Theme
	code  int
}

// NewExitCode returns a module showing code when it is non-zero.
func NewExitCode(t theme.Theme, code int) *ExitCode {
	return &ExitCode{theme: t, code: code}
}

// AppendSegments appends the status, or nothing when it is zero.
func (e *ExitCode) AppendSegments(out *prompt.Line) {
	if e.code == 0 {
		return
	}
	out.Append(prompt.Simple(" "+strconv.Itoa(e.code)+" ", e.theme.ExitCode.FG, e.theme.ExitCode.BG))
}
