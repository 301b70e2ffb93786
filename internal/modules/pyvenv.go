package modules

import (
	"path/filepath"

	"github.com/alexisbeaulieu97/powerline/internal/prompt"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
)

// PyVenv names the active Python virtualenv or conda environment.
type PyVenv struct {
	theme theme.Theme
	env   Env
}

// NewPyVenv returns the python environment module.
func NewPyVenv(t theme.Theme, env Env) *PyVenv {
	return &PyVenv{theme: t, env: env}
}

// AppendSegments appends the active virtualenv or conda env name, if any.
func (p *PyVenv) AppendSegments(out *prompt.Line) {
	name := ""
	if venv := p.env.getenv("VIRTUAL_ENV"); venv != "" {
		name = filepath.Base(venv)
	} else if conda := p.env.getenv("CONDA_DEFAULT_ENV"); conda != "" {
		name = conda
	}
	if name == "" {
		return
	}
	out.Append(prompt.Simple(" "+name+" ", p.theme.PyVenv.FG, p.theme.PyVenv.BG))
}
