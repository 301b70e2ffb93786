package main

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/powerline/internal/config"
	"github.com/alexisbeaulieu97/powerline/internal/git"
	"github.com/alexisbeaulieu97/powerline/internal/logger"
	"github.com/alexisbeaulieu97/powerline/internal/modules"
	"github.com/alexisbeaulieu97/powerline/internal/prompt"
	"github.com/alexisbeaulieu97/powerline/internal/terminal"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
	powerlineerrors "github.com/alexisbeaulieu97/powerline/pkg/errors"
)

type renderRequest struct {
	Options  config.Options
	Registry *modules.Registry
	Selected modules.Selection
	Env      modules.Env
	Log      *logger.Logger
	Out      io.Writer
	Profile  termenv.Profile
}

// renderPrompt builds the selected modules and paints them into one line.
func renderPrompt(req renderRequest) (string, error) {
	th, ok := theme.Named(req.Options.Theme)
	if !ok {
		return "", powerlineerrors.NewValidationError("theme", "unknown theme "+req.Options.Theme, nil)
	}
	src, err := git.NewSource(req.Options.GitBackend, git.SourceOptions{AheadBehind: req.Options.ShowAheadBehind})
	if err != nil {
		return "", err
	}

	deps := modules.Deps{
		Theme:   th,
		Env:     req.Env,
		Source:  src,
		Options: req.Options,
	}

	timed := req.Options.LogLevel() == "debug"
	p := prompt.New()
	for _, b := range req.Registry.Build(req.Selected, deps) {
		m := b.Module
		if timed {
			m = prompt.Timed(b.Name, m, req.Log)
		}
		p.Add(m)
	}

	out := req.Out
	if out == nil {
		out = io.Discard
	}
	return p.Render(terminal.NewRenderer(out, req.Profile)), nil
}
