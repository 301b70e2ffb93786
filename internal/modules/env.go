package modules

import (
	"os"
	"time"

	"github.com/alexisbeaulieu97/powerline/internal/prompt"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
	powerlineerrors "github.com/alexisbeaulieu97/powerline/pkg/errors"
)

// Env is the read-only view of the process that modules inspect.
type Env struct {
	Getenv   func(string) string
	Getwd    func() (string, error)
	Hostname func() (string, error)
	Now      func() time.Time
	Euid     func() int
}

// OSEnv reads the real process environment.
func OSEnv() Env {
	return Env{
		Getenv:   os.Getenv,
		Getwd:    os.Getwd,
		Hostname: os.Hostname,
		Now:      time.Now,
		Euid:     os.Geteuid,
	}
}

func (e Env) getenv(key string) string {
	if e.Getenv == nil {
		return os.Getenv(key)
	}
	return e.Getenv(key)
}

func (e Env) getwd() (string, error) {
	if e.Getwd == nil {
		return os.Getwd()
	}
	return e.Getwd()
}

func (e Env) hostname() (string, error) {
	if e.Hostname == nil {
		return os.Hostname()
	}
	return e.Hostname()
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e Env) isRoot() bool {
	if e.Euid == nil {
		return os.Geteuid() == 0
	}
	return e.Euid() == 0
}

// errorSegment renders a module failure in place of the module's output.
func errorSegment(t theme.Theme, module string, err error) prompt.Segment {
	msg := powerlineerrors.NewModuleError(module, err).Error()
	return prompt.Simple(" "+msg+" ", t.ModuleError.FG, t.ModuleError.BG)
}
