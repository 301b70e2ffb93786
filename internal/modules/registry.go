package modules

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/powerline/internal/config"
	"github.com/alexisbeaulieu97/powerline/internal/git"
	"github.com/alexisbeaulieu97/powerline/internal/prompt"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
	powerlineerrors "github.com/alexisbeaulieu97/powerline/pkg/errors"
)

// Deps carries what a factory may need to build its module.
type Deps struct {
	Theme   theme.Theme
	Env     Env
	Source  git.StatusSource
	Options config.Options
}

// Factory builds a module from shared dependencies.
type Factory func(Deps) prompt.Module

// Descriptor describes a selectable module.
type Descriptor struct {
	Name        string
	Description string
	Default     bool
	New         Factory
}

// Validate ensures the descriptor is well-formed.
func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("module descriptor requires a non-empty Name")
	}
	if strings.HasPrefix(d.Name, "-") {
		return fmt.Errorf("module name %q must not start with '-'", d.Name)
	}
	if d.New == nil {
		return fmt.Errorf("module %q has no factory", d.Name)
	}
	return nil
}

// Registry keeps module descriptors in registration order, which is also
// the order modules appear in the prompt.
type Registry struct {
	order       []string
	descriptors map[string]Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]Descriptor)}
}

// Register adds a module descriptor.
func (r *Registry) Register(d Descriptor) error {
	if err := d.Validate(); err != nil {
		return powerlineerrors.NewModuleError(d.Name, err)
	}
	if _, exists := r.descriptors[d.Name]; exists {
		return powerlineerrors.NewModuleError(d.Name, fmt.Errorf("module already registered"))
	}
	r.descriptors[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// Lookup retrieves a descriptor by name.
func (r *Registry) Lookup(name string) (Descriptor, error) {
	d, ok := r.descriptors[name]
	if !ok {
		return Descriptor{}, powerlineerrors.NewModuleError(name, fmt.Errorf("no module registered"))
	}
	return d, nil
}

// Names lists registered modules in prompt order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Descriptors lists registered descriptors in prompt order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.descriptors[name])
	}
	return out
}

// Built pairs a module with its registry name.
type Built struct {
	Name   string
	Module prompt.Module
}

// Build instantiates the selected modules in prompt order.
func (r *Registry) Build(sel Selection, deps Deps) []Built {
	var out []Built
	for _, name := range r.order {
		if !sel[name] {
			continue
		}
		out = append(out, Built{Name: name, Module: r.descriptors[name].New(deps)})
	}
	return out
}

// Builtin returns a registry holding every module shipped with powerline.
func Builtin() *Registry {
	r := NewRegistry()
	for _, d := range []Descriptor{
		{Name: "time", Description: "wall clock", Default: true, New: func(d Deps) prompt.Module {
			return NewTime(d.Theme, d.Env, d.Options.TimeFormat)
		}},
		{Name: "pyvenv", Description: "active python virtualenv or conda env", Default: true, New: func(d Deps) prompt.Module {
			return NewPyVenv(d.Theme, d.Env)
		}},
		{Name: "user", Description: "login name", Default: true, New: func(d Deps) prompt.Module {
			return NewUser(d.Theme, d.Env)
		}},
		{Name: "host", Description: "short host name", Default: false, New: func(d Deps) prompt.Module {
			return NewHost(d.Theme, d.Env)
		}},
		{Name: "cwd", Description: "working directory", Default: true, New: func(d Deps) prompt.Module {
			return NewCwd(d.Theme, d.Env, d.Options.CwdMaxLength, d.Options.CwdSegments, d.Options.ResolveSymlinks)
		}},
		{Name: "git", Description: "branch and change counters", Default: true, New: func(d Deps) prompt.Module {
			return NewGit(d.Theme, d.Env, d.Source, GitOptions{
				ShowAheadBehind: d.Options.ShowAheadBehind,
				ShowUntracked:   d.Options.ShowUntracked,
				ShowConflicted:  d.Options.ShowConflicted,
			})
		}},
		{Name: "readonly", Description: "lock when the directory is not writable", Default: true, New: func(d Deps) prompt.Module {
			return NewReadOnly(d.Theme, d.Env)
		}},
		{Name: "cmd", Description: "prompt character colored by last status", Default: true, New: func(d Deps) prompt.Module {
			return NewCmd(d.Theme, d.Env, d.Options.ExitCode)
		}},
		{Name: "exitcode", Description: "last non-zero exit status", Default: false, New: func(d Deps) prompt.Module {
			return NewExitCode(d.Theme, d.Options.ExitCode)
		}},
	} {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}
