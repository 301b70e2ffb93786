package theme

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/powerline/internal/terminal"
)

// Pair is a foreground/background combination for one semantic state.
type Pair struct {
	FG terminal.Color `yaml:"fg"`
	BG terminal.Color `yaml:"bg"`
}

// Theme maps every semantic prompt state to a color pair. Modules receive a
// Theme by value when they are constructed.
type Theme struct {
	Name string `yaml:"name"`

	GitClean      Pair `yaml:"git_clean"`
	GitDirty      Pair `yaml:"git_dirty"`
	GitAhead      Pair `yaml:"git_ahead"`
	GitBehind     Pair `yaml:"git_behind"`
	GitStaged     Pair `yaml:"git_staged"`
	GitNotStaged  Pair `yaml:"git_not_staged"`
	GitUntracked  Pair `yaml:"git_untracked"`
	GitConflicted Pair `yaml:"git_conflicted"`
	GitError      Pair `yaml:"git_error"`

	Username     Pair           `yaml:"username"`
	UsernameRoot Pair           `yaml:"username_root"`
	Hostname     Pair           `yaml:"hostname"`
	Home         Pair           `yaml:"home"`
	Path         Pair           `yaml:"path"`
	CwdFG        terminal.Color `yaml:"cwd_fg"`
	SeparatorFG  terminal.Color `yaml:"separator_fg"`
	ReadOnly     Pair           `yaml:"readonly"`
	CmdPassed    Pair           `yaml:"cmd_passed"`
	CmdFailed    Pair           `yaml:"cmd_failed"`
	ExitCode     Pair           `yaml:"exit_code"`
	PyVenv       Pair           `yaml:"pyvenv"`
	Time         Pair           `yaml:"time"`
	ModuleError  Pair           `yaml:"module_error"`
}

func fixed(fg, bg uint8) Pair {
	return Pair{FG: terminal.Fixed(fg), BG: terminal.Fixed(bg)}
}

// Simple is the default 256-color theme.
func Simple() Theme {
	return Theme{
		Name: "simple",

		GitClean:      fixed(0, 148),
		GitDirty:      fixed(15, 161),
		GitAhead:      fixed(250, 240),
		GitBehind:     fixed(250, 240),
		GitStaged:     fixed(15, 22),
		GitNotStaged:  fixed(15, 130),
		GitUntracked:  fixed(15, 52),
		GitConflicted: fixed(15, 9),
		GitError:      fixed(15, 196),

		Username:     fixed(250, 240),
		UsernameRoot: fixed(250, 124),
		Hostname:     fixed(250, 238),
		Home:         fixed(15, 31),
		Path:         fixed(250, 237),
		CwdFG:        terminal.Fixed(254),
		SeparatorFG:  terminal.Fixed(244),
		ReadOnly:     fixed(254, 124),
		CmdPassed:    fixed(15, 236),
		CmdFailed:    fixed(15, 161),
		ExitCode:     fixed(15, 52),
		PyVenv:       fixed(0, 35),
		Time:         fixed(250, 238),
		ModuleError:  fixed(15, 196),
	}
}

// Basic only uses the 16 base ANSI colors, for terminals without a 256-color palette.
func Basic() Theme {
	const (
		black uint8 = iota
		red
		green
		yellow
		blue
		magenta
		cyan
		white
		brightBlack
		brightRed
	)

	return Theme{
		Name: "basic",

		GitClean:      fixed(black, green),
		GitDirty:      fixed(white, magenta),
		GitAhead:      fixed(white, brightBlack),
		GitBehind:     fixed(white, brightBlack),
		GitStaged:     fixed(black, green),
		GitNotStaged:  fixed(black, yellow),
		GitUntracked:  fixed(white, brightBlack),
		GitConflicted: fixed(white, brightRed),
		GitError:      fixed(white, red),

		Username:     fixed(white, brightBlack),
		UsernameRoot: fixed(white, red),
		Hostname:     fixed(white, black),
		Home:         fixed(white, blue),
		Path:         fixed(white, black),
		CwdFG:        terminal.Fixed(white),
		SeparatorFG:  terminal.Fixed(brightBlack),
		ReadOnly:     fixed(white, red),
		CmdPassed:    fixed(white, black),
		CmdFailed:    fixed(white, red),
		ExitCode:     fixed(white, red),
		PyVenv:       fixed(black, cyan),
		Time:         fixed(white, black),
		ModuleError:  fixed(white, red),
	}
}

var builtin = map[string]func() Theme{
	"simple": Simple,
	"basic":  Basic,
}

// Named looks up a built-in theme.
func Named(name string) (Theme, bool) {
	ctor, ok := builtin[name]
	if !ok {
		return Theme{}, false
	}
	return ctor(), true
}

// Names lists the built-in themes in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// YAML renders the theme for inspection.
func (t Theme) YAML() (string, error) {
	out, err := yaml.Marshal(t)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
