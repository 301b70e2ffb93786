package config

import (
	"os"
	"strings"

	"github.com/alexisbeaulieu97/powerline/internal/git"
	"github.com/alexisbeaulieu97/powerline/internal/terminal"
	powerlineerrors "github.com/alexisbeaulieu97/powerline/pkg/errors"
)

// Environment variables consulted for defaults.
const (
	EnvDebugTimings = "POWERLINE_DEBUG_TIMINGS"
	EnvGitBackend   = "POWERLINE_GIT_BACKEND"
)

// Options holds everything a single render needs. It is filled from command
// line flags; there is no configuration file.
type Options struct {
	Theme           string `flag:"theme" validate:"required,theme_name"`
	Color           string `flag:"color" validate:"oneof=always never auto"`
	GitBackend      string `flag:"git-backend" validate:"oneof=library process"`
	CwdMaxLength    int    `flag:"cwd-max-length" validate:"min=1"`
	CwdSegments     int    `flag:"cwd-segments" validate:"min=1"`
	ResolveSymlinks bool   `flag:"resolve-symlinks"`
	TimeFormat      string `flag:"time-format" validate:"required"`
	ExitCode        int    `flag:"exit-code" validate:"min=0,max=255"`
	ShowAheadBehind bool   `flag:"git-ahead-behind"`
	ShowUntracked   bool   `flag:"git-untracked"`
	ShowConflicted  bool   `flag:"git-conflicted"`
	Verbose         bool   `flag:"verbose"`
	DebugTimings    bool   `flag:"-"`
}

// Default returns the options used when no flag overrides them.
func Default() Options {
	return Options{
		Theme:        "simple",
		Color:        terminal.ColorAlways,
		GitBackend:   git.BackendLibrary,
		CwdMaxLength: 45,
		CwdSegments:  4,
		TimeFormat:   "15:04:05",
	}
}

// FromEnv applies environment defaults on top of o.
func (o Options) FromEnv(getenv func(string) string) Options {
	if getenv == nil {
		getenv = os.Getenv
	}
	if backend := strings.TrimSpace(getenv(EnvGitBackend)); backend != "" {
		o.GitBackend = strings.ToLower(backend)
	}
	o.DebugTimings = getenv(EnvDebugTimings) == "1"
	return o
}

// LogLevel is debug when timings or verbose output were requested.
func (o Options) LogLevel() string {
	if o.Verbose || o.DebugTimings {
		return "debug"
	}
	return "warn"
}

// Validate checks option ranges and enumerations.
func (o *Options) Validate() error {
	if o == nil {
		return powerlineerrors.NewValidationError("options", "options are nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(o))
}
