package main

import (
	"github.com/spf13/pflag"

	"github.com/alexisbeaulieu97/powerline/internal/config"
)

func bindOptionFlags(fs *pflag.FlagSet, opts *config.Options) {
	fs.StringVar(&opts.Theme, "theme", opts.Theme, "Color theme (basic, simple)")
	fs.StringVar(&opts.Color, "color", opts.Color, "Emit colors: always, never or auto")
	fs.StringVar(&opts.GitBackend, "git-backend", opts.GitBackend, "Git status backend: library or process")
	fs.IntVar(&opts.CwdMaxLength, "cwd-max-length", opts.CwdMaxLength, "Truncate the working directory past this display width")
	fs.IntVar(&opts.CwdSegments, "cwd-segments", opts.CwdSegments, "Directory components kept when truncating")
	fs.BoolVar(&opts.ResolveSymlinks, "resolve-symlinks", opts.ResolveSymlinks, "Show the physical working directory instead of $PWD")
	fs.StringVar(&opts.TimeFormat, "time-format", opts.TimeFormat, "Go time layout for the time module")
	fs.IntVar(&opts.ExitCode, "exit-code", opts.ExitCode, "Exit status of the previous command")
	fs.BoolVar(&opts.ShowAheadBehind, "git-ahead-behind", opts.ShowAheadBehind, "Show commits ahead of and behind the upstream")
	fs.BoolVar(&opts.ShowUntracked, "git-untracked", opts.ShowUntracked, "Show the untracked file count")
	fs.BoolVar(&opts.ShowConflicted, "git-conflicted", opts.ShowConflicted, "Show the conflicted file count")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "Log module timings to stderr")
}
