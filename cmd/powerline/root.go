package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/powerline/internal/config"
	"github.com/alexisbeaulieu97/powerline/internal/logger"
	"github.com/alexisbeaulieu97/powerline/internal/modules"
	"github.com/alexisbeaulieu97/powerline/internal/terminal"
)

func newRootCmd() *cobra.Command {
	opts := config.Default().FromEnv(os.Getenv)

	cmd := &cobra.Command{
		Use:   "powerline [module...] [-module...] [exit-status]",
		Short: "Render a powerline-style shell prompt",
		Long: `Render a single prompt line made of colored segments.

Positional arguments toggle modules: "git" enables the git module and "-git"
disables it; later arguments win. A bare number is the previous command's
exit status.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, &opts, args)
		},
	}

	bindOptionFlags(cmd.PersistentFlags(), &opts)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newThemeCmd(&opts))
	cmd.AddCommand(newPickCmd(&opts))

	return cmd
}

func runPrompt(cmd *cobra.Command, opts *config.Options, args []string) error {
	toggles, exitCode, ok := splitTokens(args)
	if ok {
		opts.ExitCode = exitCode
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cmd.ErrOrStderr(), *opts)
	if err != nil {
		return err
	}

	registry := modules.Builtin()
	sel := modules.DefaultSelection(registry)
	for _, tok := range sel.Apply(toggles) {
		log.WithFields(map[string]any{"token": tok}).Warn("ignoring unknown module")
	}

	start := time.Now()
	line, err := renderPrompt(renderRequest{
		Options:  *opts,
		Registry: registry,
		Selected: sel,
		Env:      modules.OSEnv(),
		Log:      log,
		Out:      cmd.OutOrStdout(),
		Profile:  terminal.ProfileFor(opts.Color, stdoutIsTerminal(cmd.OutOrStdout()), os.Getenv("COLORTERM")),
	})
	if err != nil {
		return err
	}
	log.Elapsed("prompt rendered", time.Since(start))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
	return err
}

func newLogger(w io.Writer, opts config.Options) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         opts.LogLevel(),
		HumanReadable: true,
		Writer:        w,
	})
}

func stdoutIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && terminal.IsTerminal(f)
}
