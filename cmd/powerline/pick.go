package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/powerline/internal/config"
	"github.com/alexisbeaulieu97/powerline/internal/logger"
	"github.com/alexisbeaulieu97/powerline/internal/modules"
	"github.com/alexisbeaulieu97/powerline/internal/picker"
	"github.com/alexisbeaulieu97/powerline/internal/terminal"
)

var errNotInteractive = errors.New("pick needs an interactive terminal")

var pickRunner = runPickerProgram

func newPickCmd(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick [module...] [-module...]",
		Short: "Choose modules interactively and print the matching arguments",
		Long: `Open a checklist of modules with a live prompt preview. On enter the
selection is printed as toggle arguments for the powerline command.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}

			registry := modules.Builtin()
			sel := modules.DefaultSelection(registry)
			if unknown := sel.Apply(args); len(unknown) > 0 {
				return fmt.Errorf("unknown modules: %s", strings.Join(unknown, ", "))
			}

			profile := terminal.ProfileFor(opts.Color, true, os.Getenv("COLORTERM"))
			preview := func(s modules.Selection) string {
				line, err := renderPrompt(renderRequest{
					Options:  *opts,
					Registry: registry,
					Selected: s,
					Env:      modules.OSEnv(),
					Log:      logger.Nop(),
					Profile:  profile,
				})
				if err != nil {
					return err.Error()
				}
				return line
			}

			final, err := pickRunner(cmd, picker.NewModel(registry, sel, preview))
			if err != nil {
				return err
			}
			if !final.Confirmed() {
				return nil
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(final.Selection().Tokens(registry), " "))
			return err
		},
	}

	return cmd
}

// runPickerProgram draws the picker on stderr so stdout only carries the
// resulting arguments.
func runPickerProgram(cmd *cobra.Command, m picker.Model) (picker.Model, error) {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !terminal.IsTerminal(in) {
		return m, errNotInteractive
	}

	var out io.Writer = cmd.ErrOrStderr()
	result, err := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return m, err
	}
	final, ok := result.(picker.Model)
	if !ok {
		return m, fmt.Errorf("unexpected picker model %T", result)
	}
	return final, nil
}
