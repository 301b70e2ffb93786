package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/powerline/internal/config"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
	powerlineerrors "github.com/alexisbeaulieu97/powerline/pkg/errors"
)

func newThemeCmd(opts *config.Options) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "theme [name]",
		Short: "Print a theme as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(theme.Names(), "\n"))
				return nil
			}

			name := opts.Theme
			if len(args) == 1 {
				name = args[0]
			}
			th, ok := theme.Named(name)
			if !ok {
				return powerlineerrors.NewValidationError("theme",
					fmt.Sprintf("unknown theme %q (available: %s)", name, strings.Join(theme.Names(), ", ")), nil)
			}

			out, err := th.YAML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List the built-in themes")

	return cmd
}
