package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/powerline/internal/modules"
)

// toggleCommands accept module toggles as positional arguments.
var toggleCommands = map[string]bool{"powerline": true, "pick": true}

// normalizeArgs moves module toggles such as "-git" behind a "--" so cobra
// does not read them as shorthand flags. Relative order of the toggles is
// kept because later toggles win.
func normalizeArgs(root *cobra.Command, args []string) []string {
	if len(args) == 0 {
		return args
	}
	target := root
	if sub, _, err := root.Find(args[:1]); err == nil {
		target = sub
	}
	if !toggleCommands[target.Name()] {
		return args
	}
	for _, arg := range args {
		if arg == "--" {
			return args
		}
	}

	sel := modules.DefaultSelection(modules.Builtin())
	var rest, toggles []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if sel.IsToggle(arg) {
			toggles = append(toggles, arg)
			continue
		}
		rest = append(rest, arg)
		if takesValue(root, target, arg) && i+1 < len(args) {
			i++
			rest = append(rest, args[i])
		}
	}
	if len(toggles) == 0 {
		return args
	}

	out := append(rest, "--")
	return append(out, toggles...)
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(root, target *cobra.Command, arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
		return false
	}

	name := strings.TrimLeft(arg, "-")
	flag := root.PersistentFlags().Lookup(name)
	if flag == nil && !strings.HasPrefix(arg, "--") && len(name) == 1 {
		flag = root.PersistentFlags().ShorthandLookup(name)
	}
	if flag == nil {
		flag = target.Flags().Lookup(name)
	}
	return flag != nil && flag.Value.Type() != "bool"
}

// splitTokens separates bare exit statuses from module toggles. The last
// status wins.
func splitTokens(args []string) (toggles []string, exitCode int, ok bool) {
	for _, arg := range args {
		if code, err := strconv.Atoi(arg); err == nil && code >= 0 {
			exitCode, ok = code, true
			continue
		}
		toggles = append(toggles, arg)
	}
	return toggles, exitCode, ok
}
