package modules

import (
	"os/user"

	"github.com/alexisbeaulieu97/powerline/internal/prompt"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
)

// User renders the login name, highlighted when running as root.
type User struct {
	theme  theme.Theme
	env    Env
	lookup func() (*user.User, error)
}

// NewUser returns the login name module.
func NewUser(t theme.Theme, env Env) *User {
	return &User{theme: t, env: env, lookup: user.Current}
}

// AppendSegments appends the user name, highlighted for root.
func (u *User) AppendSegments(out *prompt.Line) {
	name := u.env.getenv("USER")
	if name == "" {
		current, err := u.lookup()
		if err != nil {
			out.Append(errorSegment(u.theme, "user", err))
			return
		}
		name = current.Username
	}

	pair := u.theme.Username
	if u.env.isRoot() {
		pair = u.theme.UsernameRoot
	}
	out.Append(prompt.Simple(" "+name+" ", pair.FG, pair.BG))
}
