package modules

import (
	"fmt"

	"github.com/alexisbeaulieu97/powerline/internal/git"
	"github.com/alexisbeaulieu97/powerline/internal/prompt"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
)

// Symbols used by the git segments.
const (
	SymbolAhead      = "⬆"
	SymbolBehind     = "⬇"
	SymbolStaged     = "✔"
	SymbolNotStaged  = "✎"
	SymbolUntracked  = "?"
	SymbolConflicted = "✼"
)

// GitOptions enables the git segment kinds that are off by default.
type GitOptions struct {
	ShowAheadBehind bool
	ShowUntracked   bool
	ShowConflicted  bool
}

// Git renders branch and change counters for the enclosing repository.
type Git struct {
	theme  theme.Theme
	source git.StatusSource
	opts   GitOptions
	env    Env
}

// NewGit returns a git module reading status through source.
func NewGit(t theme.Theme, env Env, source git.StatusSource, opts GitOptions) *Git {
	return &Git{theme: t, source: source, opts: opts, env: env}
}

// AppendSegments appends nothing outside a repository, a single error
// segment when the repository cannot be queried, and the branch plus counter
// segments otherwise.
func (g *Git) AppendSegments(out *prompt.Line) {
	start, err := g.env.getwd()
	if err != nil {
		return
	}

	res := git.Query(g.source, start)
	switch res.Kind {
	case git.Absent:
		return
	case git.Failed:
		out.Append(prompt.Simple(fmt.Sprintf(" git error: %v ", res.Err), g.theme.GitError.FG, g.theme.GitError.BG))
		return
	}

	out.Append(g.segments(res.Stats)...)
}

func (g *Git) segments(stats git.Stats) []prompt.Segment {
	branch := g.theme.GitClean
	if stats.IsDirty() {
		branch = g.theme.GitDirty
	}
	segments := []prompt.Segment{
		prompt.Simple(" "+stats.Branch+" ", branch.FG, branch.BG),
	}

	add := func(count int, symbol string, pair theme.Pair) {
		if seg, ok := countSegment(count, symbol, pair); ok {
			segments = append(segments, seg)
		}
	}

	if g.opts.ShowAheadBehind {
		if stats.Ahead != nil {
			add(*stats.Ahead, SymbolAhead, g.theme.GitAhead)
		}
		if stats.Behind != nil {
			add(*stats.Behind, SymbolBehind, g.theme.GitBehind)
		}
	}
	add(stats.Staged, SymbolStaged, g.theme.GitStaged)
	add(stats.NonStaged, SymbolNotStaged, g.theme.GitNotStaged)
	if g.opts.ShowUntracked {
		add(stats.Untracked, SymbolUntracked, g.theme.GitUntracked)
	}
	if g.opts.ShowConflicted {
		add(stats.Conflicted, SymbolConflicted, g.theme.GitConflicted)
	}

	return segments
}

// countSegment renders "symbol" for one, "<n>symbol" for more, nothing for zero.
func countSegment(count int, symbol string, pair theme.Pair) (prompt.Segment, bool) {
	switch {
	case count <= 0:
		return prompt.Segment{}, false
	case count == 1:
		return prompt.Simple(" "+symbol+" ", pair.FG, pair.BG), true
	default:
		return prompt.Simple(fmt.Sprintf(" %d%s ", count, symbol), pair.FG, pair.BG), true
	}
}
