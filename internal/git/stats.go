package git

// Stats is a single snapshot of repository state.
type Stats struct {
	Untracked  int
	Conflicted int
	NonStaged  int
	Staged     int
	// Ahead and Behind are nil when the branch has no upstream.
	Ahead  *int
	Behind *int
	Branch string
}

// IsDirty reports local working tree changes. Ahead/behind are ignored.
func (s Stats) IsDirty() bool {
	return s.Untracked+s.Conflicted+s.Staged+s.NonStaged > 0
}

func unmodified(code byte) bool {
	return code == ' ' || code == '.'
}

// conflict reports the XY pairs git uses for unmerged paths.
func conflict(index, worktree byte) bool {
	if index == 'U' || worktree == 'U' {
		return true
	}
	return (index == 'A' && worktree == 'A') || (index == 'D' && worktree == 'D')
}

// tally classifies one file into exactly one bucket from its XY status codes.
// Priority: untracked, conflicted, staged, not staged.
func (s *Stats) tally(index, worktree byte) {
	switch {
	case index == '?' || worktree == '?':
		s.Untracked++
	case conflict(index, worktree):
		s.Conflicted++
	case !unmodified(index):
		s.Staged++
	case !unmodified(worktree):
		s.NonStaged++
	}
}

func intPtr(v int) *int {
	return &v
}
