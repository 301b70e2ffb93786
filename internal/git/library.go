package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"

	powerlineerrors "github.com/alexisbeaulieu97/powerline/pkg/errors"
)

const shortHashLen = 7

// LibrarySource reads status in-process through go-git.
type LibrarySource struct {
	// AheadBehind walks commit history to compare HEAD with its upstream.
	AheadBehind bool
}

var _ StatusSource = LibrarySource{}

// Status opens the repository at root and builds a snapshot.
func (l LibrarySource) Status(root string) (Stats, error) {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{EnableDotGitCommonDir: true})
	if err != nil {
		return Stats{}, powerlineerrors.NewQueryError(root, fmt.Errorf("open repository: %w", err))
	}

	branch, head, err := headState(repo)
	if err != nil {
		return Stats{}, powerlineerrors.NewQueryError(root, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return Stats{}, powerlineerrors.NewQueryError(root, fmt.Errorf("open worktree: %w", err))
	}
	status, err := wt.Status()
	if err != nil {
		return Stats{}, powerlineerrors.NewQueryError(root, fmt.Errorf("read status: %w", err))
	}

	// Worktree status reports unmerged paths as ordinary changes, so
	// conflicts come from the index stages instead.
	unmerged, err := unmergedPaths(repo)
	if err != nil {
		return Stats{}, powerlineerrors.NewQueryError(root, err)
	}

	stats := Stats{Branch: branch, Conflicted: len(unmerged)}
	for path, file := range status {
		if _, conflicted := unmerged[path]; conflicted {
			continue
		}
		stats.tally(byte(file.Staging), byte(file.Worktree))
	}

	if !l.AheadBehind {
		return stats, nil
	}
	// A shallow or damaged history only hides the counts.
	if ahead, behind, ok := divergence(repo, branch, head); ok {
		stats.Ahead = intPtr(ahead)
		stats.Behind = intPtr(behind)
	}

	return stats, nil
}

// headState returns the branch name and the commit HEAD points at. A detached
// HEAD is named by its abbreviated hash; an unborn branch has a zero hash.
func headState(repo *gogit.Repository) (string, plumbing.Hash, error) {
	ref, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", plumbing.ZeroHash, fmt.Errorf("read HEAD: %w", err)
	}

	if ref.Type() != plumbing.SymbolicReference {
		hash := ref.Hash()
		return hash.String()[:shortHashLen], hash, nil
	}

	branch := ref.Target().Short()
	resolved, err := repo.Reference(ref.Target(), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return branch, plumbing.ZeroHash, nil
	}
	if err != nil {
		return "", plumbing.ZeroHash, fmt.Errorf("resolve %s: %w", ref.Target(), err)
	}
	return branch, resolved.Hash(), nil
}

// unmergedPaths lists index paths that carry a conflict stage.
func unmergedPaths(repo *gogit.Repository) (map[string]struct{}, error) {
	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}

	paths := make(map[string]struct{})
	for _, e := range idx.Entries {
		if e.Stage != index.Merged {
			paths[e.Name] = struct{}{}
		}
	}
	return paths, nil
}

// upstream resolves the configured upstream of branch to a commit hash.
func upstream(repo *gogit.Repository, branch string) (plumbing.Hash, bool) {
	cfg, err := repo.Config()
	if err != nil {
		return plumbing.ZeroHash, false
	}
	b, ok := cfg.Branches[branch]
	if !ok || b.Remote == "" || b.Merge == "" {
		return plumbing.ZeroHash, false
	}

	name := b.Merge
	if b.Remote != "." {
		name = plumbing.NewRemoteReferenceName(b.Remote, b.Merge.Short())
	}
	ref, err := repo.Reference(name, true)
	if err != nil {
		return plumbing.ZeroHash, false
	}
	return ref.Hash(), true
}

func divergence(repo *gogit.Repository, branch string, head plumbing.Hash) (int, int, bool) {
	if head.IsZero() {
		return 0, 0, false
	}
	up, ok := upstream(repo, branch)
	if !ok {
		return 0, 0, false
	}
	if up == head {
		return 0, 0, true
	}

	local, err := ancestors(repo, head)
	if err != nil {
		return 0, 0, false
	}
	remote, err := ancestors(repo, up)
	if err != nil {
		return 0, 0, false
	}

	ahead, behind := 0, 0
	for hash := range local {
		if _, shared := remote[hash]; !shared {
			ahead++
		}
	}
	for hash := range remote {
		if _, shared := local[hash]; !shared {
			behind++
		}
	}
	return ahead, behind, true
}

func ancestors(repo *gogit.Repository, from plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	iter, err := repo.Log(&gogit.LogOptions{From: from})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	seen := make(map[plumbing.Hash]struct{})
	err = iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = struct{}{}
		return nil
	})
	return seen, err
}
