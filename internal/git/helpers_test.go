package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	dir  string
	repo *gogit.Repository
	wt   *gogit.Worktree
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	f := &fixture{dir: dir, repo: repo, wt: wt}
	f.write(t, "README.md", "hello prompt")
	f.commit(t, "initial", "README.md")
	return f
}

func (f *fixture) write(t *testing.T, name, contents string) {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func (f *fixture) stage(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := f.wt.Add(name)
		require.NoError(t, err)
	}
}

func (f *fixture) commit(t *testing.T, msg string, names ...string) plumbing.Hash {
	t.Helper()
	f.stage(t, names...)
	hash, err := f.wt.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Powerline",
			Email: "powerline@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
	return hash
}

func (f *fixture) branch(t *testing.T) string {
	t.Helper()
	head, err := f.repo.Head()
	require.NoError(t, err)
	return head.Name().Short()
}

// trackUpstream points origin/<branch> at hash and configures it as upstream.
func (f *fixture) trackUpstream(t *testing.T, hash plumbing.Hash) {
	t.Helper()
	branch := f.branch(t)

	_, err := f.repo.CreateRemote(&config.RemoteConfig{Name: "origin", URLs: []string{"/nonexistent/origin.git"}})
	require.NoError(t, err)
	require.NoError(t, f.repo.Storer.SetReference(
		plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", branch), hash)))
	require.NoError(t, f.repo.CreateBranch(&config.Branch{
		Name:   branch,
		Remote: "origin",
		Merge:  plumbing.NewBranchReferenceName(branch),
	}))
}

// dirtyTree leaves one untracked, one staged and one modified file.
func (f *fixture) dirtyTree(t *testing.T) {
	t.Helper()
	f.write(t, "new.txt", "untracked")
	f.write(t, "staged.txt", "staged")
	f.stage(t, "staged.txt")
	f.write(t, "README.md", "changed")
}

func (f *fixture) blob(t *testing.T, contents string) plumbing.Hash {
	t.Helper()
	obj := f.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	w, err := obj.Writer()
	require.NoError(t, err)
	_, err = w.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	hash, err := f.repo.Storer.SetEncodedObject(obj)
	require.NoError(t, err)
	return hash
}

// conflict leaves name unmerged the way an interrupted merge does: ancestor,
// ours and theirs stages in the index and conflict markers in the worktree.
func (f *fixture) conflict(t *testing.T, name, ours, theirs string) {
	t.Helper()
	idx, err := f.repo.Storer.Index()
	require.NoError(t, err)

	var ancestor plumbing.Hash
	entries := idx.Entries[:0]
	for _, e := range idx.Entries {
		if e.Name == name {
			ancestor = e.Hash
			continue
		}
		entries = append(entries, e)
	}
	require.False(t, ancestor.IsZero(), "%s is not tracked", name)

	for _, stage := range []struct {
		stage index.Stage
		hash  plumbing.Hash
	}{
		{index.AncestorMode, ancestor},
		{index.OurMode, f.blob(t, ours)},
		{index.TheirMode, f.blob(t, theirs)},
	} {
		entries = append(entries, &index.Entry{Name: name, Hash: stage.hash, Mode: filemode.Regular, Stage: stage.stage})
	}
	idx.Entries = entries
	require.NoError(t, f.repo.Storer.SetIndex(idx))

	f.write(t, name, "<<<<<<< HEAD\n"+ours+"\n=======\n"+theirs+"\n>>>>>>> other\n")
}

func requireGitBinary(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// runGit runs the git binary in dir with a fixed identity and returns its
// trimmed output. A non-zero exit fails the test unless allowFailure is set.
func runGit(t *testing.T, dir string, allowFailure bool, args ...string) string {
	t.Helper()
	args = append([]string{"-c", "user.name=Powerline", "-c", "user.email=powerline@example.com", "-c", "commit.gpgsign=false"}, args...)
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_NOSYSTEM=1", "HOME="+dir)
	out, err := cmd.CombinedOutput()
	if !allowFailure {
		require.NoError(t, err, string(out))
	}
	return strings.TrimSpace(string(out))
}

type fakeSource struct {
	stats Stats
	err   error
	roots []string
}

func (f *fakeSource) Status(root string) (Stats, error) {
	f.roots = append(f.roots, root)
	return f.stats, f.err
}
