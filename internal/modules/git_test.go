package modules

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/powerline/internal/git"
	"github.com/alexisbeaulieu97/powerline/internal/prompt"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
	powerlineerrors "github.com/alexisbeaulieu97/powerline/pkg/errors"
)

type stubSource struct {
	stats git.Stats
	err   error
	calls int
}

func (s *stubSource) Status(string) (git.Stats, error) {
	s.calls++
	return s.stats, s.err
}

func fakeRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	return dir
}

func envAt(dir string) Env {
	return Env{
		Getenv: func(string) string { return "" },
		Getwd:  func() (string, error) { return dir, nil },
	}
}

func runModule(m prompt.Module) []prompt.Segment {
	var line prompt.Line
	m.AppendSegments(&line)
	return line.Segments()
}

func intPtr(v int) *int { return &v }

func TestGitDirtyBranchWithStagedCount(t *testing.T) {
	th := theme.Simple()
	src := &stubSource{stats: git.Stats{Branch: "main", Staged: 2}}

	got := runModule(NewGit(th, envAt(fakeRepo(t)), src, GitOptions{}))

	require.Len(t, got, 2)
	require.Equal(t, " main ", got[0].Text)
	require.Equal(t, th.GitDirty.FG, got[0].FG)
	require.Equal(t, th.GitDirty.BG, got[0].BG)
	require.Equal(t, " 2✔ ", got[1].Text)
	require.Equal(t, th.GitStaged.BG, got[1].BG)
}

func TestGitCleanBranch(t *testing.T) {
	th := theme.Simple()
	src := &stubSource{stats: git.Stats{Branch: "main", Ahead: intPtr(3), Behind: intPtr(1)}}

	got := runModule(NewGit(th, envAt(fakeRepo(t)), src, GitOptions{}))

	require.Len(t, got, 1)
	require.Equal(t, " main ", got[0].Text)
	require.Equal(t, th.GitClean.FG, got[0].FG)
	require.Equal(t, th.GitClean.BG, got[0].BG)
}

func TestGitSingleCountsUseBareSymbol(t *testing.T) {
	th := theme.Simple()
	src := &stubSource{stats: git.Stats{Branch: "dev", Staged: 1, NonStaged: 1}}

	got := runModule(NewGit(th, envAt(fakeRepo(t)), src, GitOptions{}))

	require.Len(t, got, 3)
	require.Equal(t, " ✔ ", got[1].Text)
	require.Equal(t, " ✎ ", got[2].Text)
	require.Equal(t, th.GitNotStaged.BG, got[2].BG)
}

func TestGitDormantSegmentsAreOffByDefault(t *testing.T) {
	th := theme.Simple()
	stats := git.Stats{Branch: "dev", Untracked: 4, Conflicted: 1, Ahead: intPtr(2), Behind: intPtr(1)}

	got := runModule(NewGit(th, envAt(fakeRepo(t)), &stubSource{stats: stats}, GitOptions{}))
	require.Len(t, got, 1)
	require.Equal(t, th.GitDirty.BG, got[0].BG)

	all := GitOptions{ShowAheadBehind: true, ShowUntracked: true, ShowConflicted: true}
	got = runModule(NewGit(th, envAt(fakeRepo(t)), &stubSource{stats: stats}, all))

	var texts []string
	for _, s := range got {
		texts = append(texts, s.Text)
	}
	require.Equal(t, []string{" dev ", " 2⬆ ", " ⬇ ", " 4? ", " ✼ "}, texts)
}

func TestGitAheadBehindSkipsMissingUpstream(t *testing.T) {
	th := theme.Simple()
	src := &stubSource{stats: git.Stats{Branch: "dev"}}

	got := runModule(NewGit(th, envAt(fakeRepo(t)), src, GitOptions{ShowAheadBehind: true}))
	require.Len(t, got, 1)
}

func TestGitQueryFailureRendersSingleErrorSegment(t *testing.T) {
	th := theme.Simple()
	dir := fakeRepo(t)
	src := &stubSource{err: powerlineerrors.NewQueryError(dir, errors.New("index is corrupt"))}

	got := runModule(NewGit(th, envAt(dir), src, GitOptions{}))

	require.Len(t, got, 1)
	require.True(t, strings.HasPrefix(got[0].Text, " git error: "))
	require.Contains(t, got[0].Text, "index is corrupt")
	require.Equal(t, th.GitError.FG, got[0].FG)
	require.Equal(t, th.GitError.BG, got[0].BG)
}

func TestGitAbsentRepositoryIsSilent(t *testing.T) {
	if root, ok := git.FindRoot(os.TempDir()); ok {
		t.Skipf("temp dir is inside repository %s", root)
	}

	src := &stubSource{}
	got := runModule(NewGit(theme.Simple(), envAt(t.TempDir()), src, GitOptions{}))

	require.Empty(t, got)
	require.Zero(t, src.calls)
}

func TestGitUnknownWorkingDirectoryIsSilent(t *testing.T) {
	env := Env{Getwd: func() (string, error) { return "", errors.New("deleted") }}
	src := &stubSource{}

	got := runModule(NewGit(theme.Simple(), env, src, GitOptions{}))

	require.Empty(t, got)
	require.Zero(t, src.calls)
}

func TestGitWithLibraryBackend(t *testing.T) {
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	_, err = wt.Add("a.txt")
	require.NoError(t, err)
	_, err = wt.Commit("init", &gogit.CommitOptions{Author: &object.Signature{Name: "p", Email: "p@example.com", When: time.Now()}})
	require.NoError(t, err)
	head, err := repo.Head()
	require.NoError(t, err)

	sub := filepath.Join(dir, "nested", "deeper")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("changed"), 0o644))

	th := theme.Simple()
	got := runModule(NewGit(th, envAt(sub), git.LibrarySource{}, GitOptions{}))

	require.Len(t, got, 2)
	require.Equal(t, " "+head.Name().Short()+" ", got[0].Text)
	require.Equal(t, th.GitDirty.BG, got[0].BG)
	require.Equal(t, " ✎ ", got[1].Text)
}

func TestCountSegment(t *testing.T) {
	t.Parallel()

	pair := theme.Simple().GitStaged
	_, ok := countSegment(0, "x", pair)
	require.False(t, ok)

	seg, ok := countSegment(1, "x", pair)
	require.True(t, ok)
	require.Equal(t, " x ", seg.Text)

	seg, ok = countSegment(12, "x", pair)
	require.True(t, ok)
	require.Equal(t, " 12x ", seg.Text)
	require.Equal(t, pair.BG, seg.BG)
}
