package git

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	powerlineerrors "github.com/alexisbeaulieu97/powerline/pkg/errors"
)

func TestParsePorcelainV2(t *testing.T) {
	t.Parallel()

	output := strings.Join([]string{
		"# branch.oid 4f2a9c1d0e8b7a6f5e4d3c2b1a0f9e8d7c6b5a49",
		"# branch.head feature/prompt",
		"# branch.upstream origin/feature/prompt",
		"# branch.ab +3 -1",
		"1 M. N... 100644 100644 100644 aaaa bbbb staged.go",
		"1 .M N... 100644 100644 100644 aaaa bbbb modified.go",
		"1 MM N... 100644 100644 100644 aaaa bbbb both.go",
		"2 R. N... 100644 100644 100644 aaaa bbbb R100 new.go\told.go",
		"u UU N... 100644 100644 100644 100644 aaaa bbbb cccc conflict.go",
		"? scratch.txt",
		"? notes.md",
		"! build/",
		"",
	}, "\n")

	stats, err := ParsePorcelainV2(strings.NewReader(output))
	require.NoError(t, err)
	require.Equal(t, "feature/prompt", stats.Branch)
	require.Equal(t, 3, stats.Staged)
	require.Equal(t, 1, stats.NonStaged)
	require.Equal(t, 1, stats.Conflicted)
	require.Equal(t, 2, stats.Untracked)
	require.Equal(t, 3, *stats.Ahead)
	require.Equal(t, 1, *stats.Behind)
}

func TestParsePorcelainV2Branches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		branch string
	}{
		{
			name:   "detached",
			input:  "# branch.oid 4f2a9c1d0e8b7a6f5e4d3c2b1a0f9e8d7c6b5a49\n# branch.head (detached)\n",
			branch: "4f2a9c1",
		},
		{
			name:   "unborn",
			input:  "# branch.oid (initial)\n# branch.head main\n",
			branch: "main",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := ParsePorcelainV2(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.branch, stats.Branch)
			require.Nil(t, stats.Ahead)
			require.Nil(t, stats.Behind)
		})
	}
}

func TestParsePorcelainV2Malformed(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"missing head":  "# branch.oid abc\n",
		"unknown entry": "# branch.head main\nZ what\n",
		"short change":  "# branch.head main\n1 M\n",
		"bad ahead":     "# branch.head main\n# branch.ab 3 -1\n",
		"bad behind":    "# branch.head main\n# branch.ab +3 -x\n",
		"short header":  "# branch.head\n",
		"bad ab arity":  "# branch.head main\n# branch.ab +1\n",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePorcelainV2(strings.NewReader(input))
			require.Error(t, err)
		})
	}
}

func TestProcessSourceMatchesLibrary(t *testing.T) {
	requireGitBinary(t)

	f := newFixture(t)
	base, err := f.repo.Head()
	require.NoError(t, err)
	f.trackUpstream(t, base.Hash())
	f.write(t, "ahead.txt", "a")
	f.commit(t, "ahead", "ahead.txt")
	f.dirtyTree(t)

	fromProcess, err := ProcessSource{AheadBehind: true}.Status(f.dir)
	require.NoError(t, err)
	fromLibrary, err := LibrarySource{AheadBehind: true}.Status(f.dir)
	require.NoError(t, err)

	require.Equal(t, fromLibrary, fromProcess)
	require.Equal(t, 1, *fromProcess.Ahead)
	require.Equal(t, 1, fromProcess.Staged)

	quiet, err := ProcessSource{}.Status(f.dir)
	require.NoError(t, err)
	require.Nil(t, quiet.Ahead)
	require.Nil(t, quiet.Behind)
}

func TestBackendsAgreeOnMergeConflict(t *testing.T) {
	requireGitBinary(t)

	dir := t.TempDir()
	runGit(t, dir, false, "init", "-q")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("base\n"), 0o644))
	runGit(t, dir, false, "add", "README.md")
	runGit(t, dir, false, "commit", "-q", "-m", "base")
	mainBranch := runGit(t, dir, false, "symbolic-ref", "--short", "HEAD")

	runGit(t, dir, false, "checkout", "-q", "-b", "side")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("theirs\n"), 0o644))
	runGit(t, dir, false, "commit", "-q", "-am", "theirs")

	runGit(t, dir, false, "checkout", "-q", mainBranch)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ours\n"), 0o644))
	runGit(t, dir, false, "commit", "-q", "-am", "ours")
	runGit(t, dir, true, "merge", "side")

	fromProcess, err := ProcessSource{}.Status(dir)
	require.NoError(t, err)
	fromLibrary, err := LibrarySource{}.Status(dir)
	require.NoError(t, err)

	require.Equal(t, 1, fromProcess.Conflicted)
	require.Equal(t, 0, fromProcess.Staged)
	require.Equal(t, fromProcess, fromLibrary)
}

func TestBackendsAgreeOnUntrackedDirectory(t *testing.T) {
	requireGitBinary(t)

	f := newFixture(t)
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		f.write(t, filepath.Join("newdir", name), name)
	}

	fromProcess, err := ProcessSource{}.Status(f.dir)
	require.NoError(t, err)
	fromLibrary, err := LibrarySource{}.Status(f.dir)
	require.NoError(t, err)

	require.Equal(t, 3, fromProcess.Untracked)
	require.Equal(t, fromLibrary, fromProcess)
}

func TestProcessSourceMissingBinary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := ProcessSource{Binary: filepath.Join(dir, "no-such-git")}.Status(dir)

	var queryErr *powerlineerrors.QueryError
	require.ErrorAs(t, err, &queryErr)
	require.Equal(t, powerlineerrors.QueryFailed, queryErr.Kind)
}

func TestProcessSourceFailingCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	t.Parallel()

	dir := t.TempDir()
	script := filepath.Join(dir, "git")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho 'fatal: not a git repository' >&2\nexit 128\n"), 0o755))

	_, err := ProcessSource{Binary: script}.Status(dir)

	var queryErr *powerlineerrors.QueryError
	require.ErrorAs(t, err, &queryErr)
	require.Equal(t, powerlineerrors.QueryFailed, queryErr.Kind)
	require.Contains(t, err.Error(), "not a git repository")
}

func TestProcessSourceMalformedOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	t.Parallel()

	dir := t.TempDir()
	script := filepath.Join(dir, "git")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho 'this is not porcelain'\n"), 0o755))

	_, err := ProcessSource{Binary: script}.Status(dir)

	var queryErr *powerlineerrors.QueryError
	require.ErrorAs(t, err, &queryErr)
	require.Equal(t, powerlineerrors.Malformed, queryErr.Kind)
}
