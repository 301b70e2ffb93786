package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	powerlineerrors "github.com/alexisbeaulieu97/powerline/pkg/errors"
)

// StatusSource reads a Stats snapshot for a repository root.
type StatusSource interface {
	Status(root string) (Stats, error)
}

// Backend names accepted by NewSource.
const (
	BackendLibrary = "library"
	BackendProcess = "process"
)

// SourceOptions tunes what a backend computes.
type SourceOptions struct {
	// AheadBehind requests upstream divergence counts. Without it Ahead and
	// Behind stay nil.
	AheadBehind bool
}

// NewSource returns the status backend registered under name.
func NewSource(name string, opts SourceOptions) (StatusSource, error) {
	switch name {
	case BackendLibrary, "":
		return LibrarySource{AheadBehind: opts.AheadBehind}, nil
	case BackendProcess:
		return ProcessSource{AheadBehind: opts.AheadBehind}, nil
	default:
		return nil, fmt.Errorf("unknown git backend %q", name)
	}
}

// FindRoot walks upward from start looking for a directory that directly
// contains a .git entry. It returns false once the filesystem root has been
// checked.
func FindRoot(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Kind tags the outcome of a Query.
type Kind int

const (
	// Absent means no repository encloses the start directory.
	Absent Kind = iota
	// Ok means Stats holds a fresh snapshot.
	Ok
	// Failed means a repository was found but could not be queried.
	Failed
)

func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Ok:
		return "ok"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of a status query.
type Result struct {
	Kind  Kind
	Root  string
	Stats Stats
	Err   error
}

// Query locates the repository enclosing start and reads its status.
// Errors are always reported as *errors.QueryError.
func Query(src StatusSource, start string) Result {
	root, ok := FindRoot(start)
	if !ok {
		return Result{Kind: Absent}
	}

	stats, err := src.Status(root)
	if err != nil {
		var queryErr *powerlineerrors.QueryError
		if !errors.As(err, &queryErr) {
			err = powerlineerrors.NewQueryError(root, err)
		}
		return Result{Kind: Failed, Root: root, Err: err}
	}

	return Result{Kind: Ok, Root: root, Stats: stats}
}
