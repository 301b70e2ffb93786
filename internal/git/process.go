package git

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	powerlineerrors "github.com/alexisbeaulieu97/powerline/pkg/errors"
)

// ProcessSource reads status by running `git status --porcelain=v2 --branch`.
type ProcessSource struct {
	// Binary overrides the git executable; empty means "git" from PATH.
	Binary string
	// AheadBehind keeps the upstream counts git reports.
	AheadBehind bool
}

var _ StatusSource = ProcessSource{}

// Status runs git in root and parses its machine-readable output.
func (p ProcessSource) Status(root string) (Stats, error) {
	bin := p.Binary
	if bin == "" {
		bin = "git"
	}

	cmd := exec.Command(bin, "status", "--porcelain=v2", "--branch", "--untracked-files=all")
	cmd.Dir = root
	// Never take the index lock from a prompt.
	cmd.Env = append(os.Environ(), "GIT_OPTIONAL_LOCKS=0")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return Stats{}, powerlineerrors.NewQueryError(root, fmt.Errorf("git status failed: %w", err))
	}

	stats, err := ParsePorcelainV2(bytes.NewReader(output))
	if err != nil {
		return Stats{}, powerlineerrors.NewMalformedError(root, err)
	}
	if !p.AheadBehind {
		stats.Ahead, stats.Behind = nil, nil
	}
	return stats, nil
}

// ParsePorcelainV2 turns `git status --porcelain=v2 --branch` output into Stats.
func ParsePorcelainV2(r io.Reader) (Stats, error) {
	var (
		stats   Stats
		oid     string
		head    string
		hasHead bool
	)

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if line == "" {
			continue
		}

		switch line[0] {
		case '#':
			fields := strings.Fields(line)
			if len(fields) < 3 {
				return Stats{}, fmt.Errorf("line %d: short header %q", lineNo, line)
			}
			switch fields[1] {
			case "branch.oid":
				oid = fields[2]
			case "branch.head":
				head = fields[2]
				hasHead = true
			case "branch.ab":
				if len(fields) != 4 {
					return Stats{}, fmt.Errorf("line %d: bad ahead/behind header %q", lineNo, line)
				}
				ahead, err := parseCount(fields[2], '+')
				if err != nil {
					return Stats{}, fmt.Errorf("line %d: %w", lineNo, err)
				}
				behind, err := parseCount(fields[3], '-')
				if err != nil {
					return Stats{}, fmt.Errorf("line %d: %w", lineNo, err)
				}
				stats.Ahead = intPtr(ahead)
				stats.Behind = intPtr(behind)
			}
		case '1', '2', 'u':
			if len(line) < 5 || line[1] != ' ' || line[4] != ' ' {
				return Stats{}, fmt.Errorf("line %d: bad change entry %q", lineNo, line)
			}
			stats.tally(line[2], line[3])
		case '?':
			stats.Untracked++
		case '!':
		default:
			return Stats{}, fmt.Errorf("line %d: unknown entry %q", lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Stats{}, err
	}

	if !hasHead {
		return Stats{}, fmt.Errorf("missing branch.head header")
	}
	stats.Branch = head
	if head == "(detached)" && len(oid) >= shortHashLen && oid != "(initial)" {
		stats.Branch = oid[:shortHashLen]
	}

	return stats, nil
}

func parseCount(field string, sign byte) (int, error) {
	if len(field) < 2 || field[0] != sign {
		return 0, fmt.Errorf("bad count %q", field)
	}
	n, err := strconv.Atoi(field[1:])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("bad count %q", field)
	}
	return n, nil
}
