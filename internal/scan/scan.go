package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kerem-kaynak/phrase-matcher/pkg/phrase"
	"golang.org/x/sync/errgroup"
)

// Stdin names standard input in a path list.
const Stdin = "-"

// Result holds the matches found in one input.
type Result struct {
	Path    string         `json:"path"`
	Matches []phrase.Match `json:"matches"`
}

// Files scans every path against m using up to workers goroutines. Results
// follow the order of paths. The first read error cancels the remaining work.
func Files(ctx context.Context, m *phrase.Matcher, paths []string, workers int) ([]Result, error) {
	if err := checkStdin(paths); err != nil {
		return nil, err
	}
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := read(path)
			if err != nil {
				return err
			}
			results[i] = Result{Path: path, Matches: m.ParseText(text)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// checkStdin rejects lists naming stdin more than once; it can only be read once.
func checkStdin(paths []string) error {
	seen := false
	for _, p := range paths {
		if p != Stdin {
			continue
		}
		if seen {
			return errors.New("stdin listed more than once")
		}
		seen = true
	}
	return nil
}

func read(path string) (string, error) {
	if path == Stdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", path, err)
	}
	return string(data), nil
}
