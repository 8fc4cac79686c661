package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SourceExt is the Monkey source file extension.
const SourceExt = ".mky"

// DirResult is the tokenization outcome for one file of a directory walk.
type DirResult struct {
	Path   string // path relative to the walked directory
	Result *TokenizeResult
}

// listSourceFiles returns the sorted relative paths of all *.mky files
// under dir.
func listSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, SourceExt) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// TokenizeDir lexes every *.mky file under dir, bounded by GOMAXPROCS
// workers. Results come back in sorted path order regardless of which
// worker finished first.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics int) ([]DirResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}

	results := make([]DirResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, rel := range files {
		i, rel := i, rel
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Tokenize(filepath.Join(dir, rel), maxDiagnostics)
			if err != nil {
				return err
			}
			results[i] = DirResult{Path: rel, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
