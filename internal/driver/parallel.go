package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// listIoFiles expands the given paths into a sorted list of *.io files.
// Directories are walked recursively; explicit file arguments are taken as
// they are, whatever their extension.
func listIoFiles(paths []string) ([]string, error) {
	var files []string

	for _, p := range paths {
		st, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !st.IsDir() {
			files = append(files, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".io") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

// forEachFile runs fn over files in parallel, bounded by jobs (NumCPU when
// jobs <= 0). Results land at the file's own index, so output order is
// stable regardless of scheduling.
func forEachFile(ctx context.Context, files []string, jobs int, fn func(ctx context.Context, i int, path string) error) error {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return fn(ctx, i, path)
		})
	}
	return g.Wait()
}
