// Package driver orchestrates the pipeline over real files: collecting
// inputs, running the formatter, writing results back, and the debug
// tokenize/parse paths used by the CLI.
package driver

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"yangfmt/internal/format"
	"yangfmt/internal/source"
)

// FormatOptions configures a multi-file formatting run.
type FormatOptions struct {
	// Check reports whether files would change without touching them.
	Check bool
	// Stdout returns formatted content in the results instead of rewriting
	// files on disk.
	Stdout bool
	// Cache skips files whose content is already known to be canonical.
	Cache bool
	// Jobs caps the number of files formatted concurrently; 0 means one
	// per CPU.
	Jobs int

	Format format.Options
}

// FormatResult captures the outcome for a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Formatted []byte
	Err       error

	// File holds the loaded source when it was read successfully, for
	// diagnostic rendering.
	File *source.File
}

// FormatPaths formats the given files and directories (recursively
// collecting .yang files). Every invocation owns its inputs end to end;
// files are independent, so they are formatted in parallel.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectSourceFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("fmt: no YANG files found")
	}

	var cache *DiskCache
	if opts.Cache {
		// A broken cache only costs speed, never correctness.
		cache, _ = OpenDiskCache("yangfmt")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]FormatResult, len(files))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(jobs)

	for i, path := range files {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = formatSingleFile(path, opts, cache)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatSingleFile(path string, opts FormatOptions, cache *DiskCache) FormatResult {
	result := FormatResult{Path: path}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		result.Err = err
		return result
	}
	file := fileSet.Get(fileID)
	result.File = file

	key := cacheKey(file.Hash, opts.Format)
	if cache.IsClean(key) {
		if opts.Stdout {
			result.Formatted = file.Content
		}
		return result
	}

	var buf bytes.Buffer
	buf.Grow(len(file.Content))
	if err := format.FormatFile(&buf, file, opts.Format); err != nil {
		result.Err = err
		return result
	}
	formatted := buf.Bytes()

	changed := !bytes.Equal(file.Content, formatted)
	if !changed {
		cache.MarkClean(key)
	}

	switch {
	case opts.Check:
		result.Changed = changed

	case opts.Stdout:
		result.Formatted = formatted
		result.Changed = changed

	case changed:
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
			result.Err = err
			return result
		}
		result.Changed = true
		cache.MarkClean(cacheKey(hashBytes(formatted), opts.Format))
	}

	return result
}

func collectSourceFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			// Files named explicitly are formatted regardless of suffix.
			addFile(path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(p, ".yang") {
				addFile(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
