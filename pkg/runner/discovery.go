package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"
)

// Discover finds Go source files under opts.Paths. It returns a sorted,
// de-duplicated list of absolute paths.
//
// Directories the go tool ignores are skipped: hidden and underscore
// prefixed names, vendor and testdata.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	excludes, err := compileGlobs(opts.excludes())
	if err != nil {
		return nil, err
	}

	fsys := opts.fs()
	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := fsys.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			// Explicitly named files only need to be Go source.
			if isGoFile(absPath) && !excluded(excludes, workDir, absPath) {
				add(absPath)
			}
			continue
		}

		discovered, err := walkDirectory(ctx, fsys, absPath, workDir, excludes)
		if err != nil {
			return nil, err
		}
		for _, f := range discovered {
			add(f)
		}
	}

	slices.Sort(files)
	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

func walkDirectory(ctx context.Context, fsys afero.Fs, root, workDir string, excludes []glob.Glob) ([]string, error) {
	var files []string

	err := afero.Walk(fsys, root, func(path string, info fs.FileInfo, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			// Unreadable directories are skipped, not fatal.
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if info.IsDir() {
			if path != root && ignoredDir(info.Name()) {
				return filepath.SkipDir
			}
			if path != root && excluded(excludes, workDir, path) {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() || !isGoFile(path) {
			return nil
		}
		if excluded(excludes, workDir, path) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

func ignoredDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
		name == "vendor" || name == "testdata"
}

func isGoFile(path string) bool {
	name := filepath.Base(path)
	return filepath.Ext(name) == ".go" && !strings.HasPrefix(name, ".") && !strings.HasPrefix(name, "_")
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// excluded matches path, relative to workDir, against the patterns. A
// directory also matches patterns written for its contents ("gen/**").
func excluded(globs []glob.Glob, workDir, path string) bool {
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, g := range globs {
		if g.Match(rel) || g.Match(rel+"/") {
			return true
		}
	}
	return false
}
