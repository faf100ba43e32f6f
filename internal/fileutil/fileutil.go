// Package fileutil locates generated client sources and writes output files.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ReadableByAll is the file permission mode for generated source files
// intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644

// DirPerm is the permission mode for directories created for output files.
const DirPerm os.FileMode = 0o755

// TypesFileName is the file an OpenAPI TypeScript client generator writes
// its type definitions to.
const TypesFileName = "types.gen.ts"

// skipDirs are never searched for generated type files.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// ErrNotFound is returned by FindFile when no matching file exists.
var ErrNotFound = errors.New("file not found")

// FindFile returns the path of the file called name in dir, or in the
// shallowest subdirectory of dir containing one. Among files at the same
// depth the lexically first path wins.
func FindFile(dir, name string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", dir)
	}

	direct := filepath.Join(dir, name)
	if fi, err := os.Stat(direct); err == nil && !fi.IsDir() {
		return direct, nil
	}

	var matches []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable subtrees are skipped
			if d != nil && d.IsDir() && path != dir {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() == name {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", ErrNotFound
	}

	sort.SliceStable(matches, func(i, j int) bool {
		di, dj := depth(matches[i]), depth(matches[j])
		if di != dj {
			return di < dj
		}
		return matches[i] < matches[j]
	})
	return matches[0], nil
}

func depth(path string) int {
	n := 0
	for _, c := range filepath.ToSlash(path) {
		if c == '/' {
			n++
		}
	}
	return n
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, ReadableByAll); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
