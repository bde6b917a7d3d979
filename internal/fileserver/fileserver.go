// Package fileserver reads and writes media files on a local volume.
package fileserver

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	directoryPerms = 0o755
	filePerms      = 0o644
)

// RecipesDir holds every uploaded recipe image.
const RecipesDir = "recipes"

// topLevelDirectories are the only directories writes and deletes may touch.
var topLevelDirectories = []string{RecipesDir}

var (
	ErrInvalidPath = errors.New("invalid path")
	ErrNotExist    = errors.New("file does not exist")
)

type FileServer struct {
	baseDir string
}

func New(baseDir string) *FileServer {
	return &FileServer{
		baseDir: baseDir,
	}
}

func (f *FileServer) BaseDirectory() string {
	if f == nil {
		return ""
	}
	return f.baseDir
}

// cleanPath resolves path under baseDir and rejects anything that escapes it.
func cleanPath(baseDir, path string) (string, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolving base directory: %w", err)
	}
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("absolute path %q: %w", path, ErrInvalidPath)
	}
	full := filepath.Join(absBase, filepath.Clean(path))
	rel, err := filepath.Rel(absBase, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes base: %w", path, ErrInvalidPath)
	}
	return full, nil
}

func topLevelDirectory(path string) string {
	cleaned := strings.TrimPrefix(filepath.Clean(path), string(filepath.Separator))
	top, _, _ := strings.Cut(cleaned, string(filepath.Separator))
	return top
}

func isEmptyDirectory(dir string) (bool, error) {
	d, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer func() { _ = d.Close() }()

	if _, err := d.Readdirnames(1); errors.Is(err, io.EOF) {
		return true, nil
	} else if err != nil {
		return false, err
	}
	return false, nil
}

func (f *FileServer) checkPath(path string) (string, error) {
	if !slices.Contains(topLevelDirectories, topLevelDirectory(path)) {
		return "", fmt.Errorf("top level directory of %q: %w", path, ErrInvalidPath)
	}
	return cleanPath(f.baseDir, path)
}

// Write stores data at path (relative to the base directory) and returns the
// absolute location written.
func (f *FileServer) Write(path string, data []byte) (location string, n int, err error) {
	if f == nil {
		return "", 0, nil
	}

	fullpath, err := f.checkPath(path)
	if err != nil {
		return "", 0, err
	}
	if err := os.MkdirAll(filepath.Dir(fullpath), directoryPerms); err != nil {
		return "", 0, fmt.Errorf("creating parent directories: %w", err)
	}

	file, err := os.OpenFile(fullpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerms)
	if err != nil {
		return "", 0, fmt.Errorf("creating file: %w", err)
	}
	defer func() { _ = file.Close() }()

	n, err = file.Write(data)
	if err != nil {
		return "", 0, fmt.Errorf("writing file: %w", err)
	}

	return fullpath, n, nil
}

// Delete removes the file at path and prunes directories it leaves empty,
// stopping at the top-level directory.
func (f *FileServer) Delete(path string) error {
	if f == nil {
		return nil
	}

	fullpath, err := f.checkPath(path)
	if err != nil {
		return err
	}
	if err := os.Remove(fullpath); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%q: %w", path, ErrNotExist)
	} else if err != nil {
		return fmt.Errorf("removing file: %w", err)
	}

	stop, err := cleanPath(f.baseDir, topLevelDirectory(path))
	if err != nil {
		return err
	}
	for dir := filepath.Dir(fullpath); dir != stop && strings.HasPrefix(dir, stop); dir = filepath.Dir(dir) {
		empty, err := isEmptyDirectory(dir)
		if err != nil || !empty {
			break
		}
		if err := os.Remove(dir); err != nil {
			break
		}
	}
	return nil
}

func (f *FileServer) Exists(path string) (bool, error) {
	if f == nil {
		return false, nil
	}
	fullpath, err := cleanPath(f.baseDir, path)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(fullpath); errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

// Handler serves files under prefix without directory listings.
func (f *FileServer) Handler(prefix string) http.Handler {
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(f.baseDir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
