// Package fsutil provides the file primitives used when rewriting files in
// place: whole-file reads with UTF-8 validation, atomic writes, and sidecar
// backups.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrInvalidEncoding indicates the content is not valid UTF-8.
	ErrInvalidEncoding = errors.New("content is not valid UTF-8")
)

// FileInfo captures what is needed to write a file back unchanged in kind.
type FileInfo struct {
	// Path is the path the file was read from.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// Size is the file size in bytes.
	Size int64
}

// ReadText reads a whole file and checks that it is valid UTF-8.
func ReadText(ctx context.Context, path string) (string, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return "", nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return "", nil, classify(path, err)
	}
	if stat.IsDir() {
		return "", nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, classify(path, err)
	}

	if !utf8.Valid(content) {
		return "", nil, fmt.Errorf("%w: %s at byte %d", ErrInvalidEncoding, path, firstInvalid(content))
	}

	info := &FileInfo{
		Path: path,
		Mode: stat.Mode().Perm(),
		Size: stat.Size(),
	}
	return string(content), info, nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}

func firstInvalid(content []byte) int {
	for offset := 0; offset < len(content); {
		c, size := utf8.DecodeRune(content[offset:])
		if c == utf8.RuneError && size <= 1 {
			return offset
		}
		offset += size
	}
	return len(content)
}
