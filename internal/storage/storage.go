// Package storage reads and writes document files for the editor. Loads
// split the file into rows the way the engine wants them; saves go
// through a temporary file and a rename so a crash mid-write never
// truncates the original.
package storage

import (
	"fmt"
	"os"
	"strings"
)

// FileError wraps a failed file operation with what was being attempted.
type FileError struct {
	Op   string // "open" or "save"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// FileStore is the default persistence collaborator, backed by the local
// filesystem.
type FileStore struct{}

// Load reads the file at path and returns its lines without terminators.
// Windows line endings are normalized to \n first. A zero-byte file loads
// as zero lines; a file ending in a newline does not grow a phantom empty
// final line.
func (FileStore) Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	if len(data) == 0 {
		return nil, nil
	}

	text := string(data)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// Save writes text to path atomically and returns the number of bytes
// written. The text lands in path+".tmp" first and is renamed over the
// destination only after a successful write.
func (FileStore) Save(path, text string) (int, error) {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0o644); err != nil {
		return 0, &FileError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return 0, &FileError{Op: "save", Path: path, Err: err}
	}
	return len(text), nil
}
