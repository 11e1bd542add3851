package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const workplanFileName = "roadmap.pdf"

// Workplan is the uploaded project plan stored on disk before the database
// transaction runs. The file is a scoped resource: it stays only if Keep is
// called, and Cleanup removes it on every other exit path.
type Workplan struct {
	path string
	kept bool
}

// StoreWorkplan writes the uploaded content into the proposal's files
// directory. The directory is created if the proposal's tree does not have
// it yet.
func StoreWorkplan(filesDir string, content io.Reader) (*Workplan, error) {
	if err := os.MkdirAll(filesDir, 0o755); err != nil {
		return nil, fmt.Errorf("create proposal directory: %w", err)
	}

	path := filepath.Join(filesDir, workplanFileName)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create workplan file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("write workplan file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("close workplan file: %w", err)
	}

	return &Workplan{path: path}, nil
}

func (w *Workplan) Path() string {
	return w.path
}

// Keep confirms the file after the enclosing transaction commits.
func (w *Workplan) Keep() {
	w.kept = true
}

// Cleanup removes the stored file unless it was kept. Safe to defer
// unconditionally.
func (w *Workplan) Cleanup() error {
	if w.kept {
		return nil
	}
	if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
