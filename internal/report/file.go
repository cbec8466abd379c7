package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFile streams a report into filename atomically: write is given a
// temporary file in the same directory, which is renamed over filename only
// once write and the flush to disk succeed. Readers see either the old file
// or the complete new one.
func WriteFile(filename string, perm os.FileMode, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err = write(buf); err != nil {
		return err
	}
	if err = buf.Flush(); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// ExportCSV writes each grid to dir as <name>.csv and returns the paths.
func ExportCSV(dir string, grids []Grid) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	paths := make([]string, 0, len(grids))
	for _, g := range grids {
		path := filepath.Join(dir, g.Name+".csv")
		err := WriteFile(path, 0o644, func(w io.Writer) error {
			return WriteCSV(w, g)
		})
		if err != nil {
			return paths, fmt.Errorf("exporting %s: %w", g.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
