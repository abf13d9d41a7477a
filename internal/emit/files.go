package emit

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
)

// File is a generated file. A nil Source means the file is to be removed.
type File struct {
	Path   string
	Source []byte
}

// Stale returns files whose content on disk differs from the generated one.
func Stale(files []File) ([]File, error) {
	var res []File
	for _, f := range files {
		data, err := os.ReadFile(f.Path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			if f.Source != nil {
				res = append(res, f)
			}
		case err != nil:
			return nil, errors.Wrapf(err, "read %s", f.Path)
		case f.Source == nil || !bytes.Equal(data, f.Source):
			res = append(res, f)
		}
	}

	return res, nil
}

// Write writes files to disk and removes files without source. Files that
// are already up to date are not touched.
func Write(logger *slog.Logger, files []File) error {
	stale, err := Stale(files)
	if err != nil {
		return err
	}

	for _, f := range stale {
		if f.Source == nil {
			if err := os.Remove(f.Path); err != nil {
				return errors.Wrapf(err, "remove %s", f.Path)
			}
			if logger != nil {
				logger.Info("removed", slog.String("file", f.Path))
			}
			continue
		}

		if err := os.WriteFile(f.Path, f.Source, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", f.Path)
		}
		if logger != nil {
			logger.Info("wrote", slog.String("file", f.Path))
		}
	}

	return nil
}
