package stores

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks

// ReportStore persists rendered reports on the local filesystem.
type ReportStore interface {
	// Save writes the report body to path, creating parent directories as
	// needed and replacing any previous file. The replace is atomic: a
	// reader (say, a web server pointed at the report) sees either the old
	// report or the new one, never a torn mix.
	Save(ctx context.Context, path string, body io.Reader) error
}

type reportStore struct{}

func NewReportStore() ReportStore {
	return &reportStore{}
}

func (s *reportStore) Save(ctx context.Context, path string, body io.Reader) error {
	if err := validatePath(path); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errSaveReportFailed(path, err)
	}

	// Write to a temp file in the destination directory so the final rename
	// stays on one filesystem.
	tmp, err := os.CreateTemp(dir, ".tmp-report-*")
	if err != nil {
		return errSaveReportFailed(path, err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = tmp.Close(); _ = os.Remove(tmpPath) }()

	if _, err := io.Copy(tmp, body); err != nil {
		if ctx.Err() != nil {
			return errSaveReportFailed(path, ctx.Err())
		}
		return errSaveReportFailed(path, err)
	}
	if err := tmp.Sync(); err != nil {
		return errSaveReportFailed(path, err)
	}
	if err := tmp.Close(); err != nil {
		return errSaveReportFailed(path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return errSaveReportFailed(path, err)
	}
	return nil
}

// validatePath rejects destinations that cannot name a file. Everything else
// is left for the filesystem to judge.
func validatePath(path string) error {
	if path == "" {
		return errInvalidReportPath(path)
	}
	if strings.HasSuffix(path, string(os.PathSeparator)) {
		return errInvalidReportPath(path)
	}
	if cleaned := filepath.Clean(path); cleaned == "." || cleaned == ".." {
		return errInvalidReportPath(path)
	}
	return nil
}
