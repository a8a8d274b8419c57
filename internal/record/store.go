// Package record serializes ConnectionRecords to and from JSON files.
package record

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/treykane/genssh/internal/model"
	"github.com/treykane/genssh/internal/security"
	"github.com/treykane/genssh/internal/util"
)

// Store reads and writes descriptors on a filesystem.
type Store struct {
	fs afero.Fs
}

// NewStore returns a Store backed by fs. A nil fs means the OS filesystem.
func NewStore(fs afero.Fs) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs}
}

// Marshal renders rec as JSON indented by four spaces, without a trailing newline.
func Marshal(rec model.ConnectionRecord) ([]byte, error) {
	return json.MarshalIndent(rec, "", util.JSONIndent)
}

// Write replaces the file at path with rec.
func (s *Store) Write(path string, rec model.ConnectionRecord) error {
	b, err := Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := afero.WriteFile(s.fs, path, b, 0o644); err != nil {
		return security.NewClassifiedError(fmt.Sprintf("cannot write %s", path), err)
	}
	slog.Debug("record written", "path", path, "destination", rec.Destination(), "bytes", len(b))
	return nil
}

// Read decodes the descriptor at path.
func (s *Store) Read(path string) (model.ConnectionRecord, error) {
	b, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.ConnectionRecord{}, security.NewClassifiedError(fmt.Sprintf("descriptor not found: %s", path), err)
		}
		return model.ConnectionRecord{}, security.NewClassifiedError(fmt.Sprintf("cannot read %s", path), err)
	}
	var rec model.ConnectionRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return model.ConnectionRecord{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return rec, nil
}
