// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/example/caseflow/internal/ports/secondary"
)

// AttachmentStorage implements secondary.AttachmentStorage on the local
// filesystem. Keys are relative paths of the form cases/<caseID>/<uuid>.pdf,
// so a key stored in the database never encodes the base directory.
type AttachmentStorage struct {
	basePath string
}

// NewAttachmentStorage creates a filesystem attachment store.
// If basePath is empty, defaults to ~/.caseflow/attachments.
func NewAttachmentStorage(basePath string) (*AttachmentStorage, error) {
	if basePath == "" {
		base := os.Getenv("CASEFLOW_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".caseflow")
		}
		basePath = filepath.Join(base, "attachments")
	}

	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create attachment directory: %w", err)
	}

	return &AttachmentStorage{basePath: basePath}, nil
}

// Save streams content to a new file and returns its storage key. The bytes
// are written to a temp file first and renamed into place, so a crashed write
// never leaves a partial file under a valid key.
func (s *AttachmentStorage) Save(ctx context.Context, caseID, attachmentID int64, content io.Reader) (string, error) {
	key := filepath.ToSlash(filepath.Join("cases", fmt.Sprintf("%d", caseID), uuid.NewString()+".pdf"))
	target := filepath.Join(s.basePath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", fmt.Errorf("failed to create case directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close attachment: %w", err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to finalize attachment: %w", err)
	}

	return key, nil
}

// Delete removes the file under the given key. Deleting a missing file is
// not an error; compensation may run after a failed save.
func (s *AttachmentStorage) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.basePath, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}

// OpenRead opens the stored bytes for reading. Missing files surface
// fs.ErrNotExist to the caller.
func (s *AttachmentStorage) OpenRead(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.basePath, filepath.FromSlash(key)))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Ensure AttachmentStorage implements the interface
var _ secondary.AttachmentStorage = (*AttachmentStorage)(nil)
