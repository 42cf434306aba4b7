package secondary

import (
	"context"
	"io"
)

// AttachmentStorage defines the secondary port for attachment bytes.
// Keys are opaque to the application; the adapter decides their layout.
type AttachmentStorage interface {
	// Save stores the bytes of an attachment and returns the storage key.
	Save(ctx context.Context, caseID, attachmentID int64, r io.Reader) (string, error)

	// Delete removes stored bytes. Deleting a missing key is an error.
	Delete(ctx context.Context, storageKey string) error

	// OpenRead opens the stored bytes for reading. The caller closes the
	// returned reader. Missing keys return an error wrapping fs.ErrNotExist.
	OpenRead(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
