package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/example/caseflow/internal/ports/primary"
)

// AttachmentAdapter translates CLI operations to AttachmentService calls.
type AttachmentAdapter struct {
	service primary.AttachmentService
	out     io.Writer
}

// NewAttachmentAdapter creates a new AttachmentAdapter with the given service.
func NewAttachmentAdapter(service primary.AttachmentService, out io.Writer) *AttachmentAdapter {
	return &AttachmentAdapter{
		service: service,
		out:     out,
	}
}

// Add uploads a local PDF file to a case.
func (a *AttachmentAdapter) Add(ctx context.Context, caseID, actorID int64, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	att, err := a.service.AddAttachment(ctx, primary.AddAttachmentRequest{
		CaseID:               caseID,
		FileName:             info.Name(),
		ContentType:          "application/pdf",
		SizeBytes:            info.Size(),
		UploadedByEmployeeID: actorID,
		Content:              f,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Added attachment %d (%s, %d bytes) to case %d\n", att.ID, att.FileName, att.SizeBytes, caseID)
	return nil
}

// List lists the attachments of a case.
func (a *AttachmentAdapter) List(ctx context.Context, caseID int64) error {
	attachments, err := a.service.GetAttachmentsByCase(ctx, caseID)
	if err != nil {
		return err
	}

	if len(attachments) == 0 {
		fmt.Fprintln(a.out, "No attachments found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFILE\tSIZE\tUPLOADED")
	for _, att := range attachments {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", att.ID, att.FileName, att.SizeBytes, att.UploadedAt)
	}
	return w.Flush()
}

// Download writes the stored bytes of an attachment to a local file. An empty
// target uses the original file name in the working directory.
func (a *AttachmentAdapter) Download(ctx context.Context, attachmentID int64, target string) error {
	result, err := a.service.Download(ctx, attachmentID)
	if err != nil {
		return err
	}
	defer result.Content.Close()

	if target == "" {
		target = result.FileName
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer f.Close()

	n, err := io.Copy(f, result.Content)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	fmt.Fprintf(a.out, "✓ Downloaded %s (%d bytes) to %s\n", result.FileName, n, target)
	return nil
}

// Delete removes an attachment.
func (a *AttachmentAdapter) Delete(ctx context.Context, attachmentID int64) error {
	if err := a.service.DeleteAttachment(ctx, attachmentID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted attachment %d\n", attachmentID)
	return nil
}
