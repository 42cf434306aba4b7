package attachment

import (
	"testing"

	"github.com/example/caseflow/internal/faults"
)

func validAddContext() AddContext {
	return AddContext{
		FileName:             "antrag.pdf",
		ContentType:          "application/pdf",
		SizeBytes:            1024,
		UploadedByEmployeeID: 1,
	}
}

func TestCanAdd_ValidPDF(t *testing.T) {
	if result := CanAdd(validAddContext()); !result.Allowed {
		t.Fatalf("expected allowed, got %q", result.Reason)
	}
}

func TestCanAdd_ContentTypeCaseInsensitive(t *testing.T) {
	ctx := validAddContext()
	ctx.ContentType = "Application/PDF"

	if result := CanAdd(ctx); !result.Allowed {
		t.Fatalf("expected allowed, got %q", result.Reason)
	}
}

func TestCanAdd_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AddContext)
	}{
		{"blank file name", func(c *AddContext) { c.FileName = "  " }},
		{"non-pdf content type", func(c *AddContext) { c.ContentType = "image/png" }},
		{"zero size", func(c *AddContext) { c.SizeBytes = 0 }},
		{"negative size", func(c *AddContext) { c.SizeBytes = -1 }},
		{"missing uploader", func(c *AddContext) { c.UploadedByEmployeeID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := validAddContext()
			tt.mutate(&ctx)

			result := CanAdd(ctx)

			if result.Allowed {
				t.Fatal("expected rejection")
			}
			if result.Kind != faults.InvalidArgument {
				t.Errorf("expected InvalidArgument, got %v", result.Kind)
			}
		})
	}
}

func TestFinalized(t *testing.T) {
	if Finalized("") {
		t.Error("empty key must not count as finalized")
	}
	if Finalized(PendingStorageKey) {
		t.Error("pending sentinel must not count as finalized")
	}
	if !Finalized("cases/1/abc.pdf") {
		t.Error("bound key must count as finalized")
	}
}
