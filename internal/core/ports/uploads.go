package ports

import (
	"context"
	"io"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

// UploadInput describes a file about to be uploaded. Size and content
// type are validated before any network call.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// StoredFile is the path/name pair returned by the backend after upload.
type StoredFile struct {
	FilePath string `json:"filePath"`
	FileName string `json:"fileName"`
}

// UploadsAPI wraps the backend multipart /upload endpoint.
type UploadsAPI interface {
	Upload(ctx context.Context, sess *domain.Session, input UploadInput) (*StoredFile, error)
}

// DocumentService drives the financial documents screen.
type DocumentService interface {
	List(ctx context.Context, sess *domain.Session) ([]domain.DocumentRef, error)
	// Upload validates type and size locally, rejecting bad files before
	// the wire, then stores the file via the backend.
	Upload(ctx context.Context, sess *domain.Session, input UploadInput) (*StoredFile, error)
	// Attach records a stored file on the startup profile. Its failure is
	// isolated from the upload's success.
	Attach(ctx context.Context, sess *domain.Session, stored StoredFile) ([]domain.DocumentRef, error)
	Remove(ctx context.Context, sess *domain.Session, docID string) ([]domain.DocumentRef, error)
}
