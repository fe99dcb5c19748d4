package backend

import (
	"context"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// UploadsAPI implements ports.UploadsAPI against the multipart /upload
// endpoint.
type UploadsAPI struct {
	c *Client
}

func NewUploadsAPI(c *Client) *UploadsAPI {
	return &UploadsAPI{c: c}
}

func (u *UploadsAPI) Upload(ctx context.Context, sess *domain.Session, input ports.UploadInput) (*ports.StoredFile, error) {
	var out ports.StoredFile
	if err := u.c.upload(ctx, sess, "/upload", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
