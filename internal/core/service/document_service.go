package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/api/metrics"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// maxUploadBytes is the client-side size ceiling; larger files never
// reach the wire.
const maxUploadBytes = 5 << 20

var allowedMIME = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"image/jpeg": {},
	"image/png":  {},
}

// DocumentService implements ports.DocumentService for the financial
// documents screen.
type DocumentService struct {
	uploads  ports.UploadsAPI
	startups ports.StartupsAPI
	log      zerolog.Logger
}

func NewDocumentService(uploads ports.UploadsAPI, startups ports.StartupsAPI, log zerolog.Logger) *DocumentService {
	return &DocumentService{uploads: uploads, startups: startups, log: log}
}

func (s *DocumentService) List(ctx context.Context, sess *domain.Session) ([]domain.DocumentRef, error) {
	if sess.User.RoleProfileID == "" {
		return nil, domain.ErrProfileMissing
	}
	profile, err := s.startups.Get(ctx, sess, sess.User.RoleProfileID)
	if err != nil {
		return nil, err
	}
	if profile.FinancialDocuments == nil {
		return []domain.DocumentRef{}, nil
	}
	return profile.FinancialDocuments, nil
}

// Upload validates the file locally and only then forwards it to the
// backend. The declared content type is checked against the allow-list;
// when the declaration is missing or generic, the content is sniffed.
func (s *DocumentService) Upload(ctx context.Context, sess *domain.Session, input ports.UploadInput) (*ports.StoredFile, error) {
	if input.Size > maxUploadBytes {
		metrics.UploadsRejectedTotal.WithLabelValues("size").Inc()
		return nil, domain.ErrFileTooLarge
	}

	content, err := io.ReadAll(io.LimitReader(input.Content, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(content) > maxUploadBytes {
		metrics.UploadsRejectedTotal.WithLabelValues("size").Inc()
		return nil, domain.ErrFileTooLarge
	}

	declared := input.ContentType
	if _, ok := allowedMIME[declared]; !ok {
		sniffed := mimetype.Detect(content).String()
		if _, ok := allowedMIME[sniffed]; !ok {
			metrics.UploadsRejectedTotal.WithLabelValues("type").Inc()
			return nil, domain.ErrFileType
		}
		declared = sniffed
	}

	input.Content = bytes.NewReader(content)
	input.Size = int64(len(content))
	input.ContentType = declared

	stored, err := s.uploads.Upload(ctx, sess, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("file", stored.FileName).Msg("document uploaded")
	return stored, nil
}

func (s *DocumentService) Attach(ctx context.Context, sess *domain.Session, stored ports.StoredFile) ([]domain.DocumentRef, error) {
	if sess.User.RoleProfileID == "" {
		return nil, domain.ErrProfileMissing
	}
	return s.startups.AttachDocument(ctx, sess, sess.User.RoleProfileID, ports.AttachDocumentInput{
		Name: stored.FileName,
		Type: "other",
		URL:  stored.FilePath,
	})
}

func (s *DocumentService) Remove(ctx context.Context, sess *domain.Session, docID string) ([]domain.DocumentRef, error) {
	if sess.User.RoleProfileID == "" {
		return nil, domain.ErrProfileMissing
	}
	return s.startups.RemoveDocument(ctx, sess, sess.User.RoleProfileID, docID)
}
