// file: internals/features/claims/service/document_service.go
package service

import (
	"context"
	"errors"
	"path/filepath"

	"gorm.io/gorm"

	dto "hrclaims_backend/internals/features/claims/dto"
	model "hrclaims_backend/internals/features/claims/model"
	"hrclaims_backend/internals/helpers/errs"
	"hrclaims_backend/internals/helpers/filestore"
)

type DocumentService struct {
	DB    *gorm.DB
	Files *filestore.Store
}

func NewDocumentService(db *gorm.DB, files *filestore.Store) *DocumentService {
	return &DocumentService{DB: db, Files: files}
}

// ListForClaim returns the claim's document rows annotated with whether the
// bytes are still on disk, plus a download URL for the ones that are. An
// unknown claim id yields an empty list, not an error.
func (s *DocumentService) ListForClaim(ctx context.Context, claimID string) ([]dto.DocumentListItem, error) {
	var docs []model.DocumentModel
	err := s.DB.WithContext(ctx).
		Where("claim_id = ?", claimID).
		Order("id ASC").
		Find(&docs).Error
	if err != nil {
		return nil, errs.Store(err)
	}

	items := make([]dto.DocumentListItem, 0, len(docs))
	for _, d := range docs {
		item := dto.DocumentListItem{
			ID:         d.ID,
			FileName:   d.FileName,
			FilePath:   d.FilePath,
			UploadedAt: d.UploadedAt,
			Exists:     s.Files.Exists(d.FilePath),
		}
		if item.Exists {
			item.URL = documentURL(d.FilePath)
		}
		items = append(items, item)
	}
	return items, nil
}

// FetchByID resolves a document row to its on-disk path for streaming.
// A missing row and a row whose file has vanished are both not-found
// outcomes, kept distinct for logging.
func (s *DocumentService) FetchByID(ctx context.Context, id uint) (*model.DocumentModel, error) {
	var doc model.DocumentModel
	err := s.DB.WithContext(ctx).First(&doc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrDocumentNotFound
	}
	if err != nil {
		return nil, errs.Store(err)
	}
	if !s.Files.Exists(doc.FilePath) {
		return nil, errs.ErrFileNotFound
	}
	return &doc, nil
}

// documentURL maps a stored path onto the static /uploads mount.
func documentURL(path string) string {
	return "/uploads/" + filepath.Base(path)
}
