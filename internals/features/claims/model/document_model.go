// file: internals/features/claims/model/document_model.go
package model

import "time"

// DocumentModel is metadata for one uploaded attachment; the bytes live in
// the file store under FilePath. Rows are created together with their claim
// and removed only by the claims cascade.
type DocumentModel struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ClaimID    string    `gorm:"column:claim_id;type:varchar(16);not null;index" json:"claim_id"`
	FileName   string    `gorm:"column:file_name;type:text;not null" json:"file_name"`
	FilePath   string    `gorm:"column:file_path;type:text;not null" json:"file_path"`
	UploadedAt time.Time `gorm:"column:uploaded_at;autoCreateTime" json:"uploaded_at"`
}

func (DocumentModel) TableName() string {
	return "documents"
}
