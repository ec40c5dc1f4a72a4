// file: internals/features/claims/service/claim_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	dto "hrclaims_backend/internals/features/claims/dto"
	model "hrclaims_backend/internals/features/claims/model"
	"hrclaims_backend/internals/features/claims/validation"
	"hrclaims_backend/internals/helpers/errs"
	"hrclaims_backend/internals/helpers/filestore"
)

type ClaimService struct {
	DB *gorm.DB
}

func NewClaimService(db *gorm.DB) *ClaimService { return &ClaimService{DB: db} }

// GenerateClaimID builds a CLM-<year>-<4 digits> identifier. The random
// suffix can collide; Create retries on a duplicate-key insert.
func GenerateClaimID(now time.Time) string {
	return fmt.Sprintf("CLM-%d-%04d", now.Year(), rand.Intn(10000))
}

const createAttempts = 5

// Create inserts the claim row plus one document row per stored attachment
// inside a single transaction, so a mid-loop failure never leaves a claim
// with fewer documents than were uploaded. The attachment bytes themselves
// were already written by the caller; cleaning those up on failure is the
// caller's job.
func (s *ClaimService) Create(ctx context.Context, req dto.CreateClaimRequest, date time.Time, amount float64, stored []filestore.StoredFile) (*model.ClaimModel, error) {
	for attempt := 0; attempt < createAttempts; attempt++ {
		claim := req.ToModel(GenerateClaimID(time.Now()), date, amount)

		err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(claim).Error; err != nil {
				return err
			}
			for _, f := range stored {
				doc := model.DocumentModel{
					ClaimID:  claim.ClaimID,
					FileName: f.OriginalName,
					FilePath: f.Path,
				}
				if err := tx.Create(&doc).Error; err != nil {
					return err
				}
				claim.Documents = append(claim.Documents, doc)
			}
			return nil
		})
		if err == nil {
			return claim, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.WithField("claim_id", claim.ClaimID).Warn("claim id collision, regenerating")
			continue
		}
		return nil, errs.Store(err)
	}
	return nil, errs.Store(fmt.Errorf("could not allocate a unique claim id after %d attempts", createAttempts))
}

// List returns claims matching the optional filters (ANDed), newest first,
// each with its documents embedded. No pagination: the portal renders the
// full set.
func (s *ClaimService) List(ctx context.Context, q dto.ListClaimsQuery) ([]model.ClaimModel, error) {
	if q.EmployeeID != "" {
		if err := validation.EmployeeID(q.EmployeeID); err != nil {
			return nil, err
		}
	}

	db := s.DB.WithContext(ctx).Model(&model.ClaimModel{}).Preload("Documents")
	if q.EmployeeID != "" {
		db = db.Where("employee_id = ?", q.EmployeeID)
	}
	if q.ClaimID != "" {
		db = db.Where("claim_id = ?", q.ClaimID)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}

	claims := make([]model.ClaimModel, 0)
	if err := db.Order("created_at DESC").Find(&claims).Error; err != nil {
		return nil, errs.Store(err)
	}
	return claims, nil
}

// UpdateStatus moves a claim to approved or rejected and refreshes
// updated_at. Re-reviewing an already decided claim is deliberately allowed
// (last write wins), matching the portal's observed behavior.
func (s *ClaimService) UpdateStatus(ctx context.Context, claimID, status string) (*model.ClaimModel, error) {
	st := model.ClaimStatus(status)
	if !st.Terminal() {
		return nil, errs.NewValidation("Status must be approved or rejected")
	}

	var claim model.ClaimModel
	err := s.DB.WithContext(ctx).Where("claim_id = ?", claimID).First(&claim).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrClaimNotFound
	}
	if err != nil {
		return nil, errs.Store(err)
	}

	if err := s.DB.WithContext(ctx).Model(&claim).Update("status", st).Error; err != nil {
		return nil, errs.Store(err)
	}
	claim.Status = st
	return &claim, nil
}
