// file: internals/features/claims/dto/claim_dto.go
package dto

import (
	"strings"
	"time"

	model "hrclaims_backend/internals/features/claims/model"
)

/* ===================== REQUESTS ===================== */

// Create: claim_id, status and timestamps are generated server-side (NOT from
// the body). Amount and claim_date arrive as strings from the multipart form
// and are parsed by the validation layer.
type CreateClaimRequest struct {
	EmployeeName  string `json:"employee_name" form:"employee_name" validate:"required,max=120"`
	EmployeeEmail string `json:"employee_email" form:"employee_email" validate:"required,max=120"`
	EmployeeID    string `json:"employee_id" form:"employee_id" validate:"required"`
	Department    string `json:"department" form:"department" validate:"required,max=80"`
	ClaimDate     string `json:"claim_date" form:"claim_date" validate:"required"`
	Amount        string `json:"amount" form:"amount" validate:"required"`
	Description   string `json:"description" form:"description" validate:"required"`
	Type          string `json:"type" form:"type" validate:"required,oneof=Medical Travel Education Meal Equipment Other"`
}

func (r *CreateClaimRequest) Normalize() {
	r.EmployeeName = strings.TrimSpace(r.EmployeeName)
	r.EmployeeEmail = strings.TrimSpace(r.EmployeeEmail)
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Department = strings.TrimSpace(r.Department)
	r.ClaimDate = strings.TrimSpace(r.ClaimDate)
	r.Amount = strings.TrimSpace(r.Amount)
	r.Description = strings.TrimSpace(r.Description)
	r.Type = strings.TrimSpace(r.Type)
}

// ToModel: builder for create — claimID, date and amount come pre-validated.
func (r CreateClaimRequest) ToModel(claimID string, date time.Time, amount float64) *model.ClaimModel {
	return &model.ClaimModel{
		ClaimID:       claimID,
		EmployeeName:  r.EmployeeName,
		EmployeeEmail: r.EmployeeEmail,
		EmployeeID:    r.EmployeeID,
		Department:    r.Department,
		ClaimDate:     date,
		Amount:        amount,
		Description:   r.Description,
		Type:          r.Type,
		Status:        model.StatusPending,
	}
}

type UpdateClaimStatusRequest struct {
	Status string `json:"status"`
}

/* ===================== QUERIES (list) ===================== */

type ListClaimsQuery struct {
	EmployeeID string `query:"employee_id"`
	ClaimID    string `query:"claim_id"`
	Status     string `query:"status"`
}

/* ===================== RESPONSES ===================== */

// DocumentDescriptor is the shape embedded in the submit response.
type DocumentDescriptor struct {
	ID       uint   `json:"id"`
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
}

type SubmitClaimResponse struct {
	Message   string               `json:"message"`
	ClaimID   string               `json:"claim_id"`
	Documents []DocumentDescriptor `json:"documents"`
}

func NewSubmitClaimResponse(claim *model.ClaimModel) SubmitClaimResponse {
	docs := make([]DocumentDescriptor, 0, len(claim.Documents))
	for _, d := range claim.Documents {
		docs = append(docs, DocumentDescriptor{ID: d.ID, FileName: d.FileName, FilePath: d.FilePath})
	}
	return SubmitClaimResponse{
		Message:   "Claim submitted successfully",
		ClaimID:   claim.ClaimID,
		Documents: docs,
	}
}

// DocumentListItem annotates a document row with its on-disk state. URL is
// only set when the bytes are still present.
type DocumentListItem struct {
	ID         uint      `json:"id"`
	FileName   string    `json:"file_name"`
	FilePath   string    `json:"file_path"`
	UploadedAt time.Time `json:"uploaded_at"`
	Exists     bool      `json:"exists"`
	URL        string    `json:"url,omitempty"`
}
