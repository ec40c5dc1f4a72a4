// file: internals/features/claims/model/claim_model.go
package model

import "time"

type ClaimStatus string

const (
	StatusPending  ClaimStatus = "pending"
	StatusApproved ClaimStatus = "approved"
	StatusRejected ClaimStatus = "rejected"
)

// Terminal reports whether st is a reviewer decision (approved/rejected).
func (st ClaimStatus) Terminal() bool {
	return st == StatusApproved || st == StatusRejected
}

type ClaimModel struct {
	ClaimID       string      `gorm:"column:claim_id;type:varchar(16);primaryKey" json:"claim_id"`
	EmployeeName  string      `gorm:"column:employee_name;type:varchar(120);not null" json:"employee_name"`
	EmployeeEmail string      `gorm:"column:employee_email;type:varchar(120);not null" json:"employee_email"`
	EmployeeID    string      `gorm:"column:employee_id;type:varchar(10);not null;index" json:"employee_id"`
	Department    string      `gorm:"column:department;type:varchar(80);not null" json:"department"`
	ClaimDate     time.Time   `gorm:"column:claim_date;type:date;not null" json:"claim_date"`
	Amount        float64     `gorm:"column:amount;type:numeric(10,2);not null" json:"amount"`
	Description   string      `gorm:"column:description;type:text;not null" json:"description"`
	Type          string      `gorm:"column:type;type:varchar(40);not null" json:"type"`
	Status        ClaimStatus `gorm:"column:status;type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt     time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Documents []DocumentModel `gorm:"foreignKey:ClaimID;references:ClaimID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"documents,omitempty"`
}

func (ClaimModel) TableName() string {
	return "claims"
}
