package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "hrclaims_backend/internals/features/claims/dto"
	"hrclaims_backend/internals/helpers/errs"
)

func TestGenerateClaimIDFormat(t *testing.T) {
	now := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	rx := regexp.MustCompile(`^CLM-2026-\d{4}$`)
	for i := 0; i < 100; i++ {
		id := GenerateClaimID(now)
		assert.Regexp(t, rx, id)
	}
}

func TestUpdateStatusRejectsBadStatus(t *testing.T) {
	s := &ClaimService{} // status check happens before any store access
	for _, status := range []string{"", "pending", "done", "APPROVED", "cancelled"} {
		_, err := s.UpdateStatus(context.Background(), "CLM-2026-0001", status)
		var ve *errs.ValidationError
		require.ErrorAs(t, err, &ve, status)
	}
}

func TestListRejectsBadEmployeeIDFilter(t *testing.T) {
	s := &ClaimService{} // filter validation happens before any store access
	_, err := s.List(context.Background(), dto.ListClaimsQuery{EmployeeID: "ATS0012"})
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestDocumentURL(t *testing.T) {
	assert.Equal(t, "/uploads/1693-ab12cd34.pdf", documentURL("uploads/1693-ab12cd34.pdf"))
	assert.Equal(t, "/uploads/x.png", documentURL("/var/data/uploads/x.png"))
}
