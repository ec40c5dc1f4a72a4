package validation

import (
	"bytes"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "hrclaims_backend/internals/features/claims/dto"
	"hrclaims_backend/internals/helpers/errs"
)

var (
	pdfBytes  = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
	jpegBytes = append([]byte("\xff\xd8\xff\xe0\x00\x10JFIF"), bytes.Repeat([]byte{0}, 64)...)
)

type upload struct {
	name    string
	content []byte
}

// fileHeaders round-trips uploads through a real multipart body so the
// resulting *multipart.FileHeader values behave like Fiber's.
func fileHeaders(t *testing.T, uploads ...upload) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, u := range uploads {
		fw, err := w.CreateFormFile("documents", u.name)
		require.NoError(t, err)
		_, err = fw.Write(u.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["documents"]
}

func validationReason(t *testing.T, err error) string {
	t.Helper()
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	return ve.Reason
}

func TestEmployeeID(t *testing.T) {
	for _, id := range []string{"ATS0123", "ATS0100", "ATS0999"} {
		assert.NoError(t, EmployeeID(id), id)
	}
	for _, id := range []string{"", "ATS0023", "ATS01234", "ATS012", "ats0123", "ATS1123", "XTS0123", " ATS0123"} {
		assert.Error(t, EmployeeID(id), id)
	}
}

func TestEmail(t *testing.T) {
	for _, email := range []string{"a@gmail.com", "first.last@outlook.com", "a+b@gmail.com"} {
		assert.NoError(t, Email(email), email)
	}
	for _, email := range []string{"", "a@yahoo.com", "a@gmail.org", "@gmail.com", "a@outlook.com.evil.com"} {
		assert.Error(t, Email(email), email)
	}
}

func TestAmountBounds(t *testing.T) {
	amount, err := Amount("1500.50")
	require.NoError(t, err)
	assert.Equal(t, 1500.50, amount)

	amount, err = Amount("50000")
	require.NoError(t, err)
	assert.Equal(t, float64(50000), amount)

	for _, raw := range []string{"50000.01", "0", "-5", "abc", ""} {
		_, err := Amount(raw)
		assert.Error(t, err, raw)
	}
}

func TestClaimDateWindow(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		raw string
		ok  bool
	}{
		{"2026-08-30", true},  // today
		{"2026-08-31", false}, // tomorrow
		{"2026-05-31", true},  // 3 months minus a day ago
		{"2026-05-30", true},  // exactly 3 months ago
		{"2026-05-29", false}, // over the window
		{"30-08-2026", false}, // wrong layout
		{"", false},
	}
	for _, tc := range cases {
		_, err := ClaimDate(tc.raw, now)
		if tc.ok {
			assert.NoError(t, err, tc.raw)
		} else {
			assert.Error(t, err, tc.raw)
		}
	}
}

func TestAttachmentsRequired(t *testing.T) {
	err := Attachments(nil)
	assert.Contains(t, validationReason(t, err), "At least one supporting document")
}

func TestAttachmentsTypes(t *testing.T) {
	ok := fileHeaders(t,
		upload{"receipt.pdf", pdfBytes},
		upload{"photo.png", pngBytes},
		upload{"scan.jpg", jpegBytes},
	)
	assert.NoError(t, Attachments(ok))

	bad := fileHeaders(t, upload{"notes.txt", []byte("just some text")})
	assert.Contains(t, validationReason(t, Attachments(bad)), "must be a PDF, JPEG, or PNG")
}

func TestAttachmentsSizeCap(t *testing.T) {
	big := append(append([]byte{}, pdfBytes...), bytes.Repeat([]byte{'a'}, 5<<20)...)
	fhs := fileHeaders(t, upload{"huge.pdf", big})
	assert.Contains(t, validationReason(t, Attachments(fhs)), "5 MB limit")
}

func validCreateRequest() dto.CreateClaimRequest {
	return dto.CreateClaimRequest{
		EmployeeName:  "Asha Rao",
		EmployeeEmail: "asha@gmail.com",
		EmployeeID:    "ATS0123",
		Department:    "Engineering",
		ClaimDate:     "2026-08-30",
		Amount:        "1500.50",
		Description:   "Client visit travel",
		Type:          "Travel",
	}
}

func TestCreateRequestHappyPath(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	req := validCreateRequest()
	files := fileHeaders(t, upload{"receipt.pdf", pdfBytes})

	date, amount, err := CreateRequest(&req, files, now)
	require.NoError(t, err)
	assert.Equal(t, 1500.50, amount)
	assert.Equal(t, "2026-08-30", date.Format("2006-01-02"))
}

func TestCreateRequestMissingField(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	req := validCreateRequest()
	req.Department = "   " // whitespace only → normalized away
	files := fileHeaders(t, upload{"receipt.pdf", pdfBytes})

	_, _, err := CreateRequest(&req, files, now)
	assert.Contains(t, validationReason(t, err), "department is required")
}

func TestCreateRequestBadType(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	req := validCreateRequest()
	req.Type = "Snacks"
	files := fileHeaders(t, upload{"receipt.pdf", pdfBytes})

	_, _, err := CreateRequest(&req, files, now)
	assert.Contains(t, validationReason(t, err), "type must be one of")
}

func TestCreateRequestNoDocuments(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	req := validCreateRequest()

	_, _, err := CreateRequest(&req, nil, now)
	var ve *errs.ValidationError
	assert.True(t, errors.As(err, &ve))
}
