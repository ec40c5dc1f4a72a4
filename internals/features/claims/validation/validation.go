// file: internals/features/claims/validation/validation.go
//
// Pure checks applied to a claim submission before anything is persisted.
// Every failure returns a *errs.ValidationError whose reason goes to the
// client verbatim.
package validation

import (
	"errors"
	"mime/multipart"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"hrclaims_backend/internals/constants"
	dto "hrclaims_backend/internals/features/claims/dto"
	"hrclaims_backend/internals/helpers/errs"
)

var (
	employeeIDRx = regexp.MustCompile(`^ATS0[1-9]\d{2}$`)
	emailRx      = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@(gmail|outlook)\.com$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report field names as they appear on the wire
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreateRequest runs the full pre-persistence validation for a submission and
// returns the parsed claim date and amount on success.
func CreateRequest(req *dto.CreateClaimRequest, files []*multipart.FileHeader, now time.Time) (time.Time, float64, error) {
	req.Normalize()

	if err := validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return time.Time{}, 0, reasonFor(ve[0])
		}
		return time.Time{}, 0, errs.NewValidation("Invalid request body")
	}

	if err := EmployeeID(req.EmployeeID); err != nil {
		return time.Time{}, 0, err
	}
	if err := Email(req.EmployeeEmail); err != nil {
		return time.Time{}, 0, err
	}
	amount, err := Amount(req.Amount)
	if err != nil {
		return time.Time{}, 0, err
	}
	date, err := ClaimDate(req.ClaimDate, now)
	if err != nil {
		return time.Time{}, 0, err
	}
	if err := Attachments(files); err != nil {
		return time.Time{}, 0, err
	}
	return date, amount, nil
}

func reasonFor(fe validator.FieldError) *errs.ValidationError {
	switch fe.Tag() {
	case "required":
		return errs.NewValidation("%s is required", fe.Field())
	case "oneof":
		return errs.NewValidation("%s must be one of: %s", fe.Field(), strings.Join(constants.ClaimTypes, ", "))
	case "max":
		return errs.NewValidation("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return errs.NewValidation("%s is invalid", fe.Field())
	}
}

// EmployeeID enforces the ATS0 badge format (ATS0 + 3 digits, first 1-9).
func EmployeeID(id string) error {
	if !employeeIDRx.MatchString(id) {
		return errs.NewValidation("Employee ID must be ATS0 followed by 3 digits (e.g. ATS0123)")
	}
	return nil
}

func Email(email string) error {
	if !emailRx.MatchString(email) {
		return errs.NewValidation("Email must be a valid gmail.com or outlook.com address")
	}
	return nil
}

// Amount parses the submitted amount and enforces (0, 50000].
func Amount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errs.NewValidation("Amount must be a number")
	}
	if amount <= 0 || amount > constants.MaxClaimAmount {
		return 0, errs.NewValidation("Amount must be greater than 0 and at most %d", constants.MaxClaimAmount)
	}
	return amount, nil
}

// ClaimDate parses YYYY-MM-DD and enforces the submission window: not in the
// future, not more than 3 months old. Both bounds compare at day granularity
// so a claim dated exactly 3 months ago is still accepted.
func ClaimDate(raw string, now time.Time) (time.Time, error) {
	date, err := time.Parse(constants.ClaimDateLayout, raw)
	if err != nil {
		return time.Time{}, errs.NewValidation("Claim date must be in YYYY-MM-DD format")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.After(today) {
		return time.Time{}, errs.NewValidation("Claim date cannot be in the future")
	}
	oldest := today.AddDate(0, -constants.ClaimDateMaxMonths, 0)
	if date.Before(oldest) {
		return time.Time{}, errs.NewValidation("Claim date cannot be more than %d months old", constants.ClaimDateMaxMonths)
	}
	return date, nil
}

// Attachments requires at least one document and checks each against the
// size cap and type allow-list. The content type is sniffed from the bytes,
// not taken from the client header. Reject-the-whole-request: one bad file
// fails the submission.
func Attachments(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return errs.NewValidation("At least one supporting document is required")
	}
	for _, fh := range files {
		if fh.Size > constants.MaxUploadSize {
			return errs.NewValidation("File %s exceeds the 5 MB limit", fh.Filename)
		}
		f, err := fh.Open()
		if err != nil {
			return errs.FileStore(err)
		}
		mt, err := mimetype.DetectReader(f)
		f.Close()
		if err != nil {
			return errs.FileStore(err)
		}
		if !allowedMime(mt) {
			return errs.NewValidation("File %s must be a PDF, JPEG, or PNG", fh.Filename)
		}
	}
	return nil
}

func allowedMime(mt *mimetype.MIME) bool {
	for _, allowed := range constants.AllowedMimeTypes {
		if mt.Is(allowed) {
			return true
		}
	}
	return false
}
