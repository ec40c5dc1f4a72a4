package constants

// Claim types the portal accepts. Anything else is rejected at validation
// time; the dashboard buckets unknown legacy values under "Other".
var ClaimTypes = []string{"Medical", "Travel", "Education", "Meal", "Equipment", "Other"}

// Upload rules for supporting documents.
const MaxUploadSize = 5 << 20 // 5 MiB per file

var AllowedMimeTypes = []string{
	"application/pdf",
	"image/jpeg",
	"image/png",
}

// Claim amounts must fall in (0, MaxClaimAmount].
const MaxClaimAmount = 50000

// Claim dates come in as YYYY-MM-DD and may be at most this many months old.
const (
	ClaimDateLayout    = "2006-01-02"
	ClaimDateMaxMonths = 3
)
