// file: internals/features/claims/route/claims_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	claimCtl "hrclaims_backend/internals/features/claims/controller"
	"hrclaims_backend/internals/helpers/filestore"
)

// ClaimRoutes mounts the claims + documents endpoints on the /api group.
func ClaimRoutes(r fiber.Router, db *gorm.DB, files *filestore.Store) {
	claim := claimCtl.NewClaimController(db, files)
	doc := claimCtl.NewDocumentController(db, files)

	// ================== CLAIMS ==================
	r.Post("/claims", claim.Create)
	r.Get("/claims", claim.List)
	r.Patch("/claims/:claim_id", claim.UpdateStatus)

	// ================== DOCUMENTS ==================
	r.Get("/claims/:claim_id/documents", doc.ListForClaim)
	r.Get("/documents/:id", doc.Download)
}
