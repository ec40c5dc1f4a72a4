package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	claimRoutes "hrclaims_backend/internals/features/claims/route"
	"hrclaims_backend/internals/helpers/filestore"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, files *filestore.Store) {
	api := app.Group("/api")
	claimRoutes.ClaimRoutes(api, db, files)
}
