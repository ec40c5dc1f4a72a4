// file: internals/features/claims/controller/document_controller.go
package controller

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrclaims_backend/internals/features/claims/service"
	helper "hrclaims_backend/internals/helpers"
	"hrclaims_backend/internals/helpers/filestore"
)

type DocumentController struct {
	Service *service.DocumentService
}

func NewDocumentController(db *gorm.DB, files *filestore.Store) *DocumentController {
	return &DocumentController{Service: service.NewDocumentService(db, files)}
}

// ===================== LIST FOR CLAIM =====================
// GET /api/claims/:claim_id/documents
func (h *DocumentController) ListForClaim(c *fiber.Ctx) error {
	items, err := h.Service.ListForClaim(c.UserContext(), c.Params("claim_id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(items)
}

// ===================== DOWNLOAD =====================
// GET /api/documents/:id
func (h *DocumentController) Download(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid document id")
	}

	doc, err := h.Service.FetchByID(c.UserContext(), uint(id))
	if err != nil {
		return mapError(c, err)
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.FileName))
	return c.SendFile(doc.FilePath)
}
