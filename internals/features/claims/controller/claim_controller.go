// file: internals/features/claims/controller/claim_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "hrclaims_backend/internals/features/claims/dto"
	"hrclaims_backend/internals/features/claims/service"
	"hrclaims_backend/internals/features/claims/validation"
	helper "hrclaims_backend/internals/helpers"
	"hrclaims_backend/internals/helpers/filestore"
)

type ClaimController struct {
	Service *service.ClaimService
	Files   *filestore.Store
}

func NewClaimController(db *gorm.DB, files *filestore.Store) *ClaimController {
	return &ClaimController{Service: service.NewClaimService(db), Files: files}
}

// ===================== CREATE =====================
// POST /api/claims (multipart/form-data)
func (h *ClaimController) Create(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request must be multipart/form-data")
	}

	var req dto.CreateClaimRequest
	req.EmployeeName = strings.TrimSpace(c.FormValue("employee_name"))
	req.EmployeeEmail = strings.TrimSpace(c.FormValue("employee_email"))
	req.EmployeeID = strings.TrimSpace(c.FormValue("employee_id"))
	req.Department = strings.TrimSpace(c.FormValue("department"))
	req.ClaimDate = strings.TrimSpace(c.FormValue("claim_date"))
	req.Amount = strings.TrimSpace(c.FormValue("amount"))
	req.Description = strings.TrimSpace(c.FormValue("description"))
	req.Type = strings.TrimSpace(c.FormValue("type"))

	files := form.File["documents"]

	// all validation happens before anything is written
	date, amount, err := validation.CreateRequest(&req, files, time.Now())
	if err != nil {
		return mapError(c, err)
	}

	stored, err := h.Files.SaveAll(files)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store uploaded documents")
	}

	claim, err := h.Service.Create(c.UserContext(), req, date, amount, stored)
	if err != nil {
		// the rows rolled back with the transaction; the bytes need manual cleanup
		h.Files.RemoveAll(stored)
		return mapError(c, err)
	}

	return helper.JsonCreated(c, dto.NewSubmitClaimResponse(claim))
}

// ===================== LIST =====================
// GET /api/claims?employee_id=&claim_id=&status=
func (h *ClaimController) List(c *fiber.Ctx) error {
	q := dto.ListClaimsQuery{
		EmployeeID: strings.TrimSpace(c.Query("employee_id")),
		ClaimID:    strings.TrimSpace(c.Query("claim_id")),
		Status:     strings.TrimSpace(c.Query("status")),
	}

	claims, err := h.Service.List(c.UserContext(), q)
	if err != nil {
		return mapError(c, err)
	}
	// the portal consumes a bare array
	return c.JSON(claims)
}

// ===================== UPDATE STATUS =====================
// PATCH /api/claims/:claim_id
func (h *ClaimController) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateClaimStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	claim, err := h.Service.UpdateStatus(c.UserContext(), c.Params("claim_id"), strings.TrimSpace(req.Status))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(claim)
}
