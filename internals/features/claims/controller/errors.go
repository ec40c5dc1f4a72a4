// file: internals/features/claims/controller/errors.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	helper "hrclaims_backend/internals/helpers"
	"hrclaims_backend/internals/helpers/errs"
)

// mapError translates the service error taxonomy onto the wire contract.
// Validation reasons and not-found messages pass through; store and
// file-store details stay in the logs.
func mapError(c *fiber.Ctx, err error) error {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		return helper.JsonError(c, fiber.StatusBadRequest, ve.Reason)
	}

	switch {
	case errors.Is(err, errs.ErrClaimNotFound),
		errors.Is(err, errs.ErrDocumentNotFound),
		errors.Is(err, errs.ErrFileNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	}

	log.WithField("path", c.Path()).Errorf("request failed: %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}
