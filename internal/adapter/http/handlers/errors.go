package handlers

import (
	"errors"
	"funeral_quote/internal/usecase"
	"funeral_quote/pkg"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request payload", http.StatusBadRequest)
	errInvalidItemID  = pkg.NewDomainErrorSimple("INVALID_ITEM_ID", "Item id must be a positive integer", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapError translates use case errors into the HTTP error envelope.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrInvalidPlan),
		errors.Is(err, usecase.ErrInvalidTier),
		errors.Is(err, usecase.ErrInvalidAttendees),
		errors.Is(err, usecase.ErrInvalidDocumentType):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemTypeMismatch):
		return pkg.NewDomainError("ITEM_TYPE_MISMATCH", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotEligible), errors.Is(err, usecase.ErrGradeNotEligible):
		return pkg.NewDomainError("NOT_ELIGIBLE", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Quote session not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoPrintData):
		return pkg.NewDomainErrorSimple("NO_PRINT_DATA", "Nothing to print", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCorruptEstimate):
		return pkg.NewDomainError("CORRUPT_ESTIMATE", "Estimate content cannot be decoded", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCatalogUnavailable),
		errors.Is(err, usecase.ErrEmptyCatalog),
		errors.Is(err, usecase.ErrSessionUnavailable),
		errors.Is(err, usecase.ErrPrintChannelUnavailable):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", err.Error(), err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
