package http

import (
	"errors"
	"net/http"

	"warehouse-backend/internal/domain/inventory"
	"warehouse-backend/internal/domain/journal"
	"warehouse-backend/internal/usecase/workflow"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// writeError maps domain errors onto HTTP statuses at the operation
// boundary; every failure carries the rule that broke.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, workflow.ErrValidation):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, inventory.ErrInsufficientStock):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, journal.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, journal.ErrNotFound), errors.Is(err, inventory.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
