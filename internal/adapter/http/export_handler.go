package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"warehouse-backend/internal/usecase/export"

	"github.com/labstack/echo/v4"
)

type ExportHandler struct{ uc *export.Usecase }

func NewExportHandler(uc *export.Usecase) *ExportHandler { return &ExportHandler{uc: uc} }

// ExportLogs renders the journal as CSV. The file is built before the
// status line is committed so a store failure still maps to an error
// response instead of a truncated 200.
func (h *ExportHandler) ExportLogs(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.uc.WriteCSV(c.Request().Context(), &buf); err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=\"logs_%s.csv\"", time.Now().Format("20060102")))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
