package http

import (
	"net/http"

	"warehouse-backend/internal/adapter/middleware"
	"warehouse-backend/internal/usecase/bulkedit"
	"warehouse-backend/internal/usecase/workflow"

	"github.com/labstack/echo/v4"
)

type InventoryHandler struct {
	workflowUC *workflow.Usecase
	bulkUC     *bulkedit.Usecase
}

func NewInventoryHandler(wf *workflow.Usecase, bulk *bulkedit.Usecase) *InventoryHandler {
	return &InventoryHandler{workflowUC: wf, bulkUC: bulk}
}

func (h *InventoryHandler) List(c echo.Context) error {
	items, err := h.workflowUC.ListInventory(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

type bulkEditReq struct {
	Rows []bulkedit.Row `json:"rows"`
}

// BulkEdit accepts the full replacement table the admin saved.
func (h *InventoryHandler) BulkEdit(c echo.Context) error {
	p, _ := middleware.CurrentPrincipal(c)

	var req bulkEditReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Rows == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "rows is required"})
	}

	res, err := h.bulkUC.Apply(c.Request().Context(), p.Name, req.Rows)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
