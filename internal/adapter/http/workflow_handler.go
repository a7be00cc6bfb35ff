package http

import (
	"net/http"
	"strconv"

	"warehouse-backend/internal/adapter/middleware"
	"warehouse-backend/internal/domain/journal"
	"warehouse-backend/internal/usecase/workflow"

	"github.com/labstack/echo/v4"
)

type WorkflowHandler struct{ uc *workflow.Usecase }

func NewWorkflowHandler(uc *workflow.Usecase) *WorkflowHandler { return &WorkflowHandler{uc: uc} }

type submitReq struct {
	Action   string `json:"action"   validate:"required,direction"`
	Name     string `json:"name"     validate:"required"`
	Model    string `json:"model"    validate:"required"`
	Spec     string `json:"spec"     validate:"required"`
	Color    string `json:"color"    validate:"required"`
	Unit     string `json:"unit"     validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,min=1"`
	Location string `json:"location"`
	Remark   string `json:"remark"`
}

type adminActionReq struct {
	Action   string `json:"action"   validate:"required,direction"`
	Name     string `json:"name"     validate:"required"`
	Model    string `json:"model"    validate:"required"`
	Spec     string `json:"spec"     validate:"required"`
	Color    string `json:"color"    validate:"required"`
	Unit     string `json:"unit"     validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,min=1"`
	Location string `json:"location" validate:"required"`
	Remark   string `json:"remark"`
}

type approveReq struct {
	Location string `json:"location"`
}

func (h *WorkflowHandler) Submit(c echo.Context) error {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}

	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Submit(c.Request().Context(), p, workflow.SubmitInput{
		Action:   journal.ActionType(req.Action),
		Name:     req.Name,
		Model:    req.Model,
		Spec:     req.Spec,
		Color:    req.Color,
		Unit:     req.Unit,
		Quantity: req.Quantity,
		Location: req.Location,
		Remark:   req.Remark,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *WorkflowHandler) AdminAction(c echo.Context) error {
	p, _ := middleware.CurrentPrincipal(c)

	var req adminActionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.AdminAction(c.Request().Context(), p, workflow.AdminActionInput{
		Action:   journal.ActionType(req.Action),
		Name:     req.Name,
		Model:    req.Model,
		Spec:     req.Spec,
		Color:    req.Color,
		Unit:     req.Unit,
		Quantity: req.Quantity,
		Location: req.Location,
		Remark:   req.Remark,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *WorkflowHandler) Approve(c echo.Context) error {
	p, _ := middleware.CurrentPrincipal(c)

	entryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid entry id"})
	}

	var req approveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	dto, err := h.uc.Approve(c.Request().Context(), p, entryID, req.Location)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WorkflowHandler) Reject(c echo.Context) error {
	p, _ := middleware.CurrentPrincipal(c)

	entryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid entry id"})
	}

	dto, err := h.uc.Reject(c.Request().Context(), p, entryID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WorkflowHandler) ListPending(c echo.Context) error {
	dtos, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *WorkflowHandler) PendingCount(c echo.Context) error {
	n, err := h.uc.PendingCount(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"pending": n})
}

func (h *WorkflowHandler) ListLogs(c echo.Context) error {
	dtos, err := h.uc.ListLogs(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *WorkflowHandler) ListMyLogs(c echo.Context) error {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	dtos, err := h.uc.ListMyLogs(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *WorkflowHandler) PurgeLogs(c echo.Context) error {
	p, _ := middleware.CurrentPrincipal(c)
	if err := h.uc.PurgeLogs(c.Request().Context(), p); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
