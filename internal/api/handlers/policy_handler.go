package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/service"
)

type PolicyHandler struct {
	service *service.OptimizationService
}

func NewPolicyHandler(service *service.OptimizationService) *PolicyHandler {
	return &PolicyHandler{service: service}
}

func (h *PolicyHandler) Assign(c *gin.Context) {
	var input domain.PolicyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, domain.ErrInvalidInput("body", err.Error()))
		return
	}

	p, err := h.service.AssignPolicy(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PolicyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, domain.ErrInvalidInput("id", "invalid uuid"))
		return
	}

	var update domain.PolicyUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, domain.ErrInvalidInput("body", err.Error()))
		return
	}

	p, err := h.service.UpdatePolicy(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PolicyHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, domain.ErrInvalidInput("id", "invalid uuid"))
		return
	}

	p, err := h.service.GetPolicy(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PolicyHandler) List(c *gin.Context) {
	page, err := h.service.ListPolicies(c.Request.Context(), parseFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

type bulkIDsRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

func (h *PolicyHandler) BulkCalculateSafetyStock(c *gin.Context) {
	h.bulkOverIDs(c, h.service.BulkCalculateSafetyStock)
}

func (h *PolicyHandler) BulkCalculateReorderPoints(c *gin.Context) {
	h.bulkOverIDs(c, h.service.BulkCalculateReorderPoints)
}

func (h *PolicyHandler) BulkClassifyInventory(c *gin.Context) {
	h.bulkOverIDs(c, h.service.BulkClassifyInventory)
}

func (h *PolicyHandler) bulkOverIDs(c *gin.Context, op func(ctx context.Context, ids []uuid.UUID) (domain.BulkResult, error)) {
	var req bulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidInput("body", err.Error()))
		return
	}

	result, err := op(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type bulkAssignRequest struct {
	CombinedClass string                `json:"combined_class"`
	Template      domain.PolicyTemplate `json:"template"`
}

func (h *PolicyHandler) BulkAssign(c *gin.Context) {
	var req bulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidInput("body", err.Error()))
		return
	}

	result, err := h.service.BulkAssignPolicies(c.Request.Context(), strings.ToUpper(strings.TrimSpace(req.CombinedClass)), req.Template)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
