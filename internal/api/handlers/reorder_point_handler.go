package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/service"
)

type ReorderPointHandler struct {
	service *service.OptimizationService
}

func NewReorderPointHandler(service *service.OptimizationService) *ReorderPointHandler {
	return &ReorderPointHandler{service: service}
}

func (h *ReorderPointHandler) Calculate(c *gin.Context) {
	var input domain.ReorderPointInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, domain.ErrInvalidInput("body", err.Error()))
		return
	}

	rp, err := h.service.CalculateReorderPoint(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rp)
}

func (h *ReorderPointHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, domain.ErrInvalidInput("id", "invalid uuid"))
		return
	}

	var update domain.ReorderPointUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, domain.ErrInvalidInput("body", err.Error()))
		return
	}

	rp, err := h.service.UpdateReorderPoint(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rp)
}

func (h *ReorderPointHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, domain.ErrInvalidInput("id", "invalid uuid"))
		return
	}

	rp, err := h.service.GetReorderPoint(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rp)
}

func (h *ReorderPointHandler) List(c *gin.Context) {
	page, err := h.service.ListReorderPoints(c.Request.Context(), parseFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
