package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/service"
)

type SafetyStockHandler struct {
	service *service.OptimizationService
}

func NewSafetyStockHandler(service *service.OptimizationService) *SafetyStockHandler {
	return &SafetyStockHandler{service: service}
}

func (h *SafetyStockHandler) Calculate(c *gin.Context) {
	var input domain.SafetyStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, domain.ErrInvalidInput("body", err.Error()))
		return
	}

	calc, err := h.service.CalculateSafetyStock(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, calc)
}

func (h *SafetyStockHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, domain.ErrInvalidInput("id", "invalid uuid"))
		return
	}

	var update domain.SafetyStockUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, domain.ErrInvalidInput("body", err.Error()))
		return
	}

	calc, err := h.service.UpdateSafetyStock(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, calc)
}

func (h *SafetyStockHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, domain.ErrInvalidInput("id", "invalid uuid"))
		return
	}

	calc, err := h.service.GetSafetyStock(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, calc)
}

func (h *SafetyStockHandler) List(c *gin.Context) {
	page, err := h.service.ListSafetyStocks(c.Request.Context(), parseFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
