package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/service"
)

type ClassificationHandler struct {
	service *service.OptimizationService
}

func NewClassificationHandler(service *service.OptimizationService) *ClassificationHandler {
	return &ClassificationHandler{service: service}
}

func (h *ClassificationHandler) Classify(c *gin.Context) {
	var input domain.ClassificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, domain.ErrInvalidInput("body", err.Error()))
		return
	}

	cls, err := h.service.ClassifyInventory(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cls)
}

func (h *ClassificationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, domain.ErrInvalidInput("id", "invalid uuid"))
		return
	}

	var update domain.ClassificationUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, domain.ErrInvalidInput("body", err.Error()))
		return
	}

	cls, err := h.service.UpdateClassification(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cls)
}

func (h *ClassificationHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, domain.ErrInvalidInput("id", "invalid uuid"))
		return
	}

	cls, err := h.service.GetClassification(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cls)
}

func (h *ClassificationHandler) List(c *gin.Context) {
	page, err := h.service.ListClassifications(c.Request.Context(), parseFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ClassificationHandler) Summary(c *gin.Context) {
	summaries, err := h.service.ClassSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summaries})
}
