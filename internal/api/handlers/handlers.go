// Package handlers exposes the optimization engine's operation groups over
// HTTP. Each handler binds transport concerns only; all invariants live in
// the service layer.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/opsuite/invopt/backend-go/internal/domain"
)

// respondError maps the engine's error taxonomy to HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch domain.KindOf(err) {
	case domain.KindInvalidInput, domain.KindUnsupportedServiceLevel:
		status = http.StatusBadRequest
	case domain.KindPolicyConstraintViolation:
		status = http.StatusUnprocessableEntity
	case domain.KindNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	}

	body := gin.H{"error": err.Error()}
	var de *domain.Error
	if errors.As(err, &de) {
		body["kind"] = de.Kind
		if de.Field != "" {
			body["field"] = de.Field
		}
	}
	c.JSON(status, body)
}

// parseFilter reads the shared list query parameters.
func parseFilter(c *gin.Context) domain.Filter {
	filter := domain.Filter{Page: 1, PageSize: 50}

	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && page > 0 {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("page_size", "50")); err == nil && size > 0 {
		filter.PageSize = size
	}

	filter.ItemQuery = strings.TrimSpace(c.Query("item_query"))
	filter.LocationQuery = strings.TrimSpace(c.Query("location_query"))
	filter.ABCClass = strings.ToUpper(strings.TrimSpace(c.Query("abc_class")))
	filter.XYZClass = strings.ToUpper(strings.TrimSpace(c.Query("xyz_class")))
	filter.CombinedClass = strings.ToUpper(strings.TrimSpace(c.Query("combined_class")))
	filter.PolicyType = strings.ToUpper(strings.TrimSpace(c.Query("policy_type")))

	if raw := strings.TrimSpace(c.Query("service_level")); raw != "" {
		if level, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.ServiceLevel = &level
		}
	}
	if raw := strings.TrimSpace(c.Query("calculated_from")); raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.CalculatedFrom = &ts
		}
	}
	if raw := strings.TrimSpace(c.Query("calculated_to")); raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.CalculatedTo = &ts
		}
	}

	return filter
}
