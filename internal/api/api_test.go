// internal/api/api_test.go
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsuite/invopt/backend-go/internal/cache"
	"github.com/opsuite/invopt/backend-go/internal/config"
	"github.com/opsuite/invopt/backend-go/internal/repository/memory"
	"github.com/opsuite/invopt/backend-go/internal/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewOptimizationService(
		memory.NewSafetyStockRepository(),
		memory.NewReorderPointRepository(),
		memory.NewClassificationRepository(),
		memory.NewPolicyRepository(),
		cache.NewNoopClassificationCache(),
		config.EngineConfig{},
	)
	return NewRouter(svc, nil)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestSafetyStockEndpoints(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/optimization/safety_stock/calculate", gin.H{
		"item_id":            "ITM-1",
		"location_id":        "LOC-1",
		"service_level":      0.99,
		"lead_time_days":     4,
		"demand_variability": 15,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID          string `json:"id"`
		SafetyStock int    `json:"safety_stock"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 70, created.SafetyStock)
	require.NotEmpty(t, created.ID)

	w = doJSON(t, router, http.MethodGet, "/api/v1/optimization/safety_stock/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/optimization/safety_stock/"+created.ID, gin.H{
		"lead_time_days": 9,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated struct {
		SafetyStock int `json:"safety_stock"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 105, updated.SafetyStock)

	w = doJSON(t, router, http.MethodGet, "/api/v1/optimization/safety_stock?page_size=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Total)
}

func TestErrorStatusMapping(t *testing.T) {
	router := newTestRouter()

	t.Run("unsupported service level is a 400", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/optimization/safety_stock/calculate", gin.H{
			"item_id":       "ITM-1",
			"location_id":   "LOC-1",
			"service_level": 0.42,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Kind  string `json:"kind"`
			Field string `json:"field"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "UNSUPPORTED_SERVICE_LEVEL", body.Kind)
		assert.Equal(t, "service_level", body.Field)
	})

	t.Run("policy ordering violation is a 422", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/optimization/policies", gin.H{
			"item_id":       "ITM-1",
			"location_id":   "LOC-1",
			"policy_type":   "MIN_MAX",
			"service_level": 0.95,
			"min_quantity":  100,
			"max_quantity":  50,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/optimization/reorder_points/6c1a0a53-8f7a-4a39-9ed8-cdd0a3f63b01", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/optimization/classifications/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestClassificationSummaryEndpoint(t *testing.T) {
	router := newTestRouter()

	for i := 0; i < 3; i++ {
		w := doJSON(t, router, http.MethodPost, "/api/v1/optimization/classifications/classify", gin.H{
			"item_id":                  fmt.Sprintf("ITM-%d", i),
			"location_id":              "LOC-1",
			"annual_consumption_value": "150000",
			"consumption_variability":  0.2,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/optimization/classifications/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Summary []struct {
			CombinedClass string `json:"combined_class"`
			Count         int    `json:"count"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Summary, 1)
	assert.Equal(t, "AX", body.Summary[0].CombinedClass)
	assert.Equal(t, 3, body.Summary[0].Count)
}

func TestBulkAssignEndpoint(t *testing.T) {
	router := newTestRouter()

	classes := []struct {
		itemID string
		value  string
		cv     float64
	}{
		{"ITM-1", "150000", 0.2},
		{"ITM-2", "150000", 0.2},
		{"ITM-3", "2000", 1.8},
	}
	for _, cls := range classes {
		w := doJSON(t, router, http.MethodPost, "/api/v1/optimization/classifications/classify", gin.H{
			"item_id":                  cls.itemID,
			"location_id":              "LOC-1",
			"annual_consumption_value": cls.value,
			"consumption_variability":  cls.cv,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doJSON(t, router, http.MethodPost, "/api/v1/optimization/bulk/policies", gin.H{
		"combined_class": "AX",
		"template": gin.H{
			"policy_type":   "REORDER_POINT",
			"service_level": 0.99,
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		Processed int `json:"processed"`
		Updated   int `json:"updated"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 2, result.Updated)
}
