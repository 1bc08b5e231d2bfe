package handlers

import (
	"net/http"

	"seatmarket/internal/api/models"
	"seatmarket/internal/scenario"
	"seatmarket/internal/strategy"

	"github.com/gin-gonic/gin"
)

// CatalogHandler lists the scenarios and bot strategies available to run.
type CatalogHandler struct {
	store *scenario.Store
}

func NewCatalogHandler(store *scenario.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *CatalogHandler) ListScenarios(c *gin.Context) {
	infos, err := h.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "SCENARIO_DIR_ERROR", Message: err.Error()},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": infos})
}

// GetScenario handles GET /api/v1/scenarios/:id
func (h *CatalogHandler) GetScenario(c *gin.Context) {
	sc, err := h.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "SCENARIO_NOT_FOUND", Message: err.Error()},
		})
		return
	}
	c.JSON(http.StatusOK, sc)
}

// ListStrategies handles GET /api/v1/strategies
func (h *CatalogHandler) ListStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"strategies": strategy.List()})
}
