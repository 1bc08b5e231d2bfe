package handlers

import (
	"net/http"

	"seatmarket/internal/analysis"
	"seatmarket/internal/api/models"
	"seatmarket/internal/config"
	"seatmarket/internal/scenario"

	"github.com/gin-gonic/gin"
)

// SimulateHandler runs complete scenario simulations.
type SimulateHandler struct {
	store *scenario.Store
}

func NewSimulateHandler(store *scenario.Store) *SimulateHandler {
	return &SimulateHandler{store: store}
}

// Simulate handles POST /api/v1/simulate
func (h *SimulateHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	sc := req.Scenario
	if sc == nil {
		if req.ScenarioID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: "either scenario or scenario_id is required"},
			})
			return
		}
		loaded, err := h.store.Get(req.ScenarioID)
		if err != nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{Code: "SCENARIO_NOT_FOUND", Message: err.Error()},
			})
			return
		}
		sc = loaded
	}

	cfg, err := config.Load(req.ConfigFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_CONFIG", Message: err.Error()},
		})
		return
	}
	params := cfg.ToSimParams()
	if req.Options.Seed != 0 {
		params.Seed = req.Options.Seed
	}

	res, err := scenario.NewRunner().Run(params, sc)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "RUN_FAILED", Message: err.Error()},
		})
		return
	}

	resp := models.SimulateResponse{
		Status:  "completed",
		Auction: res.Auction,
		Summary: analysis.Summarize(res.Ledger, res.Reports),
		Reports: res.Reports,
	}
	if req.Options.IncludeLedger {
		resp.Ledger = models.LedgerFromRows(res.Ledger)
	}
	if req.Options.IncludeSnapshots {
		resp.Snapshots = res.Snapshots
	}
	c.JSON(http.StatusOK, resp)
}
