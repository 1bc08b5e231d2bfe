package handlers

import (
	"net/http"

	"seatmarket/internal/api/models"
	"seatmarket/internal/auction"
	"seatmarket/internal/config"
	"seatmarket/internal/model"

	"github.com/gin-gonic/gin"
)

// AuctionHandler clears sealed bid sets without starting a run, so a lobby
// can preview allocations.
type AuctionHandler struct{}

func NewAuctionHandler() *AuctionHandler { return &AuctionHandler{} }

// Clear handles POST /api/v1/auction
func (h *AuctionHandler) Clear(c *gin.Context) {
	var req models.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	cfg, err := config.Load(req.ConfigFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_CONFIG", Message: err.Error()},
		})
		return
	}
	params := cfg.ToSimParams()

	bids := make([]model.AuctionBid, 0, len(req.Bids))
	for _, b := range req.Bids {
		if _, ok := params.Team(b.TeamID); !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{Code: "UNKNOWN_TEAM", Message: "bid references unknown team " + b.TeamID},
			})
			return
		}
		bids = append(bids, model.AuctionBid{
			TeamID:   b.TeamID,
			Price:    b.Price,
			Quantity: b.Quantity,
			Budget:   b.Budget,
		})
	}

	c.JSON(http.StatusOK, models.AuctionResponse{
		Status: "cleared",
		Result: auction.Clear(params, bids),
	})
}
