package main

import (
	"fmt"
	"log"
	"os"

	"seatmarket/internal/api/handlers"
	"seatmarket/internal/api/middleware"
	"seatmarket/internal/scenario"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	scenarioDir := os.Getenv("SCENARIO_DIR")
	if scenarioDir == "" {
		scenarioDir = "./examples/scenarios"
	}
	if info, err := os.Stat(scenarioDir); err != nil || !info.IsDir() {
		log.Printf("Scenario directory not found at %s; listings will be empty", scenarioDir)
	}
	store := scenario.NewStore(scenarioDir)

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	simulateHandler := handlers.NewSimulateHandler(store)
	auctionHandler := handlers.NewAuctionHandler()
	catalogHandler := handlers.NewCatalogHandler(store)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.Simulate)
		api.POST("/auction", auctionHandler.Clear)

		api.GET("/scenarios", catalogHandler.ListScenarios)
		api.GET("/scenarios/:id", catalogHandler.GetScenario)
		api.GET("/strategies", catalogHandler.ListStrategies)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s (scenarios from %s)", addr, scenarioDir)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
