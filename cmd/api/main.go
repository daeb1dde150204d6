// Headless JSON API over the prepared dataset, for consumers that
// want the numbers without the rendered page.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"heartscope/adapters/tabular"
	"heartscope/internal/analysis"
	"heartscope/internal/config"
	"heartscope/internal/report"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	tbl, err := tabular.NewDataReader(appConfig.Data.FilePath).ReadTable()
	if err != nil {
		log.Fatalf("Failed to read dataset %s: %v", appConfig.Data.FilePath, err)
	}

	prepared, err := analysis.Prepare(tbl, appConfig.Data.FilePath, analysis.Options{
		PreviewRows: appConfig.Report.PreviewRows,
		AgeBins:     appConfig.Report.AgeBins,
		KDEPoints:   appConfig.Report.KDEPoints,
	})
	if err != nil {
		log.Fatalf("Failed to prepare dataset: %v", err)
	}

	gin.SetMode(appConfig.Server.GinMode)
	router := setupRouter(prepared)

	log.Printf("Starting API server on :%s", appConfig.Server.Port)
	if err := router.Run(":" + appConfig.Server.Port); err != nil {
		log.Fatal("Server failed:", err)
	}
}

func setupRouter(prepared *analysis.PreparedData) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	doc := report.NewBuilder().Build(prepared)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
				"run_id": prepared.RunID,
				"rows":   prepared.RowCount,
			})
		})
		v1.GET("/summary", func(c *gin.Context) {
			c.JSON(http.StatusOK, prepared)
		})
		v1.GET("/describe", func(c *gin.Context) {
			c.JSON(http.StatusOK, prepared.Describe)
		})
		v1.GET("/charts/:id", func(c *gin.Context) {
			id := c.Param("id")
			for _, sec := range doc.Sections {
				for _, chart := range sec.Charts {
					if chart.ID == id {
						c.JSON(http.StatusOK, chart)
						return
					}
				}
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown chart: " + id})
		})
	}

	return router
}
