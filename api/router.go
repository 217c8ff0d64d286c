package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/voucher"
)

// InitRoutes registers every endpoint the UI calls on the given Gin engine.
// The service is built by the caller and injected here; the api package owns
// no storage.
func InitRoutes(e *gin.Engine, service *voucher.Service, logger *zap.Logger, allowOrigin string) {
	e.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := NewHandler(service, logger)

	api := e.Group("/api")
	{
		api.GET("/packages", h.handleListPackages)

		api.GET("/sales", h.handleListSales)
		api.POST("/sales", h.handleCreateSale)
		api.GET("/sales/:id", h.handleGetSale)
		api.PATCH("/sales/:id", h.handleUpdateSale)
		api.DELETE("/sales/:id", h.handleDeleteSale)

		api.GET("/notes", h.handleListNotes)
		api.POST("/notes", h.handleCreateNote)
		api.GET("/notes/:id", h.handleGetNote)
		api.PATCH("/notes/:id", h.handleUpdateNote)
		api.DELETE("/notes/:id", h.handleDeleteNote)

		api.GET("/laporan", h.handleReport)
		api.POST("/laporan/setor", h.handleSettle)
		api.GET("/laporan/export", h.handleExport)

		api.GET("/history", h.handleListHistory)
	}

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
