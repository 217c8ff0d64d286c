package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/store"
	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/voucher"
)

// handler holds the voucher service and implements the HTTP handlers the UI
// calls.
type handler struct {
	service *voucher.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler.
func NewHandler(service *voucher.Service, logger *zap.Logger) *handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

// handleListPackages returns the pricing table, for the package picker.
func (h *handler) handleListPackages(c *gin.Context) {
	type pkg struct {
		Paket      voucher.Package `json:"paket"`
		Harga      int64           `json:"harga"`
		FeePenjual int64           `json:"feePenjual"`
	}

	packages := make([]pkg, 0, 4)
	for _, p := range voucher.Packages() {
		rate, _ := voucher.RateFor(p)
		packages = append(packages, pkg{Paket: p, Harga: rate.Harga, FeePenjual: rate.FeePenjual})
	}
	c.JSON(http.StatusOK, packages)
}

// handleListSales handles GET /api/sales.
func (h *handler) handleListSales(c *gin.Context) {
	sales, err := h.service.ListSales(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list sales", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

// handleGetSale handles GET /api/sales/:id.
func (h *handler) handleGetSale(c *gin.Context) {
	sale, err := h.service.GetSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
			return
		}
		h.logger.Error("failed to get sale", zap.String("sale_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get sale"})
		return
	}
	c.JSON(http.StatusOK, sale)
}

// handleCreateSale handles POST /api/sales.
func (h *handler) handleCreateSale(c *gin.Context) {
	var req struct {
		Tanggal       string `json:"tanggal" binding:"required,datetime=2006-01-02"`
		NamaPelanggan string `json:"namaPelanggan" binding:"required"`
		Paket         string `json:"paket" binding:"required"`
		KodeVoucher   string `json:"kodeVoucher" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	sale, err := h.service.CreateSale(c.Request.Context(), voucher.NewSale{
		Tanggal:       req.Tanggal,
		NamaPelanggan: req.NamaPelanggan,
		Paket:         voucher.Package(req.Paket),
		KodeVoucher:   req.KodeVoucher,
	})
	if err != nil {
		if errors.Is(err, voucher.ErrUnknownPackage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to create sale", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sale"})
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// handleUpdateSale handles PATCH /api/sales/:id.
func (h *handler) handleUpdateSale(c *gin.Context) {
	var patch voucher.SalePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	sale, err := h.service.UpdateSale(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
		case errors.Is(err, voucher.ErrUnknownPackage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to update sale", zap.String("sale_id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update sale"})
		}
		return
	}

	c.JSON(http.StatusOK, sale)
}

// handleDeleteSale handles DELETE /api/sales/:id.
func (h *handler) handleDeleteSale(c *gin.Context) {
	if err := h.service.DeleteSale(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to delete sale", zap.String("sale_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete sale"})
		return
	}
	c.Status(http.StatusNoContent)
}
