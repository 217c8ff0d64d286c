package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/export"
	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/format"
	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/voucher"
)

// handleReport handles GET /api/laporan: the current sales with their running
// totals, plus display-formatted totals for the summary cards.
func (h *handler) handleReport(c *gin.Context) {
	report, err := h.service.Report(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to build report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report": report,
		"display": gin.H{
			"totalPenjualan": format.Rupiah(report.TotalPenjualan),
			"totalFee":       format.Rupiah(report.TotalFee),
			"totalSetoran":   format.Rupiah(report.TotalSetoran),
		},
	})
}

// handleSettle handles POST /api/laporan/setor: archive the current sales as
// one settlement record and reset the working set. The UI confirms with the
// user before calling this.
func (h *handler) handleSettle(c *gin.Context) {
	record, err := h.service.Settle(c.Request.Context())
	if err != nil {
		if errors.Is(err, voucher.ErrNothingToSettle) {
			// Informational, not a failure: there was simply nothing to settle.
			c.JSON(http.StatusConflict, gin.H{"message": "tidak ada data penjualan untuk disetor"})
			return
		}
		h.logger.Error("failed to settle sales", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to settle sales"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// handleExport handles GET /api/laporan/export: the sales report as an .xlsx
// download.
func (h *handler) handleExport(c *gin.Context) {
	report, err := h.service.Report(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to build report for export", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}

	f, err := export.SalesReport(report)
	if err != nil {
		h.logger.Error("failed to build workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(time.Now())))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		h.logger.Error("failed to write workbook", zap.Error(err))
	}
}

// handleListHistory handles GET /api/history: every past settlement, newest
// first.
func (h *handler) handleListHistory(c *gin.Context) {
	history, err := h.service.ListHistory(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list history"})
		return
	}
	c.JSON(http.StatusOK, history)
}
