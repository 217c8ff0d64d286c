package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/store"
	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/voucher"
)

// handleListNotes handles GET /api/notes.
func (h *handler) handleListNotes(c *gin.Context) {
	notes, err := h.service.ListNotes(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list notes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notes"})
		return
	}
	c.JSON(http.StatusOK, notes)
}

// handleGetNote handles GET /api/notes/:id.
func (h *handler) handleGetNote(c *gin.Context) {
	note, err := h.service.GetNote(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
			return
		}
		h.logger.Error("failed to get note", zap.String("note_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get note"})
		return
	}
	c.JSON(http.StatusOK, note)
}

// handleCreateNote handles POST /api/notes.
func (h *handler) handleCreateNote(c *gin.Context) {
	var req struct {
		Judul string `json:"judul" binding:"required"`
		Isi   string `json:"isi" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	note, err := h.service.CreateNote(c.Request.Context(), req.Judul, req.Isi)
	if err != nil {
		h.logger.Error("failed to create note", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, note)
}

// handleUpdateNote handles PATCH /api/notes/:id.
func (h *handler) handleUpdateNote(c *gin.Context) {
	var patch voucher.NotePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	note, err := h.service.UpdateNote(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
			return
		}
		h.logger.Error("failed to update note", zap.String("note_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update note"})
		return
	}

	c.JSON(http.StatusOK, note)
}

// handleDeleteNote handles DELETE /api/notes/:id.
func (h *handler) handleDeleteNote(c *gin.Context) {
	if err := h.service.DeleteNote(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to delete note", zap.String("note_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete note"})
		return
	}
	c.Status(http.StatusNoContent)
}
