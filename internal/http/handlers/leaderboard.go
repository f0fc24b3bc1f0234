package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Leaderboard returns the top players at one level, richest first.
func (h *Handler) Leaderboard(c *gin.Context) {
	level := 1
	if v := c.Query("level"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid level"})
			return
		}
		level = n
	}

	entries, err := h.Game.Leaderboard(c.Request.Context(), level)
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"level": level, "entries": entries})
}

// GlobalStats exposes the lifetime counters (users, taps, balance paid out).
func (h *Handler) GlobalStats(c *gin.Context) {
	stats, err := h.Stats.Global(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_users":   stats.TotalUsers,
		"total_taps":    stats.TotalTaps,
		"total_balance": stats.TotalBalance.String(),
	})
}
