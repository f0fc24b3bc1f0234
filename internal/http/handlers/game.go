package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type TapRequest struct {
	Count int64 `json:"count"`
}

// Tap applies a batch of taps. The client accumulates taps locally and
// flushes them periodically, so count is usually well above 1.
func (h *Handler) Tap(c *gin.Context) {
	tgID, ok := tgIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req TapRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.Count < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "count must be positive"})
		return
	}

	snap, err := h.Game.Tap(c.Request.Context(), tgID, req.Count)
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) ClaimDaily(c *gin.Context) {
	tgID, ok := tgIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	snap, err := h.Game.ClaimDailyBonus(c.Request.Context(), tgID)
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
