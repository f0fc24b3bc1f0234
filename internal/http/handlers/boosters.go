package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BuyBooster purchases the next tier on one of the booster tracks. The
// category path segment names the track ("max-energy", "energy-regen",
// "earn-tap").
func (h *Handler) BuyBooster(c *gin.Context) {
	tgID, ok := tgIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	snap, err := h.Game.BuyBooster(c.Request.Context(), tgID, c.Param("category"))
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
