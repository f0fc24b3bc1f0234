package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Me(c *gin.Context) {
	tgID, ok := tgIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	snap, err := h.Game.Me(c.Request.Context(), tgID)
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
