package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReferralCode returns the caller's invite code and the ready-made bot link.
func (h *Handler) ReferralCode(c *gin.Context) {
	tgID, ok := tgIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	code, err := h.Game.ReferralCode(c.Request.Context(), tgID)
	if err != nil {
		respondGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": code,
		"link": "https://t.me/" + h.BotUsername + "?start=" + code,
	})
}

// Invited lists everyone the caller brought in, with the reward each invite
// paid out at the time it happened.
func (h *Handler) Invited(c *gin.Context) {
	tgID, ok := tgIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	invited, err := h.Game.Invited(c.Request.Context(), tgID)
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invited": invited, "count": len(invited)})
}
