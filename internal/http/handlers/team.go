package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SetTeamRequest struct {
	TeamID int64 `json:"team_id"`
}

func (h *Handler) SetTeam(c *gin.Context) {
	tgID, ok := tgIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req SetTeamRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	snap, err := h.Game.SetTeam(c.Request.Context(), tgID, req.TeamID)
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
