package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.Game.Tasks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// SeedTasks loads the built-in task catalog. Refuses to run twice.
func (h *Handler) SeedTasks(c *gin.Context) {
	tasks, err := h.Game.SeedTasks(c.Request.Context())
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *Handler) ClaimTask(c *gin.Context) {
	tgID, ok := tgIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	snap, err := h.Game.ClaimEarnTask(c.Request.Context(), tgID, taskID)
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
