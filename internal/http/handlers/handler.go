package handlers

import (
	"errors"
	"net/http"

	"tap_legends/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB          *pgxpool.Pool
	BotToken    string
	BotUsername string
	Game        *service.GameService
	Stats       *service.StatsService
}

func NewHandler(db *pgxpool.Pool, botToken, botUsername string) *Handler {
	stats := service.NewStatsService(db)
	return &Handler{
		DB:          db,
		BotToken:    botToken,
		BotUsername: botUsername,
		Game:        service.NewGameService(db, stats),
		Stats:       stats,
	}
}

// tgIDFrom extracts the authenticated Telegram id set by the JWT middleware.
func tgIDFrom(c *gin.Context) (int64, bool) {
	v, ok := c.Get("tg_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// respondGameError maps business-rule errors onto HTTP status codes.
// Anything unrecognized is a store failure and stays a generic 500.
func respondGameError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotEnoughEnergy),
		errors.Is(err, service.ErrInvalidLevel),
		errors.Is(err, service.ErrInsufficientBalance),
		errors.Is(err, service.ErrBoosterMaxLevel),
		errors.Is(err, service.ErrDailyTooSoon),
		errors.Is(err, service.ErrTaskAlreadyClaimed),
		errors.Is(err, service.ErrTasksAlreadySeeded),
		errors.Is(err, service.ErrUnknownBooster):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
