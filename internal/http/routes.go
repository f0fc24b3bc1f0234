package http

import (
	"tap_legends/internal/config"
	"tap_legends/internal/http/handlers"
	"tap_legends/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	h := handlers.NewHandler(db, cfg.BotToken, cfg.BotUsername)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	registerAPIRoutes(v1, h, cfg)

	// Legacy /api routes kept for older clients
	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	api.GET("/health", healthHandler.Health)
	registerAPIRoutes(api, h, cfg)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, cfg *config.Config) {
	// Auth runs before any identity exists, so its limiter is in-process
	api.POST("/auth", middleware.SimpleRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow), h.Auth)

	api.GET("/me", middleware.JWT(), h.Me)
	api.POST("/team", middleware.JWT(), h.SetTeam)

	// Tap gets its own per-user limiter on top of the per-IP one
	api.POST("/game/tap", middleware.JWT(), middleware.TapRateLimit(cfg.TapRateLimit, cfg.TapRateWindow), h.Tap)
	api.POST("/game/daily", middleware.JWT(), h.ClaimDaily)

	api.GET("/tasks", h.ListTasks)
	api.POST("/tasks/seed", h.SeedTasks)
	api.POST("/tasks/:id/claim", middleware.JWT(), h.ClaimTask)

	api.POST("/boosters/:category", middleware.JWT(), h.BuyBooster)

	referral := api.Group("/referral")
	referral.Use(middleware.JWT())
	{
		referral.GET("/code", h.ReferralCode)
		referral.GET("/invited", h.Invited)
	}

	api.GET("/leaderboard", h.Leaderboard)
	api.GET("/stats", h.GlobalStats)
}
