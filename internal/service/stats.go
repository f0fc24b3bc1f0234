package service

import (
	"context"
	"log/slog"
	"math/big"

	"tap_legends/internal/logger"
	"tap_legends/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	statTotalUsers = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "game_users_total",
		Help: "Total registered users",
	})
	statTotalTaps = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "game_taps_total",
		Help: "Total taps processed",
	})
	statBalanceDistributed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "game_balance_distributed_total",
		Help: "Total balance credited to users",
	})
)

func init() {
	prometheus.MustRegister(statTotalUsers)
	prometheus.MustRegister(statTotalTaps)
	prometheus.MustRegister(statBalanceDistributed)
}

// StatsService mirrors global counters into prometheus and a persisted row.
// Increments are best-effort: they run after the action's own state is
// persisted and are never rolled back, so the row may drift from ground
// truth. That drift is accepted.
type StatsService struct {
	repo *repository.StatsRepository
	log  *slog.Logger
}

func NewStatsService(db *pgxpool.Pool) *StatsService {
	return &StatsService{
		repo: repository.NewStatsRepository(db),
		log:  logger.With("component", "stats"),
	}
}

func (s *StatsService) IncTotalUsers(ctx context.Context) {
	statTotalUsers.Inc()
	if err := s.repo.IncTotalUsers(ctx); err != nil {
		s.log.Error("failed to increment total users", "error", err)
	}
}

func (s *StatsService) IncTotalTaps(ctx context.Context, count int64) {
	statTotalTaps.Add(float64(count))
	if err := s.repo.IncTotalTaps(ctx, count); err != nil {
		s.log.Error("failed to increment total taps", "error", err)
	}
}

func (s *StatsService) IncTotalBalance(ctx context.Context, amount *big.Int) {
	f, _ := new(big.Float).SetInt(amount).Float64()
	statBalanceDistributed.Add(f)
	if err := s.repo.IncTotalBalance(ctx, amount); err != nil {
		s.log.Error("failed to increment total balance", "error", err)
	}
}

// Global returns the persisted counters.
func (s *StatsService) Global(ctx context.Context) (*repository.GlobalStats, error) {
	return s.repo.Get(ctx)
}
