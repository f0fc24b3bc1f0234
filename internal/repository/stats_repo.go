package repository

import (
	"context"
	"math/big"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepository keeps the global game counters in a single row.
// Every increment is an atomic SQL add.
type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

type GlobalStats struct {
	TotalUsers   int64    `json:"total_users"`
	TotalTaps    int64    `json:"total_taps"`
	TotalBalance *big.Int `json:"-"`
}

func (r *StatsRepository) IncTotalUsers(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `UPDATE stats SET total_users = total_users + 1 WHERE id = 1`)
	return err
}

func (r *StatsRepository) IncTotalTaps(ctx context.Context, count int64) error {
	_, err := r.db.Exec(ctx, `UPDATE stats SET total_taps = total_taps + $1 WHERE id = 1`, count)
	return err
}

func (r *StatsRepository) IncTotalBalance(ctx context.Context, amount *big.Int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE stats SET total_balance = total_balance + $1::numeric WHERE id = 1`,
		amount.String(),
	)
	return err
}

func (r *StatsRepository) Get(ctx context.Context) (*GlobalStats, error) {
	var s GlobalStats
	var balance string
	err := r.db.QueryRow(ctx,
		`SELECT total_users, total_taps, total_balance::text FROM stats WHERE id = 1`,
	).Scan(&s.TotalUsers, &s.TotalTaps, &balance)
	if err != nil {
		return nil, err
	}
	b, err := parseBig(balance)
	if err != nil {
		return nil, err
	}
	s.TotalBalance = b
	return &s, nil
}
