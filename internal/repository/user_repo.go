package repository

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"tap_legends/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// parseBig converts a NUMERIC column fetched as text into a big.Int.
func parseBig(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("bad numeric value %q", s)
	}
	return n, nil
}

func (r *UserRepository) GetByTgID(ctx context.Context, tgID int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT tg_id, COALESCE(username, ''), COALESCE(first_name, ''), COALESCE(last_name, ''),
		        COALESCE(language_code, ''), is_premium, allows_write_pm, referral_code,
		        balance::text, level
		 FROM users
		 WHERE tg_id = $1`,
		tgID,
	)

	var u domain.User
	var balance string
	if err := row.Scan(
		&u.TgID,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.LanguageCode,
		&u.IsPremium,
		&u.AllowsWritePM,
		&u.ReferralCode,
		&balance,
		&u.Level,
	); err != nil {
		return nil, err
	}

	b, err := parseBig(balance)
	if err != nil {
		return nil, err
	}
	u.Balance = b
	return &u, nil
}

// Create inserts a new user. Safe under concurrent duplicate requests:
// a second insert for the same tg_id is a no-op.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (tg_id, username, first_name, last_name, language_code,
		                    is_premium, allows_write_pm, referral_code, balance, level)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::numeric, $10)
		 ON CONFLICT (tg_id) DO NOTHING`,
		u.TgID,
		u.Username,
		u.FirstName,
		u.LastName,
		u.LanguageCode,
		u.IsPremium,
		u.AllowsWritePM,
		u.ReferralCode,
		u.Balance.String(),
		u.Level,
	)
	return err
}

// AddBalance atomically adds amount and returns the new balance.
func (r *UserRepository) AddBalance(ctx context.Context, tgID int64, amount *big.Int) (*big.Int, error) {
	var newBalance string
	err := r.db.QueryRow(ctx,
		`UPDATE users SET balance = balance + $1::numeric WHERE tg_id = $2 RETURNING balance::text`,
		amount.String(), tgID,
	).Scan(&newBalance)
	if err != nil {
		return nil, err
	}
	return parseBig(newBalance)
}

// TrySubBalance atomically subtracts amount if the balance covers it.
// Returns ok=false with untouched state when it does not.
func (r *UserRepository) TrySubBalance(ctx context.Context, tgID int64, amount *big.Int) (*big.Int, bool, error) {
	var newBalance string
	err := r.db.QueryRow(ctx,
		`UPDATE users SET balance = balance - $1::numeric
		 WHERE tg_id = $2 AND balance >= $1::numeric
		 RETURNING balance::text`,
		amount.String(), tgID,
	).Scan(&newBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	b, err := parseBig(newBalance)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// BumpLevel increments the level by exactly one, guarded by the current
// value so concurrent bumps cannot double-apply.
func (r *UserRepository) BumpLevel(ctx context.Context, tgID int64, fromLevel int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET level = level + 1 WHERE tg_id = $1 AND level = $2`,
		tgID, fromLevel,
	)
	return err
}

// TopByBalanceAtLevel returns the richest users at an exact level.
func (r *UserRepository) TopByBalanceAtLevel(ctx context.Context, level, limit int) ([]domain.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT tg_id, COALESCE(username, ''), COALESCE(first_name, ''), COALESCE(last_name, ''),
		        is_premium, balance::text, level
		 FROM users
		 WHERE level = $1
		 ORDER BY balance DESC
		 LIMIT $2`,
		level, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.User
	for rows.Next() {
		var u domain.User
		var balance string
		if err := rows.Scan(&u.TgID, &u.Username, &u.FirstName, &u.LastName, &u.IsPremium, &balance, &u.Level); err != nil {
			return nil, err
		}
		b, err := parseBig(balance)
		if err != nil {
			return nil, err
		}
		u.Balance = b
		res = append(res, u)
	}
	return res, rows.Err()
}
