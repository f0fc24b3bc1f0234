package repository

import (
	"context"
	"errors"
	"math/big"

	"tap_legends/internal/domain"
	"tap_legends/internal/gameconfig"

	"github.com/jackc/pgx/v5/pgxpool"
)

var errUnknownBoosterTrack = errors.New("unknown booster track")

type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) GetByTgID(ctx context.Context, tgID int64) (*domain.Session, error) {
	row := r.db.QueryRow(ctx,
		`SELECT tg_id, energy::text, earn_tap_booster_level, energy_regen_booster_level,
		        max_energy_booster_level, earn_per_hour_bonus::text,
		        last_energy_update_ts, last_tap_ts, last_daily_claim_ts,
		        prev_daily_claim_ts, daily_streak, COALESCE(team_id, 0),
		        COALESCE(earn_task_ids, '')
		 FROM sessions
		 WHERE tg_id = $1`,
		tgID,
	)

	var s domain.Session
	var energy, earnPerHour string
	if err := row.Scan(
		&s.TgID,
		&energy,
		&s.EarnTapBoosterLevel,
		&s.EnergyRegenBoosterLevel,
		&s.MaxEnergyBoosterLevel,
		&earnPerHour,
		&s.LastEnergyUpdateTimestamp,
		&s.LastTapTimestamp,
		&s.LastDailyClaimTimestamp,
		&s.PrevDailyClaimTimestamp,
		&s.DailyStreak,
		&s.TeamID,
		&s.EarnTaskIDs,
	); err != nil {
		return nil, err
	}

	e, err := parseBig(energy)
	if err != nil {
		return nil, err
	}
	s.Energy = e

	eph, err := parseBig(earnPerHour)
	if err != nil {
		return nil, err
	}
	s.EarnPerHourBonus = eph
	return &s, nil
}

// Create inserts a session and reports whether a row was actually created.
// The caller uses that flag to run first-creation side effects exactly once.
func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO sessions (tg_id, energy, earn_tap_booster_level, energy_regen_booster_level,
		                       max_energy_booster_level, earn_per_hour_bonus,
		                       last_energy_update_ts, last_tap_ts, last_daily_claim_ts,
		                       prev_daily_claim_ts, daily_streak, earn_task_ids)
		 VALUES ($1, $2::numeric, $3, $4, $5, $6::numeric, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (tg_id) DO NOTHING`,
		s.TgID,
		s.Energy.String(),
		s.EarnTapBoosterLevel,
		s.EnergyRegenBoosterLevel,
		s.MaxEnergyBoosterLevel,
		s.EarnPerHourBonus.String(),
		s.LastEnergyUpdateTimestamp,
		s.LastTapTimestamp,
		s.LastDailyClaimTimestamp,
		s.PrevDailyClaimTimestamp,
		s.DailyStreak,
		s.EarnTaskIDs,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// SaveEnergy persists the lazily recomputed energy and its timestamp.
func (r *SessionRepository) SaveEnergy(ctx context.Context, tgID int64, energy *big.Int, ts int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE sessions SET energy = $1::numeric, last_energy_update_ts = $2 WHERE tg_id = $3`,
		energy.String(), ts, tgID,
	)
	return err
}

// ApplyTap writes the post-tap energy and the tap timestamp.
func (r *SessionRepository) ApplyTap(ctx context.Context, tgID int64, energy *big.Int, ts int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE sessions SET energy = $1::numeric, last_tap_ts = $2 WHERE tg_id = $3`,
		energy.String(), ts, tgID,
	)
	return err
}

// UpdateDaily shifts the claim timestamps and stores the new streak.
func (r *SessionRepository) UpdateDaily(ctx context.Context, tgID int64, prevTs, lastTs int64, streak int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE sessions SET prev_daily_claim_ts = $1, last_daily_claim_ts = $2, daily_streak = $3
		 WHERE tg_id = $4`,
		prevTs, lastTs, streak, tgID,
	)
	return err
}

func (r *SessionRepository) SetTeam(ctx context.Context, tgID, teamID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE sessions SET team_id = $1 WHERE tg_id = $2`,
		teamID, tgID,
	)
	return err
}

func (r *SessionRepository) SetEarnTaskIDs(ctx context.Context, tgID int64, ids string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE sessions SET earn_task_ids = $1 WHERE tg_id = $2`,
		ids, tgID,
	)
	return err
}

// IncBooster atomically bumps one booster track by one level.
func (r *SessionRepository) IncBooster(ctx context.Context, tgID int64, track string) error {
	var column string
	switch track {
	case gameconfig.BoosterMaxEnergy:
		column = "max_energy_booster_level"
	case gameconfig.BoosterEnergyRegen:
		column = "energy_regen_booster_level"
	case gameconfig.BoosterEarnTap:
		column = "earn_tap_booster_level"
	default:
		return errUnknownBoosterTrack
	}
	_, err := r.db.Exec(ctx,
		`UPDATE sessions SET `+column+` = `+column+` + 1 WHERE tg_id = $1`,
		tgID,
	)
	return err
}
