package service

import (
	"tap_legends/internal/domain"
	"tap_legends/internal/gameconfig"
)

// Snapshot is the composed view returned by every game action. Balances and
// energy travel as decimal strings so arbitrary-precision values survive
// JSON round trips.
type Snapshot struct {
	TelegramID    int64  `json:"telegram_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Username      string `json:"username"`
	LanguageCode  string `json:"language_code"`
	IsPremium     bool   `json:"is_premium"`
	AllowsWritePM bool   `json:"allows_write_pm"`
	ReferralCode  string `json:"referral_code"`

	Balance string `json:"balance"`
	Level   int    `json:"level"`

	Energy                    string  `json:"energy"`
	EarnTapBoosterLevel       int     `json:"earn_tap_booster_level"`
	EnergyRegenBoosterLevel   int     `json:"energy_regen_booster_level"`
	MaxEnergyBoosterLevel     int     `json:"max_energy_booster_level"`
	EarnPerHourBonus          string  `json:"earn_per_hour_bonus"`
	LastEnergyUpdateTimestamp int64   `json:"last_energy_update_timestamp"`
	LastTapTimestamp          int64   `json:"last_tap_timestamp"`
	LastDailyClaimTimestamp   int64   `json:"last_daily_claim_timestamp"`
	PrevDailyClaimTimestamp   int64   `json:"prev_daily_claim_timestamp"`
	DailyStreak               int     `json:"daily_streak"`
	TeamID                    int64   `json:"team_id"`
	EarnTaskIDs               []int64 `json:"earn_task_ids"`

	MaxEnergy       int64 `json:"max_energy"`
	EnergyPerSecond int64 `json:"energy_per_second"`
	EarnPerTap      int64 `json:"earn_per_tap"`
}

func (s *GameService) snapshot(user *domain.User, sess *domain.Session) *Snapshot {
	return &Snapshot{
		TelegramID:    user.TgID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Username:      user.Username,
		LanguageCode:  user.LanguageCode,
		IsPremium:     user.IsPremium,
		AllowsWritePM: user.AllowsWritePM,
		ReferralCode:  user.ReferralCode,

		Balance: user.Balance.String(),
		Level:   user.Level,

		Energy:                    sess.Energy.String(),
		EarnTapBoosterLevel:       sess.EarnTapBoosterLevel,
		EnergyRegenBoosterLevel:   sess.EnergyRegenBoosterLevel,
		MaxEnergyBoosterLevel:     sess.MaxEnergyBoosterLevel,
		EarnPerHourBonus:          sess.EarnPerHourBonus.String(),
		LastEnergyUpdateTimestamp: sess.LastEnergyUpdateTimestamp,
		LastTapTimestamp:          sess.LastTapTimestamp,
		LastDailyClaimTimestamp:   sess.LastDailyClaimTimestamp,
		PrevDailyClaimTimestamp:   sess.PrevDailyClaimTimestamp,
		DailyStreak:               sess.DailyStreak,
		TeamID:                    sess.TeamID,
		EarnTaskIDs:               sess.CompletedTaskIDs(),

		MaxEnergy:       gameconfig.MaxEnergy(user.Level, sess.MaxEnergyBoosterLevel),
		EnergyPerSecond: gameconfig.EnergyPerSecond(user.Level, sess.EnergyRegenBoosterLevel),
		EarnPerTap:      gameconfig.EarnByTap(user.Level, sess.EarnTapBoosterLevel),
	}
}

func boosterLevel(sess *domain.Session, track string) int {
	switch track {
	case gameconfig.BoosterMaxEnergy:
		return sess.MaxEnergyBoosterLevel
	case gameconfig.BoosterEnergyRegen:
		return sess.EnergyRegenBoosterLevel
	default:
		return sess.EarnTapBoosterLevel
	}
}

func setBoosterLevel(sess *domain.Session, track string, level int) {
	switch track {
	case gameconfig.BoosterMaxEnergy:
		sess.MaxEnergyBoosterLevel = level
	case gameconfig.BoosterEnergyRegen:
		sess.EnergyRegenBoosterLevel = level
	default:
		sess.EarnTapBoosterLevel = level
	}
}
