package domain

import (
	"math/big"
	"strconv"
	"strings"
)

// Session is the mutable game state, 1:1 with User.
type Session struct {
	TgID                      int64    `db:"tg_id"`
	Energy                    *big.Int `db:"energy"`
	EarnTapBoosterLevel       int      `db:"earn_tap_booster_level"`
	EnergyRegenBoosterLevel   int      `db:"energy_regen_booster_level"`
	MaxEnergyBoosterLevel     int      `db:"max_energy_booster_level"`
	EarnPerHourBonus          *big.Int `db:"earn_per_hour_bonus"`
	LastEnergyUpdateTimestamp int64    `db:"last_energy_update_ts"`
	LastTapTimestamp          int64    `db:"last_tap_ts"`
	LastDailyClaimTimestamp   int64    `db:"last_daily_claim_ts"`
	PrevDailyClaimTimestamp   int64    `db:"prev_daily_claim_ts"`
	DailyStreak               int      `db:"daily_streak"`
	TeamID                    int64    `db:"team_id"`
	EarnTaskIDs               string   `db:"earn_task_ids"`
}

// CompletedTaskIDs splits the stored comma list into ids.
func (s *Session) CompletedTaskIDs() []int64 {
	if s.EarnTaskIDs == "" {
		return nil
	}
	parts := strings.Split(s.EarnTaskIDs, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		if id, err := strconv.ParseInt(p, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// HasCompletedTask reports whether a task id is in the completed set.
func (s *Session) HasCompletedTask(taskID int64) bool {
	for _, id := range s.CompletedTaskIDs() {
		if id == taskID {
			return true
		}
	}
	return false
}

// AppendCompletedTask adds a task id to the stored comma list.
func (s *Session) AppendCompletedTask(taskID int64) {
	id := strconv.FormatInt(taskID, 10)
	if s.EarnTaskIDs == "" {
		s.EarnTaskIDs = id
		return
	}
	s.EarnTaskIDs += "," + id
}
