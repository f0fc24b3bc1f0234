package service

import (
	"context"
	"errors"
	"log/slog"
	"math/big"
	"time"

	"tap_legends/internal/domain"
	"tap_legends/internal/gameconfig"
	"tap_legends/internal/logger"
	"tap_legends/internal/refcode"
	"tap_legends/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Identity is the caller's Telegram identity as parsed from init data.
type Identity struct {
	TgID          int64
	Username      string
	FirstName     string
	LastName      string
	LanguageCode  string
	IsPremium     bool
	AllowsWritePM bool
}

// GameService owns all game-state mutations. Every operation loads the user
// and session, applies the rule, persists and returns a composed snapshot.
type GameService struct {
	users     UserStore
	sessions  SessionStore
	referrals ReferralStore
	tasks     TaskStore
	stats     StatsSink

	now func() int64
	log *slog.Logger
}

func NewGameService(db *pgxpool.Pool, stats StatsSink) *GameService {
	return &GameService{
		users:     repository.NewUserRepository(db),
		sessions:  repository.NewSessionRepository(db),
		referrals: repository.NewReferralRepository(db),
		tasks:     repository.NewTaskRepository(db),
		stats:     stats,
		now:       func() int64 { return time.Now().Unix() },
		log:       logger.With("component", "game_service"),
	}
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// GetOrCreate returns the user's full state, creating user and session on
// first contact. The referral code is resolved only when the session is
// genuinely new; a self-referral or unknown code is silently ignored.
func (s *GameService) GetOrCreate(ctx context.Context, id Identity, referralCode string) (*Snapshot, error) {
	user, err := s.users.GetByTgID(ctx, id.TgID)
	if isNoRows(err) {
		user = &domain.User{
			TgID:          id.TgID,
			Username:      id.Username,
			FirstName:     id.FirstName,
			LastName:      id.LastName,
			LanguageCode:  id.LanguageCode,
			IsPremium:     id.IsPremium,
			AllowsWritePM: id.AllowsWritePM,
			ReferralCode:  refcode.Encode(id.TgID),
			Balance:       big.NewInt(0),
			Level:         gameconfig.DefaultLevel,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetByTgID(ctx, id.TgID)
	if isNoRows(err) {
		sess = &domain.Session{
			TgID:                      id.TgID,
			Energy:                    big.NewInt(gameconfig.DefaultEnergy),
			EarnPerHourBonus:          big.NewInt(0),
			LastEnergyUpdateTimestamp: s.now(),
		}
		created, err := s.sessions.Create(ctx, sess)
		if err != nil {
			return nil, err
		}
		if created {
			if referralCode != "" {
				if err := s.applyReferral(ctx, user, referralCode); err != nil {
					return nil, err
				}
			}
			s.stats.IncTotalUsers(ctx)
			s.log.Info("new user registered", "tg_id", id.TgID, "premium", id.IsPremium)
		}
	} else if err != nil {
		return nil, err
	}

	if err := s.updateEnergy(ctx, user, sess); err != nil {
		return nil, err
	}
	return s.snapshot(user, sess), nil
}

// applyReferral records the invite edge and credits both sides with the
// same bonus. The amount is snapshotted into the record at invite time.
func (s *GameService) applyReferral(ctx context.Context, user *domain.User, code string) error {
	referrerID, err := refcode.Decode(code)
	if err != nil || referrerID == user.TgID {
		return nil
	}

	referrer, err := s.users.GetByTgID(ctx, referrerID)
	if isNoRows(err) {
		return nil
	}
	if err != nil {
		return err
	}

	reward := big.NewInt(gameconfig.ReferralBonusRegular)
	if user.IsPremium {
		reward = big.NewInt(gameconfig.ReferralBonusPremium)
	}

	ref := &domain.Referral{
		ReferrerID:     referrer.TgID,
		InvitedID:      user.TgID,
		InvitedPremium: user.IsPremium,
		Reward:         reward,
		Username:       user.Username,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		ReferralCode:   code,
	}
	if err := s.referrals.Create(ctx, ref); err != nil {
		return err
	}

	if err := s.increaseBalance(ctx, referrer, reward); err != nil {
		return err
	}
	return s.increaseBalance(ctx, user, reward)
}

// SetTeam stores team membership. No other side effects.
func (s *GameService) SetTeam(ctx context.Context, tgID, teamID int64) (*Snapshot, error) {
	user, sess, err := s.load(ctx, tgID)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SetTeam(ctx, tgID, teamID); err != nil {
		return nil, err
	}
	sess.TeamID = teamID
	return s.snapshot(user, sess), nil
}

// Me returns the current state with energy regen applied.
func (s *GameService) Me(ctx context.Context, tgID int64) (*Snapshot, error) {
	user, sess, err := s.load(ctx, tgID)
	if err != nil {
		return nil, err
	}

	if err := s.updateEnergy(ctx, user, sess); err != nil {
		return nil, err
	}
	return s.snapshot(user, sess), nil
}

// Tap spends energy and credits balance for count taps in one call.
func (s *GameService) Tap(ctx context.Context, tgID, count int64) (*Snapshot, error) {
	user, sess, err := s.load(ctx, tgID)
	if err != nil {
		return nil, err
	}

	if err := s.updateEnergy(ctx, user, sess); err != nil {
		return nil, err
	}

	perTap := gameconfig.EarnByTap(user.Level, sess.EarnTapBoosterLevel)
	reward := new(big.Int).Mul(big.NewInt(perTap), big.NewInt(count))

	if sess.Energy.Cmp(reward) < 0 {
		return nil, ErrNotEnoughEnergy
	}

	now := s.now()
	sess.Energy = new(big.Int).Sub(sess.Energy, reward)
	sess.LastTapTimestamp = now
	if err := s.sessions.ApplyTap(ctx, tgID, sess.Energy, now); err != nil {
		return nil, err
	}

	if err := s.increaseBalance(ctx, user, reward); err != nil {
		return nil, err
	}

	s.stats.IncTotalTaps(ctx, count)
	s.stats.IncTotalBalance(ctx, reward)

	return s.snapshot(user, sess), nil
}

// ClaimDailyBonus credits the streak-indexed bonus once per 24h window.
func (s *GameService) ClaimDailyBonus(ctx context.Context, tgID int64) (*Snapshot, error) {
	user, sess, err := s.load(ctx, tgID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if now-sess.LastDailyClaimTimestamp < gameconfig.DailyClaimCooldown {
		return nil, ErrDailyTooSoon
	}

	bonus := big.NewInt(gameconfig.Daily[sess.DailyStreak])
	if err := s.increaseBalance(ctx, user, bonus); err != nil {
		return nil, err
	}

	streak := sess.DailyStreak
	if now-sess.PrevDailyClaimTimestamp > gameconfig.DailyStreakWindow && streak > 0 {
		streak = 0
	} else if streak+1 < len(gameconfig.Daily) {
		streak = streak + 1
	} else {
		streak = len(gameconfig.Daily) - 1
	}

	if err := s.sessions.UpdateDaily(ctx, tgID, sess.LastDailyClaimTimestamp, now, streak); err != nil {
		return nil, err
	}
	sess.PrevDailyClaimTimestamp = sess.LastDailyClaimTimestamp
	sess.LastDailyClaimTimestamp = now
	sess.DailyStreak = streak

	return s.snapshot(user, sess), nil
}

// ClaimEarnTask credits a task reward exactly once per task.
func (s *GameService) ClaimEarnTask(ctx context.Context, tgID, taskID int64) (*Snapshot, error) {
	user, sess, err := s.load(ctx, tgID)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if isNoRows(err) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	if sess.HasCompletedTask(taskID) {
		return nil, ErrTaskAlreadyClaimed
	}

	sess.AppendCompletedTask(taskID)
	if err := s.sessions.SetEarnTaskIDs(ctx, tgID, sess.EarnTaskIDs); err != nil {
		return nil, err
	}

	if err := s.increaseBalance(ctx, user, big.NewInt(task.Reward)); err != nil {
		return nil, err
	}

	if err := s.updateEnergy(ctx, user, sess); err != nil {
		return nil, err
	}
	return s.snapshot(user, sess), nil
}

// BuyBooster purchases the next tier of one booster track.
func (s *GameService) BuyBooster(ctx context.Context, tgID int64, track string) (*Snapshot, error) {
	user, sess, err := s.load(ctx, tgID)
	if err != nil {
		return nil, err
	}

	table, ok := gameconfig.BoosterTable(track)
	if !ok {
		return nil, ErrUnknownBooster
	}

	current := boosterLevel(sess, track)
	next := current + 1
	if next >= len(table) {
		return nil, ErrBoosterMaxLevel
	}

	cost := big.NewInt(table[next].Cost)
	newBalance, paid, err := s.users.TrySubBalance(ctx, tgID, cost)
	if err != nil {
		return nil, err
	}
	if !paid {
		return nil, ErrInsufficientBalance
	}
	user.Balance = newBalance

	if err := s.sessions.IncBooster(ctx, tgID, track); err != nil {
		return nil, err
	}
	setBoosterLevel(sess, track, next)

	if err := s.updateEnergy(ctx, user, sess); err != nil {
		return nil, err
	}
	return s.snapshot(user, sess), nil
}

// InvitedEntry is the public projection of one referral record.
type InvitedEntry struct {
	TelegramID int64  `json:"telegram_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Username   string `json:"username"`
	IsPremium  bool   `json:"is_premium"`
	Reward     string `json:"reward"`
}

// ReferralCode returns the user's invite code.
func (s *GameService) ReferralCode(ctx context.Context, tgID int64) (string, error) {
	user, err := s.users.GetByTgID(ctx, tgID)
	if isNoRows(err) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return user.ReferralCode, nil
}

// Invited lists everyone the user brought in.
func (s *GameService) Invited(ctx context.Context, tgID int64) ([]InvitedEntry, error) {
	if _, err := s.users.GetByTgID(ctx, tgID); err != nil {
		if isNoRows(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	refs, err := s.referrals.ListByReferrer(ctx, tgID)
	if err != nil {
		return nil, err
	}

	res := make([]InvitedEntry, 0, len(refs))
	for _, ref := range refs {
		res = append(res, InvitedEntry{
			TelegramID: ref.InvitedID,
			FirstName:  ref.FirstName,
			LastName:   ref.LastName,
			Username:   ref.Username,
			IsPremium:  ref.InvitedPremium,
			Reward:     ref.Reward.String(),
		})
	}
	return res, nil
}

// LeaderboardEntry is the public projection of one leaderboard row.
type LeaderboardEntry struct {
	TelegramID int64  `json:"telegram_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Username   string `json:"username"`
	IsPremium  bool   `json:"is_premium"`
	Balance    string `json:"balance"`
}

// Leaderboard returns the top 10 users at an exact level by balance.
func (s *GameService) Leaderboard(ctx context.Context, level int) ([]LeaderboardEntry, error) {
	if level < 1 || level > gameconfig.MaxLevel {
		return nil, ErrInvalidLevel
	}

	users, err := s.users.TopByBalanceAtLevel(ctx, level, 10)
	if err != nil {
		return nil, err
	}

	res := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		res = append(res, LeaderboardEntry{
			TelegramID: u.TgID,
			FirstName:  u.FirstName,
			LastName:   u.LastName,
			Username:   u.Username,
			IsPremium:  u.IsPremium,
			Balance:    u.Balance.String(),
		})
	}
	return res, nil
}

// Tasks returns the earn task catalog.
func (s *GameService) Tasks(ctx context.Context) ([]domain.EarnTask, error) {
	return s.tasks.List(ctx)
}

// load fetches user and session, translating missing rows to NotFound.
func (s *GameService) load(ctx context.Context, tgID int64) (*domain.User, *domain.Session, error) {
	user, err := s.users.GetByTgID(ctx, tgID)
	if isNoRows(err) {
		return nil, nil, ErrUserNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	sess, err := s.sessions.GetByTgID(ctx, tgID)
	if isNoRows(err) {
		return nil, nil, ErrUserNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	return user, sess, nil
}

// updateEnergy applies lazy regen and persists the result immediately,
// regardless of whether the triggering action then succeeds.
func (s *GameService) updateEnergy(ctx context.Context, user *domain.User, sess *domain.Session) error {
	now := s.now()
	elapsed := now - sess.LastEnergyUpdateTimestamp
	if elapsed < 0 {
		elapsed = 0
	}

	rate := gameconfig.EnergyPerSecond(user.Level, sess.EnergyRegenBoosterLevel)
	gained := new(big.Int).Mul(big.NewInt(elapsed), big.NewInt(rate))
	energy := new(big.Int).Add(sess.Energy, gained)

	max := big.NewInt(gameconfig.MaxEnergy(user.Level, sess.MaxEnergyBoosterLevel))
	if energy.Cmp(max) > 0 {
		energy = max
	}

	sess.Energy = energy
	sess.LastEnergyUpdateTimestamp = now
	return s.sessions.SaveEnergy(ctx, sess.TgID, energy, now)
}

// increaseBalance credits amount and bumps the level when the new balance
// crosses the next threshold. At most one level per call, even when the gain
// crosses several thresholds at once.
func (s *GameService) increaseBalance(ctx context.Context, user *domain.User, amount *big.Int) error {
	newBalance, err := s.users.AddBalance(ctx, user.TgID, amount)
	if err != nil {
		return err
	}
	user.Balance = newBalance

	next, ok := gameconfig.Levels[user.Level+1]
	if ok && newBalance.Cmp(big.NewInt(next.PointsToGet)) >= 0 {
		if err := s.users.BumpLevel(ctx, user.TgID, user.Level); err != nil {
			return err
		}
		user.Level++
	}
	return nil
}
