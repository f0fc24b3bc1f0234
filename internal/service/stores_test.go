package service

import (
	"context"
	"math/big"

	"tap_legends/internal/domain"
	"tap_legends/internal/gameconfig"
	"tap_legends/internal/logger"

	"github.com/jackc/pgx/v5"
)

// In-memory store fakes. They mimic the repository contracts, including
// pgx.ErrNoRows for missing records and copy-on-read semantics.

type fakeUsers struct {
	m map[int64]*domain.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{m: make(map[int64]*domain.User)}
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	c.Balance = new(big.Int).Set(u.Balance)
	return &c
}

func (f *fakeUsers) GetByTgID(_ context.Context, tgID int64) (*domain.User, error) {
	u, ok := f.m[tgID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return copyUser(u), nil
}

func (f *fakeUsers) Create(_ context.Context, u *domain.User) error {
	if _, ok := f.m[u.TgID]; ok {
		return nil
	}
	f.m[u.TgID] = copyUser(u)
	return nil
}

func (f *fakeUsers) AddBalance(_ context.Context, tgID int64, amount *big.Int) (*big.Int, error) {
	u, ok := f.m[tgID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	u.Balance.Add(u.Balance, amount)
	return new(big.Int).Set(u.Balance), nil
}

func (f *fakeUsers) TrySubBalance(_ context.Context, tgID int64, amount *big.Int) (*big.Int, bool, error) {
	u, ok := f.m[tgID]
	if !ok {
		return nil, false, pgx.ErrNoRows
	}
	if u.Balance.Cmp(amount) < 0 {
		return nil, false, nil
	}
	u.Balance.Sub(u.Balance, amount)
	return new(big.Int).Set(u.Balance), true, nil
}

func (f *fakeUsers) BumpLevel(_ context.Context, tgID int64, fromLevel int) error {
	u, ok := f.m[tgID]
	if ok && u.Level == fromLevel {
		u.Level++
	}
	return nil
}

func (f *fakeUsers) TopByBalanceAtLevel(_ context.Context, level, limit int) ([]domain.User, error) {
	var res []domain.User
	for _, u := range f.m {
		if u.Level == level {
			res = append(res, *copyUser(u))
		}
	}
	for i := 0; i < len(res); i++ {
		for j := i + 1; j < len(res); j++ {
			if res[j].Balance.Cmp(res[i].Balance) > 0 {
				res[i], res[j] = res[j], res[i]
			}
		}
	}
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

type fakeSessions struct {
	m map[int64]*domain.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{m: make(map[int64]*domain.Session)}
}

func copySession(s *domain.Session) *domain.Session {
	c := *s
	c.Energy = new(big.Int).Set(s.Energy)
	c.EarnPerHourBonus = new(big.Int).Set(s.EarnPerHourBonus)
	return &c
}

func (f *fakeSessions) GetByTgID(_ context.Context, tgID int64) (*domain.Session, error) {
	s, ok := f.m[tgID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return copySession(s), nil
}

func (f *fakeSessions) Create(_ context.Context, s *domain.Session) (bool, error) {
	if _, ok := f.m[s.TgID]; ok {
		return false, nil
	}
	f.m[s.TgID] = copySession(s)
	return true, nil
}

func (f *fakeSessions) SaveEnergy(_ context.Context, tgID int64, energy *big.Int, ts int64) error {
	s := f.m[tgID]
	s.Energy = new(big.Int).Set(energy)
	s.LastEnergyUpdateTimestamp = ts
	return nil
}

func (f *fakeSessions) ApplyTap(_ context.Context, tgID int64, energy *big.Int, ts int64) error {
	s := f.m[tgID]
	s.Energy = new(big.Int).Set(energy)
	s.LastTapTimestamp = ts
	return nil
}

func (f *fakeSessions) UpdateDaily(_ context.Context, tgID int64, prevTs, lastTs int64, streak int) error {
	s := f.m[tgID]
	s.PrevDailyClaimTimestamp = prevTs
	s.LastDailyClaimTimestamp = lastTs
	s.DailyStreak = streak
	return nil
}

func (f *fakeSessions) SetTeam(_ context.Context, tgID, teamID int64) error {
	f.m[tgID].TeamID = teamID
	return nil
}

func (f *fakeSessions) SetEarnTaskIDs(_ context.Context, tgID int64, ids string) error {
	f.m[tgID].EarnTaskIDs = ids
	return nil
}

func (f *fakeSessions) IncBooster(_ context.Context, tgID int64, track string) error {
	s := f.m[tgID]
	switch track {
	case gameconfig.BoosterMaxEnergy:
		s.MaxEnergyBoosterLevel++
	case gameconfig.BoosterEnergyRegen:
		s.EnergyRegenBoosterLevel++
	case gameconfig.BoosterEarnTap:
		s.EarnTapBoosterLevel++
	}
	return nil
}

type fakeReferrals struct {
	list []domain.Referral
}

func (f *fakeReferrals) Create(_ context.Context, ref *domain.Referral) error {
	for _, r := range f.list {
		if r.InvitedID == ref.InvitedID {
			return nil
		}
	}
	c := *ref
	c.Reward = new(big.Int).Set(ref.Reward)
	f.list = append(f.list, c)
	return nil
}

func (f *fakeReferrals) ListByReferrer(_ context.Context, referrerID int64) ([]domain.Referral, error) {
	var res []domain.Referral
	for _, r := range f.list {
		if r.ReferrerID == referrerID {
			res = append(res, r)
		}
	}
	return res, nil
}

type fakeTasks struct {
	m map[int64]domain.EarnTask
}

func newFakeTasks() *fakeTasks {
	return &fakeTasks{m: make(map[int64]domain.EarnTask)}
}

func (f *fakeTasks) List(_ context.Context) ([]domain.EarnTask, error) {
	var res []domain.EarnTask
	for _, t := range f.m {
		res = append(res, t)
	}
	return res, nil
}

func (f *fakeTasks) GetByID(_ context.Context, id int64) (*domain.EarnTask, error) {
	t, ok := f.m[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &t, nil
}

func (f *fakeTasks) Count(_ context.Context) (int, error) {
	return len(f.m), nil
}

func (f *fakeTasks) InsertAll(_ context.Context, tasks []domain.EarnTask) error {
	for _, t := range tasks {
		f.m[t.ID] = t
	}
	return nil
}

type fakeStats struct {
	users   int64
	taps    int64
	balance *big.Int
}

func newFakeStats() *fakeStats {
	return &fakeStats{balance: big.NewInt(0)}
}

func (f *fakeStats) IncTotalUsers(_ context.Context)             { f.users++ }
func (f *fakeStats) IncTotalTaps(_ context.Context, count int64) { f.taps += count }
func (f *fakeStats) IncTotalBalance(_ context.Context, amount *big.Int) {
	f.balance.Add(f.balance, amount)
}

// testEnv bundles a game service wired to fakes with a controllable clock.
type testEnv struct {
	svc       *GameService
	users     *fakeUsers
	sessions  *fakeSessions
	referrals *fakeReferrals
	tasks     *fakeTasks
	stats     *fakeStats
	clock     *int64
}

func newTestEnv(start int64) *testEnv {
	env := &testEnv{
		users:     newFakeUsers(),
		sessions:  newFakeSessions(),
		referrals: &fakeReferrals{},
		tasks:     newFakeTasks(),
		stats:     newFakeStats(),
	}
	now := start
	env.clock = &now
	env.svc = &GameService{
		users:     env.users,
		sessions:  env.sessions,
		referrals: env.referrals,
		tasks:     env.tasks,
		stats:     env.stats,
		now:       func() int64 { return *env.clock },
		log:       logger.With("component", "game_service_test"),
	}
	return env
}

func (e *testEnv) advance(seconds int64) {
	*e.clock += seconds
}
