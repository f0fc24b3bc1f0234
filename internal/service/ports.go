package service

import (
	"context"
	"math/big"

	"tap_legends/internal/domain"
)

// Storage ports. The pgx repositories in internal/repository implement these;
// tests run the game service against in-memory fakes.

type UserStore interface {
	GetByTgID(ctx context.Context, tgID int64) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	AddBalance(ctx context.Context, tgID int64, amount *big.Int) (*big.Int, error)
	TrySubBalance(ctx context.Context, tgID int64, amount *big.Int) (*big.Int, bool, error)
	BumpLevel(ctx context.Context, tgID int64, fromLevel int) error
	TopByBalanceAtLevel(ctx context.Context, level, limit int) ([]domain.User, error)
}

type SessionStore interface {
	GetByTgID(ctx context.Context, tgID int64) (*domain.Session, error)
	Create(ctx context.Context, s *domain.Session) (bool, error)
	SaveEnergy(ctx context.Context, tgID int64, energy *big.Int, ts int64) error
	ApplyTap(ctx context.Context, tgID int64, energy *big.Int, ts int64) error
	UpdateDaily(ctx context.Context, tgID int64, prevTs, lastTs int64, streak int) error
	SetTeam(ctx context.Context, tgID, teamID int64) error
	SetEarnTaskIDs(ctx context.Context, tgID int64, ids string) error
	IncBooster(ctx context.Context, tgID int64, track string) error
}

type ReferralStore interface {
	Create(ctx context.Context, ref *domain.Referral) error
	ListByReferrer(ctx context.Context, referrerID int64) ([]domain.Referral, error)
}

type TaskStore interface {
	List(ctx context.Context) ([]domain.EarnTask, error)
	GetByID(ctx context.Context, id int64) (*domain.EarnTask, error)
	Count(ctx context.Context) (int, error)
	InsertAll(ctx context.Context, tasks []domain.EarnTask) error
}

// StatsSink receives best-effort global counters. Implementations must not
// fail the calling action; errors end up in the log only.
type StatsSink interface {
	IncTotalUsers(ctx context.Context)
	IncTotalTaps(ctx context.Context, count int64)
	IncTotalBalance(ctx context.Context, amount *big.Int)
}
