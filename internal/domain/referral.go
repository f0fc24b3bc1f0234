package domain

import (
	"math/big"
	"time"
)

// Referral is an append-only edge between referrer and invitee. Reward is
// the payout actually applied at invite time, not recomputed later.
type Referral struct {
	ID             int64     `db:"id"`
	ReferrerID     int64     `db:"referrer_id"`
	InvitedID      int64     `db:"invited_id"`
	InvitedPremium bool      `db:"invited_premium"`
	Reward         *big.Int  `db:"reward"`
	Username       string    `db:"username"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	ReferralCode   string    `db:"referral_code"`
	CreatedAt      time.Time `db:"created_at"`
}
