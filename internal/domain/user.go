package domain

import "math/big"

type User struct {
	TgID          int64    `db:"tg_id"`
	Username      string   `db:"username"`
	FirstName     string   `db:"first_name"`
	LastName      string   `db:"last_name"`
	LanguageCode  string   `db:"language_code"`
	IsPremium     bool     `db:"is_premium"`
	AllowsWritePM bool     `db:"allows_write_pm"`
	ReferralCode  string   `db:"referral_code"`
	Balance       *big.Int `db:"balance"`
	Level         int      `db:"level"`
}
