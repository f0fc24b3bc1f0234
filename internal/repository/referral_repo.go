package repository

import (
	"context"

	"tap_legends/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReferralRepository struct {
	db *pgxpool.Pool
}

func NewReferralRepository(db *pgxpool.Pool) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// Create appends a referral edge. At most one record per invitee.
func (r *ReferralRepository) Create(ctx context.Context, ref *domain.Referral) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO referrals (referrer_id, invited_id, invited_premium, reward,
		                        username, first_name, last_name, referral_code)
		 VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8)
		 ON CONFLICT (invited_id) DO NOTHING`,
		ref.ReferrerID,
		ref.InvitedID,
		ref.InvitedPremium,
		ref.Reward.String(),
		ref.Username,
		ref.FirstName,
		ref.LastName,
		ref.ReferralCode,
	)
	return err
}

// ListByReferrer returns every referral where the user is the inviter.
func (r *ReferralRepository) ListByReferrer(ctx context.Context, referrerID int64) ([]domain.Referral, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, referrer_id, invited_id, invited_premium, reward::text,
		        COALESCE(username, ''), COALESCE(first_name, ''), COALESCE(last_name, ''),
		        referral_code, created_at
		 FROM referrals
		 WHERE referrer_id = $1
		 ORDER BY created_at DESC`,
		referrerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Referral
	for rows.Next() {
		var ref domain.Referral
		var reward string
		if err := rows.Scan(
			&ref.ID,
			&ref.ReferrerID,
			&ref.InvitedID,
			&ref.InvitedPremium,
			&reward,
			&ref.Username,
			&ref.FirstName,
			&ref.LastName,
			&ref.ReferralCode,
			&ref.CreatedAt,
		); err != nil {
			return nil, err
		}
		w, err := parseBig(reward)
		if err != nil {
			return nil, err
		}
		ref.Reward = w
		res = append(res, ref)
	}
	return res, rows.Err()
}
