package tenant

import (
	"context"

	"gymcore/internal/db"

	"github.com/jmoiron/sqlx"
)

type store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) Store {
	return &store{db: db}
}

func (s *store) FindUserByID(ctx context.Context, id int) (*UserRecord, error) {
	var u UserRecord
	err := s.db.GetContext(ctx, &u, `
		SELECT id, email, full_name, gym_id, role, is_active
		FROM users
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *store) GymStatus(ctx context.Context, gymID int) (*GymStatus, error) {
	var st GymStatus
	err := s.db.GetContext(ctx, &st, `
		SELECT g.id AS gym_id, g.is_active,
		       sub.id AS subscription_id, sub.status AS subscription_status, sub.end_date
		FROM gyms g
		LEFT JOIN LATERAL (
			SELECT id, status, end_date
			FROM subscriptions
			WHERE gym_id = g.id AND status IN ('active', 'cancelled')
			ORDER BY end_date DESC
			LIMIT 1
		) sub ON TRUE
		WHERE g.id = $1
	`, gymID)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *store) ExpireSubscription(ctx context.Context, gymID, subscriptionID int) error {
	return db.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
			UPDATE subscriptions
			SET status = 'expired', updated_at = NOW()
			WHERE id = $1 AND gym_id = $2 AND status IN ('active', 'cancelled')
		`, subscriptionID, gymID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE gyms
			SET is_active = FALSE, updated_at = NOW()
			WHERE id = $1
		`, gymID)
		return err
	})
}
