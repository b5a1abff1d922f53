package subscription

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymcore/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const subscriptionColumns = `id, gym_id, plan_type, amount, status, start_date, end_date, cancelled_at, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Activate locks the gym row so concurrent payments for the same gym
// serialize; only the first one creates a subscription. A gym still flagged
// active whose latest term ended before start has lapsed and is renewed.
func (r *repository) Activate(ctx context.Context, gymID int, planType string, amount decimal.Decimal, start, end time.Time) (*Subscription, bool, error) {
	var (
		sub       Subscription
		activated bool
	)

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var isActive bool
		err := tx.GetContext(ctx, &isActive, `SELECT is_active FROM gyms WHERE id = $1 FOR UPDATE`, gymID)
		if err != nil {
			return err
		}
		if isActive {
			var endDate time.Time
			err := tx.GetContext(ctx, &endDate, `
				SELECT end_date FROM subscriptions
				WHERE gym_id = $1 AND status IN ('active', 'cancelled')
				ORDER BY end_date DESC
				LIMIT 1
			`, gymID)
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			if err != nil {
				return err
			}
			if endDate.After(start) {
				return nil
			}
		}

		// leftovers of a previous period must not stay active next to the new row
		_, err = tx.ExecContext(ctx, `
			UPDATE subscriptions
			SET status = 'expired', updated_at = NOW()
			WHERE gym_id = $1 AND status IN ('active', 'cancelled')
		`, gymID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE gyms
			SET is_active = TRUE, plan_type = $1, updated_at = NOW()
			WHERE id = $2
		`, planType, gymID)
		if err != nil {
			return err
		}

		err = tx.QueryRowxContext(ctx, `
			INSERT INTO subscriptions (gym_id, plan_type, amount, status, start_date, end_date)
			VALUES ($1, $2, $3, 'active', $4, $5)
			RETURNING `+subscriptionColumns,
			gymID, planType, amount, start, end,
		).StructScan(&sub)
		if err != nil {
			return err
		}

		activated = true
		return nil
	})
	if err != nil || !activated {
		return nil, false, err
	}

	return &sub, true, nil
}

// Current returns the latest subscription that has not been marked expired.
func (r *repository) Current(ctx context.Context, gymID int) (*Subscription, error) {
	var sub Subscription
	err := r.db.GetContext(ctx, &sub, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE gym_id = $1 AND status IN ('active', 'cancelled')
		ORDER BY end_date DESC
		LIMIT 1
	`, gymID)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *repository) Active(ctx context.Context, gymID int) (*Subscription, error) {
	var sub Subscription
	err := r.db.GetContext(ctx, &sub, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE gym_id = $1 AND status = 'active'
		ORDER BY end_date DESC
		LIMIT 1
	`, gymID)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ChangePlan updates the plan on the subscription and on the gym together.
// The billing period is left untouched.
func (r *repository) ChangePlan(ctx context.Context, gymID, subscriptionID int, planType string) (*Subscription, error) {
	var sub Subscription

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			UPDATE subscriptions
			SET plan_type = $1, updated_at = NOW()
			WHERE id = $2 AND gym_id = $3 AND status = 'active'
			RETURNING `+subscriptionColumns,
			planType, subscriptionID, gymID,
		).StructScan(&sub)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE gyms
			SET plan_type = $1, updated_at = NOW()
			WHERE id = $2
		`, planType, gymID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

func (r *repository) Cancel(ctx context.Context, gymID, subscriptionID int, at time.Time) (*Subscription, error) {
	var sub Subscription
	err := r.db.QueryRowxContext(ctx, `
		UPDATE subscriptions
		SET status = 'cancelled', cancelled_at = $1, updated_at = NOW()
		WHERE id = $2 AND gym_id = $3 AND status = 'active'
		RETURNING `+subscriptionColumns,
		at, subscriptionID, gymID,
	).StructScan(&sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]Subscription, error) {
	subs := []Subscription{}
	err := r.db.SelectContext(ctx, &subs, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE gym_id = $1
		ORDER BY created_at DESC
	`, gymID)
	return subs, err
}

func (r *repository) GetPaymentMethod(ctx context.Context, gymID int) (*PaymentMethod, error) {
	var pm PaymentMethod
	err := r.db.GetContext(ctx, &pm, `
		SELECT id, gym_id, last_four, card_type, expiry_month, expiry_year, created_at
		FROM payment_methods
		WHERE gym_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, gymID)
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

// ReplacePaymentMethod keeps a single card per gym.
func (r *repository) ReplacePaymentMethod(ctx context.Context, gymID int, in NewPaymentMethod) (*PaymentMethod, error) {
	var pm PaymentMethod

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM payment_methods WHERE gym_id = $1`, gymID); err != nil {
			return err
		}

		return tx.QueryRowxContext(ctx, `
			INSERT INTO payment_methods (gym_id, last_four, card_type, expiry_month, expiry_year)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, gym_id, last_four, card_type, expiry_month, expiry_year, created_at
		`, gymID, in.LastFour, in.CardType, in.ExpiryMonth, in.ExpiryYear).StructScan(&pm)
	})
	if err != nil {
		return nil, err
	}

	return &pm, nil
}

func (r *repository) Contact(ctx context.Context, gymID int) (*Contact, error) {
	var c Contact
	err := r.db.GetContext(ctx, &c, `
		SELECT g.name AS gym_name, u.email AS admin_email, u.full_name AS admin_name
		FROM gyms g
		JOIN users u ON u.gym_id = g.id AND u.role = 'admin' AND u.is_active
		WHERE g.id = $1
		ORDER BY u.id
		LIMIT 1
	`, gymID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
