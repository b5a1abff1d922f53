package admin

import (
	"context"
	"time"

	"gymcore/internal/gym"

	"github.com/jmoiron/sqlx"
)

const gymSummarySelect = `
	SELECT g.id, g.name, g.email, g.phone, g.address, g.plan_type, g.is_active, g.created_at, g.updated_at,
	       (SELECT COUNT(*) FROM members m WHERE m.gym_id = g.id) AS member_count,
	       (SELECT COUNT(*) FROM members m WHERE m.gym_id = g.id AND m.membership_status = 'active') AS active_member_count,
	       s.status AS sub_status, s.plan_type AS sub_plan_type, s.amount AS sub_amount,
	       s.start_date AS sub_start_date, s.end_date AS sub_end_date
	FROM gyms g
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) PlatformStats(ctx context.Context, monthStart time.Time) (*PlatformStats, error) {
	var stats PlatformStats
	err := r.db.GetContext(ctx, &stats, `
		SELECT
			(SELECT COUNT(*) FROM gyms) AS total_gyms,
			(SELECT COUNT(*) FROM gyms WHERE is_active) AS active_gyms,
			(SELECT COUNT(*) FROM gyms WHERE created_at >= $1) AS new_gyms_this_month,
			(SELECT COUNT(*) FROM members) AS total_members,
			(SELECT COUNT(*) FROM members WHERE membership_status = 'active') AS active_members,
			(SELECT COALESCE(SUM(amount), 0) FROM subscriptions WHERE status = 'active') AS total_revenue
	`, monthStart)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListGyms joins each gym with its current active subscription, if any.
func (r *repository) ListGyms(ctx context.Context, f GymFilter) ([]GymSummary, error) {
	gyms := []GymSummary{}
	err := r.db.SelectContext(ctx, &gyms, gymSummarySelect+`
		LEFT JOIN LATERAL (
			SELECT status, plan_type, amount, start_date, end_date
			FROM subscriptions
			WHERE gym_id = g.id AND status = 'active'
			ORDER BY end_date DESC
			LIMIT 1
		) s ON TRUE
		WHERE ($1 = '' OR g.is_active = ($1 = 'active'))
		  AND ($2 = '' OR g.name ILIKE '%' || $2 || '%' OR g.email ILIKE '%' || $2 || '%')
		ORDER BY g.id
		LIMIT $3 OFFSET $4
	`, f.Status, f.Search, f.Limit, f.Skip)
	return gyms, err
}

// GetGym joins the gym with its most recent subscription regardless of status.
func (r *repository) GetGym(ctx context.Context, id int) (*GymSummary, error) {
	var g GymSummary
	err := r.db.GetContext(ctx, &g, gymSummarySelect+`
		LEFT JOIN LATERAL (
			SELECT status, plan_type, amount, start_date, end_date
			FROM subscriptions
			WHERE gym_id = g.id
			ORDER BY created_at DESC
			LIMIT 1
		) s ON TRUE
		WHERE g.id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repository) ListUsers(ctx context.Context, gymID int) ([]UserSummary, error) {
	users := []UserSummary{}
	err := r.db.SelectContext(ctx, &users, `
		SELECT id, email, full_name, role, is_active
		FROM users
		WHERE gym_id = $1
		ORDER BY id
	`, gymID)
	return users, err
}

func (r *repository) ToggleGym(ctx context.Context, id int) (*gym.Gym, error) {
	var g gym.Gym
	err := r.db.QueryRowxContext(ctx, `
		UPDATE gyms
		SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, email, phone, address, plan_type, is_active, created_at, updated_at
	`, id).StructScan(&g)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
