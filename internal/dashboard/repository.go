package dashboard

import (
	"context"
	"time"

	"gymcore/internal/member"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) MemberCounts(ctx context.Context, gymID int, monthStart time.Time) (*MemberCounts, error) {
	var counts MemberCounts
	err := r.db.GetContext(ctx, &counts, `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE membership_status = 'active') AS active,
			COUNT(*) FILTER (WHERE membership_status = 'inactive') AS inactive,
			COUNT(*) FILTER (WHERE membership_status = 'suspended') AS suspended,
			COUNT(*) FILTER (WHERE created_at >= $2) AS new_this_month
		FROM members
		WHERE gym_id = $1
	`, gymID, monthStart)
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

// Distribution groups members by plan name, falling back to the legacy
// membership_type label for members without a plan.
func (r *repository) Distribution(ctx context.Context, gymID int) ([]Slice, error) {
	slices := []Slice{}
	err := r.db.SelectContext(ctx, &slices, `
		SELECT COALESCE(p.name, m.membership_type, 'none') AS label, COUNT(*) AS count
		FROM members m
		LEFT JOIN membership_plans p ON p.id = m.plan_id AND p.gym_id = m.gym_id
		WHERE m.gym_id = $1
		GROUP BY 1
		ORDER BY 2 DESC
	`, gymID)
	return slices, err
}

// RevenueByMonth sums the plan price of every member whose term started in
// each month since from. Months without sales are absent.
func (r *repository) RevenueByMonth(ctx context.Context, gymID int, from time.Time) ([]MonthRevenue, error) {
	rows := []MonthRevenue{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT to_char(date_trunc('month', m.start_date), 'YYYY-MM') AS period,
		       COALESCE(SUM(p.price), 0) AS revenue
		FROM members m
		JOIN membership_plans p ON p.id = m.plan_id AND p.gym_id = m.gym_id
		WHERE m.gym_id = $1 AND m.start_date >= $2
		GROUP BY 1
		ORDER BY 1
	`, gymID, from)
	return rows, err
}

func (r *repository) RecentMembers(ctx context.Context, gymID, limit int) ([]member.Member, error) {
	members := []member.Member{}
	err := r.db.SelectContext(ctx, &members, `
		SELECT id, gym_id, plan_id, full_name, email, phone, dni, membership_type,
		       membership_status, start_date, end_date, created_at, updated_at
		FROM members
		WHERE gym_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, gymID, limit)
	return members, err
}
