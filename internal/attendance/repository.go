package attendance

import (
	"context"
	"time"

	"gymcore/internal/db"

	"github.com/jmoiron/sqlx"
)

const recordSelect = `
	SELECT a.id, a.member_id, m.full_name AS member_name, m.dni AS member_dni, a.check_in_time
	FROM attendances a
	JOIN members m ON m.id = a.member_id
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindMemberByDNI(ctx context.Context, gymID int, dni string) (*MemberCard, error) {
	var card MemberCard
	err := r.db.GetContext(ctx, &card, `
		SELECT id, full_name, dni, membership_status, end_date
		FROM members
		WHERE gym_id = $1 AND dni = $2
	`, gymID, dni)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *repository) MemberExists(ctx context.Context, gymID, memberID int) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM members WHERE id = $1 AND gym_id = $2)`,
		memberID, gymID,
	)
}

func (r *repository) Create(ctx context.Context, gymID, memberID int, at time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.GetContext(ctx, &a, `
		INSERT INTO attendances (gym_id, member_id, check_in_time)
		VALUES ($1, $2, $3)
		RETURNING id, gym_id, member_id, check_in_time, created_at
	`, gymID, memberID, at)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListBetween(ctx context.Context, gymID int, from, to time.Time) ([]Record, error) {
	records := []Record{}
	err := r.db.SelectContext(ctx, &records, recordSelect+`
		WHERE a.gym_id = $1 AND a.check_in_time >= $2 AND a.check_in_time <= $3
		ORDER BY a.check_in_time DESC
	`, gymID, from, to)
	return records, err
}

func (r *repository) ListByMember(ctx context.Context, gymID, memberID, limit int) ([]Record, error) {
	records := []Record{}
	err := r.db.SelectContext(ctx, &records, recordSelect+`
		WHERE a.gym_id = $1 AND a.member_id = $2
		ORDER BY a.check_in_time DESC
		LIMIT $3
	`, gymID, memberID, limit)
	return records, err
}

func (r *repository) CountSince(ctx context.Context, gymID int, today, week, month time.Time) (*Stats, error) {
	var stats Stats
	err := r.db.GetContext(ctx, &stats, `
		SELECT
			COUNT(*) FILTER (WHERE check_in_time >= $2) AS today_count,
			COUNT(*) FILTER (WHERE check_in_time >= $3) AS week_count,
			COUNT(*) FILTER (WHERE check_in_time >= $4) AS month_count
		FROM attendances
		WHERE gym_id = $1
	`, gymID, today, week, month)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
