package member

import (
	"context"

	"gymcore/internal/db"

	"github.com/jmoiron/sqlx"
)

const memberColumns = `id, gym_id, plan_id, full_name, email, phone, dni, membership_type,
	membership_status, start_date, end_date, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m Member) (*Member, error) {
	var created Member
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO members (gym_id, plan_id, full_name, email, phone, dni, membership_type,
			membership_status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+memberColumns,
		m.GymID, m.PlanID, m.FullName, m.Email, m.Phone, m.DNI, m.MembershipType,
		m.MembershipStatus, m.StartDate, m.EndDate,
	).StructScan(&created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, gymID, id int) (*Member, error) {
	var m Member
	err := r.db.GetContext(ctx, &m,
		`SELECT `+memberColumns+` FROM members WHERE id = $1 AND gym_id = $2`,
		id, gymID,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) List(ctx context.Context, gymID int, f ListFilter) ([]Member, error) {
	members := []Member{}
	err := r.db.SelectContext(ctx, &members, `
		SELECT `+memberColumns+`
		FROM members
		WHERE gym_id = $1
		  AND ($2 = '' OR membership_status = $2)
		  AND ($3 = '' OR full_name ILIKE '%' || $3 || '%')
		ORDER BY id
		LIMIT $4 OFFSET $5
	`, gymID, f.Status, f.Search, f.Limit, f.Skip)
	return members, err
}

func (r *repository) DNIExists(ctx context.Context, gymID int, dni string, exceptID int) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM members WHERE gym_id = $1 AND dni = $2 AND id <> $3)`,
		gymID, dni, exceptID,
	)
}

func (r *repository) Update(ctx context.Context, gymID, id int, req UpdateMemberRequest) (*Member, error) {
	var m Member
	err := r.db.QueryRowxContext(ctx, `
		UPDATE members
		SET full_name = COALESCE($1, full_name),
		    email = COALESCE($2, email),
		    phone = COALESCE($3, phone),
		    dni = COALESCE($4, dni),
		    membership_type = COALESCE($5, membership_type),
		    plan_id = COALESCE($6, plan_id),
		    membership_status = COALESCE($7, membership_status),
		    updated_at = NOW()
		WHERE id = $8 AND gym_id = $9
		RETURNING `+memberColumns,
		req.FullName, req.Email, req.Phone, req.DNI, req.MembershipType,
		req.PlanID, req.MembershipStatus, id, gymID,
	).StructScan(&m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) SetStatus(ctx context.Context, gymID, id int, status string) (*Member, error) {
	var m Member
	err := r.db.QueryRowxContext(ctx, `
		UPDATE members
		SET membership_status = $1, updated_at = NOW()
		WHERE id = $2 AND gym_id = $3
		RETURNING `+memberColumns,
		status, id, gymID,
	).StructScan(&m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) Delete(ctx context.Context, gymID, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM members WHERE id = $1 AND gym_id = $2`,
		id, gymID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
