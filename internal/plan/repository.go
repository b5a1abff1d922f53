package plan

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const planColumns = `id, gym_id, name, description, price, duration_days, benefits, is_active, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, gymID int, req CreatePlanRequest) (*Plan, error) {
	var p Plan
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO membership_plans (gym_id, name, description, price, duration_days, benefits, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING `+planColumns,
		gymID, req.Name, req.Description, req.Price, req.DurationDays, req.Benefits,
	).StructScan(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByID(ctx context.Context, gymID, id int) (*Plan, error) {
	var p Plan
	err := r.db.GetContext(ctx, &p,
		`SELECT `+planColumns+` FROM membership_plans WHERE id = $1 AND gym_id = $2`,
		id, gymID,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, gymID int, includeInactive bool) ([]Plan, error) {
	plans := []Plan{}
	err := r.db.SelectContext(ctx, &plans, `
		SELECT `+planColumns+`
		FROM membership_plans
		WHERE gym_id = $1 AND ($2 OR is_active)
		ORDER BY price, id
	`, gymID, includeInactive)
	return plans, err
}

func (r *repository) Update(ctx context.Context, gymID, id int, req UpdatePlanRequest) (*Plan, error) {
	var p Plan
	err := r.db.QueryRowxContext(ctx, `
		UPDATE membership_plans
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    price = COALESCE($3, price),
		    duration_days = COALESCE($4, duration_days),
		    benefits = COALESCE($5, benefits),
		    is_active = COALESCE($6, is_active),
		    updated_at = NOW()
		WHERE id = $7 AND gym_id = $8
		RETURNING `+planColumns,
		req.Name, req.Description, req.Price, req.DurationDays, req.Benefits, req.IsActive, id, gymID,
	).StructScan(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Delete(ctx context.Context, gymID, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM membership_plans WHERE id = $1 AND gym_id = $2`,
		id, gymID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *repository) ToggleStatus(ctx context.Context, gymID, id int) (*Plan, error) {
	var p Plan
	err := r.db.QueryRowxContext(ctx, `
		UPDATE membership_plans
		SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1 AND gym_id = $2
		RETURNING `+planColumns,
		id, gymID,
	).StructScan(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
