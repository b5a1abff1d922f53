package gym

import (
	"context"

	"gymcore/internal/db"

	"github.com/jmoiron/sqlx"
)

const gymColumns = `id, name, email, phone, address, plan_type, is_active, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int) (*Gym, error) {
	var gym Gym
	err := r.db.GetContext(ctx, &gym, `SELECT `+gymColumns+` FROM gyms WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &gym, nil
}

func (r *repository) EmailTaken(ctx context.Context, email string, exceptID int) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM gyms WHERE email = $1 AND id <> $2)`,
		email, exceptID,
	)
}

func (r *repository) Update(ctx context.Context, id int, req UpdateGymRequest) (*Gym, error) {
	var gym Gym
	err := r.db.QueryRowxContext(ctx, `
		UPDATE gyms
		SET name = COALESCE($1, name),
		    email = COALESCE($2, email),
		    phone = COALESCE($3, phone),
		    address = COALESCE($4, address),
		    updated_at = NOW()
		WHERE id = $5
		RETURNING `+gymColumns,
		req.Name, req.Email, req.Phone, req.Address, id,
	).StructScan(&gym)
	if err != nil {
		return nil, err
	}
	return &gym, nil
}
