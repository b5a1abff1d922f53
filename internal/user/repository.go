package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymcore/internal/db"
	"gymcore/internal/gym"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, gym_id, email, hashed_password, full_name, role, is_active, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateTenant inserts an inactive gym and its first admin in one transaction.
func (r *repository) CreateTenant(ctx context.Context, g NewGym, admin NewUser) (*gym.Gym, *User, error) {
	var (
		created gym.Gym
		user    User
	)

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO gyms (name, email, phone, address, plan_type, is_active)
			VALUES ($1, $2, $3, $4, $5, FALSE)
			RETURNING id, name, email, phone, address, plan_type, is_active, created_at, updated_at
		`, g.Name, g.Email, g.Phone, g.Address, g.PlanType).StructScan(&created)
		if err != nil {
			return err
		}

		return tx.QueryRowxContext(ctx, `
			INSERT INTO users (gym_id, email, hashed_password, full_name, role, is_active)
			VALUES ($1, $2, $3, $4, $5, TRUE)
			RETURNING `+userColumns,
			created.ID, admin.Email, admin.PasswordHash, admin.FullName, admin.Role,
		).StructScan(&user)
	})
	if err != nil {
		return nil, nil, err
	}

	return &created, &user, nil
}

func (r *repository) Create(ctx context.Context, u NewUser) (*User, error) {
	var user User
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO users (gym_id, email, hashed_password, full_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING `+userColumns,
		u.GymID, u.Email, u.PasswordHash, u.FullName, u.Role,
	).StructScan(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	var user User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *repository) SuperadminExists(ctx context.Context) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM users WHERE role = 'superadmin')`)
}

func (r *repository) GymEmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM gyms WHERE email = $1)`, email)
}

func (r *repository) UpdateProfile(ctx context.Context, id int, req UpdateMeRequest) (*User, error) {
	var user User
	err := r.db.QueryRowxContext(ctx, `
		UPDATE users
		SET full_name = COALESCE($1, full_name),
		    email = COALESCE($2, email)
		WHERE id = $3
		RETURNING `+userColumns,
		req.FullName, req.Email, id,
	).StructScan(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET hashed_password = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]User, error) {
	users := []User{}
	err := r.db.SelectContext(ctx, &users, `
		SELECT `+userColumns+`
		FROM users
		WHERE gym_id = $1
		ORDER BY created_at ASC
	`, gymID)
	return users, err
}

func (r *repository) DeleteFromGym(ctx context.Context, gymID, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1 AND gym_id = $2`, id, gymID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// SaveResetToken replaces any unused token of the user with a new one.
func (r *repository) SaveResetToken(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error {
	return db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
			DELETE FROM password_reset_tokens
			WHERE user_id = $1 AND used_at IS NULL
		`, userID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO password_reset_tokens (user_id, token_hash, expires_at)
			VALUES ($1, $2, $3)
		`, userID, tokenHash, expiresAt)
		return err
	})
}

// ConsumeResetToken sets the new password and marks the token used. It
// reports false when the token is unknown, used or expired.
func (r *repository) ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string, now time.Time) (bool, error) {
	consumed := false

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var token struct {
			ID     int `db:"id"`
			UserID int `db:"user_id"`
		}
		err := tx.GetContext(ctx, &token, `
			SELECT id, user_id
			FROM password_reset_tokens
			WHERE token_hash = $1 AND used_at IS NULL AND expires_at > $2
			FOR UPDATE
		`, tokenHash, now)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `UPDATE users SET hashed_password = $1 WHERE id = $2`, passwordHash, token.UserID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `UPDATE password_reset_tokens SET used_at = $1 WHERE id = $2`, now, token.ID); err != nil {
			return err
		}

		consumed = true
		return nil
	})

	return consumed, err
}
