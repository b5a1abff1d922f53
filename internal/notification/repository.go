package notification

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n Notification) (*Notification, error) {
	var created Notification
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO notifications (gym_id, title, message, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, gym_id, title, message, type, is_read, created_at
	`, n.GymID, n.Title, n.Message, n.Type).StructScan(&created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) ListByRead(ctx context.Context, gymID int, isRead bool, limit int) ([]Notification, error) {
	list := []Notification{}
	err := r.db.SelectContext(ctx, &list, `
		SELECT id, gym_id, title, message, type, is_read, created_at
		FROM notifications
		WHERE gym_id = $1 AND is_read = $2
		ORDER BY created_at DESC
		LIMIT $3
	`, gymID, isRead, limit)
	return list, err
}

func (r *repository) MarkRead(ctx context.Context, gymID, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND gym_id = $2
	`, id, gymID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
