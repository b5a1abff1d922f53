package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n Notification) (*Notification, error)
	ListByRead(ctx context.Context, gymID int, isRead bool, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, gymID, id int) (bool, error)
}
