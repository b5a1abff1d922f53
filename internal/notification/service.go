package notification

import (
	"context"

	"gymcore/internal/apperr"
)

var ErrNotificationNotFound = apperr.WithMessage(apperr.ErrNotFound, "Notification not found")

type Service interface {
	Notify(ctx context.Context, gymID int, title, message, kind string) error
	List(ctx context.Context, gymID int) ([]Notification, error)
	MarkRead(ctx context.Context, gymID, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, gymID int, title, message, kind string) error {
	switch kind {
	case TypeInfo, TypeSuccess, TypeWarning:
	default:
		kind = TypeInfo
	}

	_, err := s.repo.Create(ctx, Notification{
		GymID:   gymID,
		Title:   title,
		Message: message,
		Type:    kind,
	})
	return err
}

// List returns the newest unread notifications followed by a few recently
// read ones.
func (s *service) List(ctx context.Context, gymID int) ([]Notification, error) {
	unread, err := s.repo.ListByRead(ctx, gymID, false, unreadLimit)
	if err != nil {
		return nil, err
	}

	read, err := s.repo.ListByRead(ctx, gymID, true, readLimit)
	if err != nil {
		return nil, err
	}

	return append(unread, read...), nil
}

func (s *service) MarkRead(ctx context.Context, gymID, id int) error {
	ok, err := s.repo.MarkRead(ctx, gymID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}
