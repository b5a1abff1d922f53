package admin

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymcore/internal/apperr"
	"gymcore/internal/logger"
	"gymcore/internal/metrics"
)

var ErrGymNotFound = apperr.WithMessage(apperr.ErrNotFound, "Gym not found")

type Service interface {
	Stats(ctx context.Context) (*PlatformStats, error)
	ListGyms(ctx context.Context, f GymFilter) ([]GymSummary, error)
	GetGym(ctx context.Context, id int) (*GymDetail, error)
	ToggleGym(ctx context.Context, actorID, id int) (*ToggleResponse, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *service) Stats(ctx context.Context) (*PlatformStats, error) {
	now := s.now()
	stats, err := s.repo.PlatformStats(ctx, time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
	if err != nil {
		return nil, err
	}

	stats.InactiveGyms = stats.TotalGyms - stats.ActiveGyms
	metrics.ActiveGyms.Set(float64(stats.ActiveGyms))
	return stats, nil
}

func (s *service) ListGyms(ctx context.Context, f GymFilter) ([]GymSummary, error) {
	if f.Status != StatusFilterActive && f.Status != StatusFilterInactive {
		f.Status = ""
	}

	gyms, err := s.repo.ListGyms(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range gyms {
		gyms[i].Subscription = gyms[i].summary()
	}
	return gyms, nil
}

func (s *service) GetGym(ctx context.Context, id int) (*GymDetail, error) {
	g, err := s.repo.GetGym(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	users, err := s.repo.ListUsers(ctx, id)
	if err != nil {
		return nil, err
	}

	return &GymDetail{
		Gym: g.Gym,
		Stats: GymStats{
			TotalMembers:  g.MemberCount,
			ActiveMembers: g.ActiveMemberCount,
			UserCount:     len(users),
		},
		Users:        users,
		Subscription: g.summary(),
	}, nil
}

func (s *service) ToggleGym(ctx context.Context, actorID, id int) (*ToggleResponse, error) {
	g, err := s.repo.ToggleGym(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	message := "Gym deactivated"
	action := "admin_deactivate"
	if g.IsActive {
		message = "Gym activated"
		action = "admin_activate"
	}
	metrics.RecordSubscriptionChange(action)
	logger.Info("gym status changed by platform admin", "gym_id", g.ID, "is_active", g.IsActive, "actor_id", actorID)

	return &ToggleResponse{
		ID:       g.ID,
		Name:     g.Name,
		IsActive: g.IsActive,
		Message:  message,
	}, nil
}
