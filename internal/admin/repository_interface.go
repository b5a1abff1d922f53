package admin

import (
	"context"
	"time"

	"gymcore/internal/gym"
)

type Repository interface {
	PlatformStats(ctx context.Context, monthStart time.Time) (*PlatformStats, error)
	ListGyms(ctx context.Context, f GymFilter) ([]GymSummary, error)
	GetGym(ctx context.Context, id int) (*GymSummary, error)
	ListUsers(ctx context.Context, gymID int) ([]UserSummary, error)
	ToggleGym(ctx context.Context, id int) (*gym.Gym, error)
}
