package user

import (
	"context"
	"time"

	"gymcore/internal/gym"
)

type Repository interface {
	CreateTenant(ctx context.Context, g NewGym, admin NewUser) (*gym.Gym, *User, error)
	Create(ctx context.Context, u NewUser) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	SuperadminExists(ctx context.Context) (bool, error)
	GymEmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id int, req UpdateMeRequest) (*User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	ListByGym(ctx context.Context, gymID int) ([]User, error)
	DeleteFromGym(ctx context.Context, gymID, id int) (bool, error)
	SaveResetToken(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error
	ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string, now time.Time) (bool, error)
}
