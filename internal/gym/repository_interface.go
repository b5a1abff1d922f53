package gym

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int) (*Gym, error)
	EmailTaken(ctx context.Context, email string, exceptID int) (bool, error)
	Update(ctx context.Context, id int, req UpdateGymRequest) (*Gym, error)
}
