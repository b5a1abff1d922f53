package tenant

import "context"

type Store interface {
	FindUserByID(ctx context.Context, id int) (*UserRecord, error)
	GymStatus(ctx context.Context, gymID int) (*GymStatus, error)
	ExpireSubscription(ctx context.Context, gymID, subscriptionID int) error
}
