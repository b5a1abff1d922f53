package plan

import "context"

type Repository interface {
	Create(ctx context.Context, gymID int, req CreatePlanRequest) (*Plan, error)
	GetByID(ctx context.Context, gymID, id int) (*Plan, error)
	List(ctx context.Context, gymID int, includeInactive bool) ([]Plan, error)
	Update(ctx context.Context, gymID, id int, req UpdatePlanRequest) (*Plan, error)
	Delete(ctx context.Context, gymID, id int) (bool, error)
	ToggleStatus(ctx context.Context, gymID, id int) (*Plan, error)
}
