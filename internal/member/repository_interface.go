package member

import "context"

type Repository interface {
	Create(ctx context.Context, m Member) (*Member, error)
	GetByID(ctx context.Context, gymID, id int) (*Member, error)
	List(ctx context.Context, gymID int, f ListFilter) ([]Member, error)
	DNIExists(ctx context.Context, gymID int, dni string, exceptID int) (bool, error)
	Update(ctx context.Context, gymID, id int, req UpdateMemberRequest) (*Member, error)
	SetStatus(ctx context.Context, gymID, id int, status string) (*Member, error)
	Delete(ctx context.Context, gymID, id int) (bool, error)
}
