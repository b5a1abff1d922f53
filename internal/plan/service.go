package plan

import (
	"context"
	"database/sql"
	"errors"

	"gymcore/internal/apperr"
)

var (
	ErrPlanNotFound  = apperr.WithMessage(apperr.ErrNotFound, "Membership plan not found")
	ErrNegativePrice = apperr.WithMessage(apperr.ErrValidation, "Price must not be negative")
)

type Service interface {
	List(ctx context.Context, gymID int, includeInactive bool) ([]Plan, error)
	Get(ctx context.Context, gymID, id int) (*Plan, error)
	Create(ctx context.Context, gymID int, req CreatePlanRequest) (*Plan, error)
	Update(ctx context.Context, gymID, id int, req UpdatePlanRequest) (*Plan, error)
	Delete(ctx context.Context, gymID, id int) error
	ToggleStatus(ctx context.Context, gymID, id int) (*Plan, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func notFound(p *Plan, err error) (*Plan, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	return p, err
}

func (s *service) List(ctx context.Context, gymID int, includeInactive bool) ([]Plan, error) {
	return s.repo.List(ctx, gymID, includeInactive)
}

func (s *service) Get(ctx context.Context, gymID, id int) (*Plan, error) {
	return notFound(s.repo.GetByID(ctx, gymID, id))
}

func (s *service) Create(ctx context.Context, gymID int, req CreatePlanRequest) (*Plan, error) {
	if req.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	return s.repo.Create(ctx, gymID, req)
}

func (s *service) Update(ctx context.Context, gymID, id int, req UpdatePlanRequest) (*Plan, error) {
	if req.Price != nil && req.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	return notFound(s.repo.Update(ctx, gymID, id, req))
}

func (s *service) Delete(ctx context.Context, gymID, id int) error {
	ok, err := s.repo.Delete(ctx, gymID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPlanNotFound
	}
	return nil
}

func (s *service) ToggleStatus(ctx context.Context, gymID, id int) (*Plan, error) {
	return notFound(s.repo.ToggleStatus(ctx, gymID, id))
}
