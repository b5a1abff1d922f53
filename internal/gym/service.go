package gym

import (
	"context"
	"database/sql"
	"errors"

	"gymcore/internal/apperr"
)

var (
	ErrGymNotFound = apperr.WithMessage(apperr.ErrNotFound, "Gym not found")
	ErrEmailTaken  = apperr.WithMessage(apperr.ErrConflict, "Email already registered")
)

type Service interface {
	Get(ctx context.Context, gymID int) (*Gym, error)
	Update(ctx context.Context, gymID int, req UpdateGymRequest) (*Gym, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Get(ctx context.Context, gymID int) (*Gym, error) {
	gym, err := s.repo.GetByID(ctx, gymID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}
	return gym, nil
}

func (s *service) Update(ctx context.Context, gymID int, req UpdateGymRequest) (*Gym, error) {
	if req.Email != nil {
		taken, err := s.repo.EmailTaken(ctx, *req.Email, gymID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	gym, err := s.repo.Update(ctx, gymID, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}
	return gym, nil
}
