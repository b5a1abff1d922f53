package member

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"gymcore/internal/apperr"
	"gymcore/internal/metrics"
	"gymcore/internal/plan"

	"github.com/lib/pq"
)

var (
	ErrMemberNotFound = apperr.WithMessage(apperr.ErrNotFound, "Member not found")
	ErrDNIExists      = apperr.WithMessage(apperr.ErrConflict, "A member with this DNI already exists")
	ErrPlanInactive   = apperr.WithMessage(apperr.ErrInvalidState, "Membership plan is not active")
)

const uniqueViolation = "23505"

type Service interface {
	List(ctx context.Context, gymID int, f ListFilter) ([]Member, error)
	Get(ctx context.Context, gymID, id int) (*Member, error)
	Create(ctx context.Context, gymID int, req CreateMemberRequest) (*Member, error)
	Update(ctx context.Context, gymID, id int, req UpdateMemberRequest) (*Member, error)
	Delete(ctx context.Context, gymID, id int) error
	Suspend(ctx context.Context, gymID, id int) (*Member, error)
	Activate(ctx context.Context, gymID, id int) (*Member, error)
}

type service struct {
	repo  Repository
	plans plan.Repository
	now   func() time.Time
}

func NewService(repo Repository, plans plan.Repository) Service {
	return &service{
		repo:  repo,
		plans: plans,
		now:   time.Now,
	}
}

func translate(m *Member, err error) (*Member, error) {
	if err == nil {
		return m, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return nil, ErrDNIExists
	}
	return nil, err
}

func (s *service) List(ctx context.Context, gymID int, f ListFilter) ([]Member, error) {
	if f.Status == "all" {
		f.Status = ""
	}
	f.Search = strings.TrimSpace(f.Search)
	return s.repo.List(ctx, gymID, f)
}

func (s *service) Get(ctx context.Context, gymID, id int) (*Member, error) {
	return translate(s.repo.GetByID(ctx, gymID, id))
}

// lookupPlan returns the gym's plan or a NotFound error when the id belongs
// to nobody or to another gym.
func (s *service) lookupPlan(ctx context.Context, gymID, planID int) (*plan.Plan, error) {
	p, err := s.plans.GetByID(ctx, gymID, planID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, plan.ErrPlanNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, gymID int, req CreateMemberRequest) (*Member, error) {
	days := defaultTermDays
	if req.PlanID != nil {
		p, err := s.lookupPlan(ctx, gymID, *req.PlanID)
		if err != nil {
			return nil, err
		}
		if !p.IsActive {
			return nil, ErrPlanInactive
		}
		days = p.DurationDays
	}

	taken, err := s.repo.DNIExists(ctx, gymID, req.DNI, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDNIExists
	}

	start := s.now()
	if req.StartDate != nil {
		start = *req.StartDate
	}

	m, err := translate(s.repo.Create(ctx, Member{
		GymID:            gymID,
		PlanID:           req.PlanID,
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		DNI:              req.DNI,
		MembershipType:   req.MembershipType,
		MembershipStatus: StatusActive,
		StartDate:        start,
		EndDate:          start.AddDate(0, 0, days),
	}))
	if err != nil {
		return nil, err
	}

	metrics.RecordMemberCreated()
	return m, nil
}

func (s *service) Update(ctx context.Context, gymID, id int, req UpdateMemberRequest) (*Member, error) {
	if req.PlanID != nil {
		if _, err := s.lookupPlan(ctx, gymID, *req.PlanID); err != nil {
			return nil, err
		}
	}

	if req.DNI != nil {
		taken, err := s.repo.DNIExists(ctx, gymID, *req.DNI, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDNIExists
		}
	}

	return translate(s.repo.Update(ctx, gymID, id, req))
}

func (s *service) Delete(ctx context.Context, gymID, id int) error {
	ok, err := s.repo.Delete(ctx, gymID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMemberNotFound
	}
	return nil
}

func (s *service) Suspend(ctx context.Context, gymID, id int) (*Member, error) {
	return translate(s.repo.SetStatus(ctx, gymID, id, StatusSuspended))
}

func (s *service) Activate(ctx context.Context, gymID, id int) (*Member, error) {
	return translate(s.repo.SetStatus(ctx, gymID, id, StatusActive))
}
