package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gymcore/internal/apperr"
	"gymcore/internal/logger"
	"gymcore/internal/member"
	"gymcore/internal/metrics"
)

var ErrMemberNotFound = apperr.WithMessage(apperr.ErrNotFound, "Member not found")

type Service interface {
	CheckIn(ctx context.Context, gymID int, dni string) (*Record, error)
	Today(ctx context.Context, gymID int) ([]Record, error)
	Range(ctx context.Context, gymID, days int) ([]Record, error)
	MemberHistory(ctx context.Context, gymID, memberID, limit int) ([]Record, error)
	Stats(ctx context.Context, gymID int) (*Stats, error)
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

// CheckIn admits the member holding dni. A member is admitted only while the
// status is active and the paid term has not ended, whichever flag is stale.
func (s *service) CheckIn(ctx context.Context, gymID int, dni string) (*Record, error) {
	card, err := s.repo.FindMemberByDNI(ctx, gymID, dni)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			metrics.RecordCheckIn("not_found")
			return nil, apperr.WithMessage(apperr.ErrNotFound, fmt.Sprintf("No member found with DNI %s", dni))
		}
		return nil, err
	}

	now := s.now()
	if card.MembershipStatus != member.StatusActive {
		metrics.RecordCheckIn("inactive")
		return nil, apperr.WithMessage(apperr.ErrInvalidState,
			fmt.Sprintf("Member %s does not have an active membership", card.FullName))
	}
	if card.EndDate.Before(now) {
		metrics.RecordCheckIn("expired")
		return nil, apperr.WithMessage(apperr.ErrInvalidState,
			fmt.Sprintf("Membership of %s has expired", card.FullName))
	}

	a, err := s.repo.Create(ctx, gymID, card.ID, now)
	if err != nil {
		return nil, err
	}

	metrics.RecordCheckIn("accepted")
	logger.Debug("member checked in", "gym_id", gymID, "member_id", card.ID)

	return &Record{
		ID:          a.ID,
		MemberID:    card.ID,
		MemberName:  card.FullName,
		MemberDNI:   card.DNI,
		CheckInTime: a.CheckInTime,
	}, nil
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (s *service) Today(ctx context.Context, gymID int) ([]Record, error) {
	now := s.now()
	return s.repo.ListBetween(ctx, gymID, midnight(now), now)
}

func (s *service) Range(ctx context.Context, gymID, days int) ([]Record, error) {
	if days <= 0 {
		days = defaultRangeDays
	}
	now := s.now()
	return s.repo.ListBetween(ctx, gymID, now.AddDate(0, 0, -days), now)
}

func (s *service) MemberHistory(ctx context.Context, gymID, memberID, limit int) ([]Record, error) {
	exists, err := s.repo.MemberExists(ctx, gymID, memberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.repo.ListByMember(ctx, gymID, memberID, limit)
}

func (s *service) Stats(ctx context.Context, gymID int) (*Stats, error) {
	now := s.now()
	return s.repo.CountSince(ctx, gymID, midnight(now), now.AddDate(0, 0, -7), now.AddDate(0, 0, -30))
}
