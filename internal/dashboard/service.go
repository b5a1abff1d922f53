package dashboard

import (
	"context"
	"time"

	"gymcore/internal/apperr"
	"gymcore/internal/member"

	"github.com/shopspring/decimal"
)

type Service interface {
	Stats(ctx context.Context, gymID int) (*Stats, error)
	RecentActivity(ctx context.Context, gymID int) ([]member.Member, error)
	RevenueChart(ctx context.Context, gymID int) ([]RevenuePoint, error)
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

func loadFailed(err error) error {
	return apperr.Wrap(err, apperr.ErrInternal, "Failed to load dashboard data")
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func (s *service) Stats(ctx context.Context, gymID int) (*Stats, error) {
	start := monthStart(s.now())

	counts, err := s.repo.MemberCounts(ctx, gymID, start)
	if err != nil {
		return nil, loadFailed(err)
	}

	slices, err := s.repo.Distribution(ctx, gymID)
	if err != nil {
		return nil, loadFailed(err)
	}

	revenue, err := s.repo.RevenueByMonth(ctx, gymID, start)
	if err != nil {
		return nil, loadFailed(err)
	}

	stats := &Stats{
		TotalMembers:           counts.Total,
		ActiveMembers:          counts.Active,
		InactiveMembers:        counts.Inactive,
		SuspendedMembers:       counts.Suspended,
		NewMembersThisMonth:    counts.NewThisMonth,
		RevenueThisMonth:       decimal.Zero,
		MembershipDistribution: make(map[string]int, len(slices)),
	}
	for _, sl := range slices {
		stats.MembershipDistribution[sl.Label] = sl.Count
	}
	current := start.Format("2006-01")
	for _, row := range revenue {
		if row.Period == current {
			stats.RevenueThisMonth = row.Revenue
		}
	}

	return stats, nil
}

func (s *service) RecentActivity(ctx context.Context, gymID int) ([]member.Member, error) {
	members, err := s.repo.RecentMembers(ctx, gymID, recentLimit)
	if err != nil {
		return nil, loadFailed(err)
	}
	return members, nil
}

// RevenueChart returns the last six calendar months, oldest first, including
// months without any revenue.
func (s *service) RevenueChart(ctx context.Context, gymID int) ([]RevenuePoint, error) {
	first := monthStart(s.now()).AddDate(0, -(chartMonths - 1), 0)

	rows, err := s.repo.RevenueByMonth(ctx, gymID, first)
	if err != nil {
		return nil, loadFailed(err)
	}

	byPeriod := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		byPeriod[row.Period] = row.Revenue
	}

	points := make([]RevenuePoint, 0, chartMonths)
	for i := 0; i < chartMonths; i++ {
		m := first.AddDate(0, i, 0)
		period := m.Format("2006-01")
		revenue, ok := byPeriod[period]
		if !ok {
			revenue = decimal.Zero
		}
		points = append(points, RevenuePoint{
			Month:   m.Format("Jan"),
			Period:  period,
			Revenue: revenue,
		})
	}

	return points, nil
}
