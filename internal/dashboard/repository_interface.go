package dashboard

import (
	"context"
	"time"

	"gymcore/internal/member"
)

type Repository interface {
	MemberCounts(ctx context.Context, gymID int, monthStart time.Time) (*MemberCounts, error)
	Distribution(ctx context.Context, gymID int) ([]Slice, error)
	RevenueByMonth(ctx context.Context, gymID int, from time.Time) ([]MonthRevenue, error)
	RecentMembers(ctx context.Context, gymID, limit int) ([]member.Member, error)
}
