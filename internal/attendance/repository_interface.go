package attendance

import (
	"context"
	"time"
)

type Repository interface {
	FindMemberByDNI(ctx context.Context, gymID int, dni string) (*MemberCard, error)
	MemberExists(ctx context.Context, gymID, memberID int) (bool, error)
	Create(ctx context.Context, gymID, memberID int, at time.Time) (*Attendance, error)
	ListBetween(ctx context.Context, gymID int, from, to time.Time) ([]Record, error)
	ListByMember(ctx context.Context, gymID, memberID, limit int) ([]Record, error)
	CountSince(ctx context.Context, gymID int, today, week, month time.Time) (*Stats, error)
}
