package dashboard

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestMemberCounts(t *testing.T) {
	repo, mock := setupRepo(t)
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`COUNT(*) FILTER (WHERE created_at >= $2) AS new_this_month`)).
		WithArgs(7, start).
		WillReturnRows(sqlmock.NewRows([]string{"total", "active", "inactive", "suspended", "new_this_month"}).
			AddRow(40, 31, 6, 3, 5))

	counts, err := repo.MemberCounts(context.Background(), 7, start)
	require.NoError(t, err)
	assert.Equal(t, MemberCounts{Total: 40, Active: 31, Inactive: 6, Suspended: 3, NewThisMonth: 5}, *counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDistribution(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(p.name, m.membership_type, 'none') AS label`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"label", "count"}).
			AddRow("Monthly", 20).
			AddRow("pro", 4))

	slices, err := repo.Distribution(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []Slice{{"Monthly", 20}, {"pro", 4}}, slices)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueByMonth(t *testing.T) {
	repo, mock := setupRepo(t)
	from := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT to_char(date_trunc('month', m.start_date), 'YYYY-MM') AS period`)).
		WithArgs(7, from).
		WillReturnRows(sqlmock.NewRows([]string{"period", "revenue"}).
			AddRow("2025-12", "105.00").
			AddRow("2026-03", "35.50"))

	rows, err := repo.RevenueByMonth(context.Background(), 7, from)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-03", rows[1].Period)
	assert.Equal(t, "35.5", rows[1].Revenue.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentMembers(t *testing.T) {
	repo, mock := setupRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC LIMIT $2`)).
		WithArgs(7, 10).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "gym_id", "plan_id", "full_name", "email", "phone", "dni", "membership_type",
			"membership_status", "start_date", "end_date", "created_at", "updated_at",
		}).AddRow(9, 7, nil, "Ana Torres", nil, nil, "30111222", nil, "active", now, now, now, now))

	members, err := repo.RecentMembers(context.Background(), 7, 10)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Ana Torres", members[0].FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
