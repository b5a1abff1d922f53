package plan

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planRowColumns = []string{"id", "gym_id", "name", "description", "price", "duration_days", "benefits", "is_active", "created_at", "updated_at"}

func setupRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestCreate(t *testing.T) {
	repo, mock := setupRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO membership_plans (gym_id, name, description, price, duration_days, benefits, is_active)`)).
		WithArgs(7, "Monthly", nil, decimal.RequireFromString("35.50"), 30, nil).
		WillReturnRows(sqlmock.NewRows(planRowColumns).
			AddRow(1, 7, "Monthly", nil, "35.50", 30, nil, true, now, now))

	p, err := repo.Create(context.Background(), 7, CreatePlanRequest{
		Name:         "Monthly",
		Price:        decimal.RequireFromString("35.50"),
		DurationDays: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, "35.5", p.Price.String())
	assert.True(t, p.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDScopedToGym(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM membership_plans WHERE id = $1 AND gym_id = $2`)).
		WithArgs(3, 8).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 8, 3)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	repo, mock := setupRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE gym_id = $1 AND ($2 OR is_active)`)).
		WithArgs(7, false).
		WillReturnRows(sqlmock.NewRows(planRowColumns).
			AddRow(1, 7, "Day pass", nil, "5.00", 1, nil, true, now, now).
			AddRow(2, 7, "Monthly", "All areas", "35.00", 30, "[\"sauna\"]", true, now, now))

	plans, err := repo.List(context.Background(), 7, false)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	require.NotNil(t, plans[1].Description)
	assert.Equal(t, "All areas", *plans[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock := setupRepo(t)
	now := time.Now()
	name := "Monthly plus"

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE membership_plans SET name = COALESCE($1, name)`)).
		WithArgs(name, nil, nil, nil, nil, nil, 2, 7).
		WillReturnRows(sqlmock.NewRows(planRowColumns).
			AddRow(2, 7, name, nil, "35.00", 30, nil, true, now, now))

	p, err := repo.Update(context.Background(), 7, 2, UpdatePlanRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, p.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM membership_plans WHERE id = $1 AND gym_id = $2`)).
		WithArgs(2, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM membership_plans`)).
		WithArgs(2, 8).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), 7, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(context.Background(), 8, 2)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleStatus(t *testing.T) {
	repo, mock := setupRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SET is_active = NOT is_active`)).
		WithArgs(2, 7).
		WillReturnRows(sqlmock.NewRows(planRowColumns).
			AddRow(2, 7, "Monthly", nil, "35.00", 30, nil, false, now, now))

	p, err := repo.ToggleStatus(context.Background(), 7, 2)
	require.NoError(t, err)
	assert.False(t, p.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
