package tenant

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

func setupStoreMock(t *testing.T) (Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(sqlx.NewDb(db, "sqlmock")), mock
}

func TestStore_FindUserByID(t *testing.T) {
	store, mock := setupStoreMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, full_name, gym_id, role, is_active FROM users WHERE id = $1`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "gym_id", "role", "is_active"}).
			AddRow(3, "owner@ironhouse.gym", "Ana", 7, "admin", true))

	u, err := store.FindUserByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, u.ID)
	require.NotNil(t, u.GymID)
	assert.Equal(t, 7, *u.GymID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GymStatus(t *testing.T) {
	store, mock := setupStoreMock(t)
	end := time.Now().Add(24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT g.id AS gym_id, g.is_active`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"gym_id", "is_active", "subscription_id", "subscription_status", "end_date"}).
			AddRow(7, true, 11, "cancelled", end))

	st, err := store.GymStatus(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, st.IsActive)
	assert.Equal(t, 11, *st.SubscriptionID)
	assert.Equal(t, "cancelled", *st.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GymStatusWithoutSubscription(t *testing.T) {
	store, mock := setupStoreMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT g.id AS gym_id, g.is_active`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"gym_id", "is_active", "subscription_id", "subscription_status", "end_date"}).
			AddRow(7, false, nil, nil, nil))

	st, err := store.GymStatus(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, st.IsActive)
	assert.Nil(t, st.SubscriptionID)
	assert.Nil(t, st.EndDate)
}

func TestStore_ExpireSubscription(t *testing.T) {
	store, mock := setupStoreMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE subscriptions SET status = 'expired'`)).
		WithArgs(11, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE gyms SET is_active = FALSE`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.ExpireSubscription(context.Background(), 7, 11))
	assert.NoError(t, mock.ExpectationsWereMet())
}
