package inventory

import (
	"context"
	"testing"
	"time"

	"craft-planner/core/database"
	"craft-planner/core/procurement"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	store := NewStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func TestStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, 100, 2, 5))
	require.NoError(t, store.Set(ctx, 100, 3, 1))
	require.NoError(t, store.Set(ctx, 200, 2, 9))

	inv, err := store.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, procurement.Inventory{2: 5, 3: 1}, inv)

	t.Run("Upsert replaces", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, 100, 2, 7))
		inv, err := store.Get(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, 7, inv.Have(2))
	})

	t.Run("Zero removes", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, 100, 3, 0))
		inv, err := store.Get(ctx, 100)
		require.NoError(t, err)
		assert.NotContains(t, inv, procurement.ItemID(3))
	})

	t.Run("Roots are independent", func(t *testing.T) {
		inv, err := store.Get(ctx, 200)
		require.NoError(t, err)
		assert.Equal(t, procurement.Inventory{2: 9}, inv)

		roots, err := store.Roots(ctx)
		require.NoError(t, err)
		assert.Equal(t, []procurement.ItemID{100, 200}, roots)
	})

	t.Run("Returned inventory is a copy", func(t *testing.T) {
		inv, err := store.Get(ctx, 200)
		require.NoError(t, err)
		inv.Take(2)

		again, err := store.Get(ctx, 200)
		require.NoError(t, err)
		assert.Equal(t, 9, again.Have(2))
	})
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Set(ctx, 100, 2, 5))
	require.NoError(t, store.Set(ctx, 200, 2, 5))

	require.NoError(t, store.Clear(ctx, 100))

	inv, err := store.Get(ctx, 100)
	require.NoError(t, err)
	assert.Empty(t, inv)

	inv, err = store.Get(ctx, 200)
	require.NoError(t, err)
	assert.Equal(t, 5, inv.Have(2))
}

func TestStore_Validation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	assert.ErrorIs(t, store.Set(ctx, 0, 2, 1), ErrInvalidID)
	assert.ErrorIs(t, store.Set(ctx, 1, -2, 1), ErrInvalidID)
	assert.ErrorIs(t, store.Set(ctx, 1, 2, -1), ErrNegativeQuantity)
	_, err := store.Get(ctx, -1)
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, store.Clear(ctx, 0), ErrInvalidID)
}

func TestStore_Unavailable(t *testing.T) {
	store := NewStore(nil)
	assert.False(t, store.Available())
	assert.ErrorIs(t, store.Migrate(), ErrUnavailable)
	_, err := store.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, store.Set(context.Background(), 1, 2, 3), ErrUnavailable)
	assert.ErrorIs(t, store.Clear(context.Background(), 1), ErrUnavailable)
}

func TestStore_QueryError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT .* FROM `owned_materials`").WillReturnError(assert.AnError)

	store := NewStore(db)
	store.now = func() time.Time { return time.Unix(0, 0) }
	_, err = store.Get(context.Background(), 1)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
