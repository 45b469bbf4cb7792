package repository

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Edit rejects malformed change sets before touching the database, so
// these paths are testable without a connection.
func TestStoreEditRejectsBadChanges(t *testing.T) {
	store := NewStore(nil, zap.NewNop(), "hotels", hotelColumns, scanHotel, hotelInsertArgs, identity[entity.Hotel])

	t.Run("empty change set", func(t *testing.T) {
		_, err := store.Edit(context.Background(), map[string]any{}, Filters{Eq("id", int64(1))}, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no columns supplied")
	})

	t.Run("full update with missing column", func(t *testing.T) {
		changes := map[string]any{
			"title":    "Grand Palace",
			"location": "Jakarta",
			// stars, check_in, check_out omitted
		}
		_, err := store.Edit(context.Background(), changes, Filters{Eq("id", int64(1))}, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid full update of hotels")
	})

	t.Run("partial update skips the completeness check", func(t *testing.T) {
		// Reaches mustMatchOne, which needs a live connection; the nil
		// Querier makes that panic, proving validation passed.
		assert.Panics(t, func() {
			_, _ = store.Edit(context.Background(), map[string]any{"title": "x"}, Filters{Eq("id", int64(1))}, true)
		})
	})
}

func TestStoreWithTx(t *testing.T) {
	store := NewStore(nil, zap.NewNop(), "hotels", hotelColumns, scanHotel, hotelInsertArgs, identity[entity.Hotel])

	tx := struct{ pgx.Tx }{}
	clone := store.WithTx(tx)

	assert.Equal(t, tx, clone.db)
	assert.Nil(t, store.db, "original store keeps its own handle")
	assert.Equal(t, store.table, clone.table)
}

// scriptedQuerier answers every COUNT query with a fixed number and
// records Exec statements, enough to drive the exactly-one-match
// contract without a database.
type scriptedQuerier struct {
	count    int64
	execSQL  string
	execArgs []any
}

type countRow struct{ n int64 }

func (r countRow) Scan(dest ...any) error {
	*(dest[0].(*int64)) = r.n
	return nil
}

func (q *scriptedQuerier) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return countRow{n: q.count}
}

func (q *scriptedQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not scripted")
}

func (q *scriptedQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.execSQL = sql
	q.execArgs = args
	return pgconn.CommandTag{}, nil
}

func TestStoreExactlyOneMatchContract(t *testing.T) {
	newStoreWith := func(q *scriptedQuerier) *Store[entity.Hotel, entity.Hotel] {
		return NewStore(q, zap.NewNop(), "hotels", hotelColumns, scanHotel, hotelInsertArgs, identity[entity.Hotel])
	}

	t.Run("delete with zero matches is not found", func(t *testing.T) {
		q := &scriptedQuerier{count: 0}
		err := newStoreWith(q).Delete(context.Background(), Filters{Eq("id", int64(7))})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, q.execSQL, "nothing may be deleted")
	})

	t.Run("delete with several matches is a conflict", func(t *testing.T) {
		q := &scriptedQuerier{count: 3}
		err := newStoreWith(q).Delete(context.Background(), Filters{Eq("location", "Bali")})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConflict)
		assert.Empty(t, q.execSQL, "nothing may be deleted")
	})

	t.Run("delete with one match runs", func(t *testing.T) {
		q := &scriptedQuerier{count: 1}
		err := newStoreWith(q).Delete(context.Background(), Filters{Eq("id", int64(7))})
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM hotels WHERE id = $1", q.execSQL)
		assert.Equal(t, []any{int64(7)}, q.execArgs)
	})

	t.Run("edit shares the contract", func(t *testing.T) {
		q := &scriptedQuerier{count: 0}
		_, err := newStoreWith(q).Edit(context.Background(), map[string]any{"title": "x"}, Filters{Eq("id", int64(7))}, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)

		q = &scriptedQuerier{count: 2}
		_, err = newStoreWith(q).Edit(context.Background(), map[string]any{"title": "x"}, Filters{Eq("id", int64(7))}, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestStoreEditRejectsUnknownColumns(t *testing.T) {
	store := NewStore(nil, zap.NewNop(), "hotels", hotelColumns, scanHotel, hotelInsertArgs, identity[entity.Hotel])

	// Nothing in the change set names a real column; the store must
	// refuse instead of emitting an UPDATE with an empty SET clause.
	_, err := store.Edit(context.Background(), map[string]any{"bogus": 1}, Filters{Eq("id", int64(1))}, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no known columns")
}
