package repository

import (
	"context"
	"fmt"
	"strings"

	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Store is the generic entity store. M is the persisted shape, S the
// externally visible one (they coincide for most entities; users hide
// the password hash). Every entity repository instantiates a Store
// instead of duplicating list/get/add/edit/delete SQL.
type Store[M any, S any] struct {
	db         database.Querier
	log        *zap.Logger
	table      string
	columns    []string // ordered, "id" first; scan and insertArgs follow this order
	scan       func(row pgx.Row) (*M, error)
	insertArgs func(m *M) []any // values for columns[1:], id is server-assigned
	public     func(m *M) *S
}

func NewStore[M any, S any](
	db database.Querier,
	log *zap.Logger,
	table string,
	columns []string,
	scan func(row pgx.Row) (*M, error),
	insertArgs func(m *M) []any,
	public func(m *M) *S,
) *Store[M, S] {
	return &Store[M, S]{
		db:         db,
		log:        log,
		table:      table,
		columns:    columns,
		scan:       scan,
		insertArgs: insertArgs,
		public:     public,
	}
}

// WithTx rebinds the store to a transaction handle. The caller owns the
// transaction lifecycle.
func (s *Store[M, S]) WithTx(tx pgx.Tx) *Store[M, S] {
	clone := *s
	clone.db = tx
	return &clone
}

// List returns all records matching the filters, ordered by id so
// pagination stays reproducible. limit <= 0 means no limit.
func (s *Store[M, S]) List(ctx context.Context, filters Filters, limit, offset int) ([]*S, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(s.columns, ", "), s.table)
	where, args := filters.whereClause(1)
	query += where + " ORDER BY id"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		s.log.Error("Failed to list records", zap.Error(err), zap.String("table", s.table))
		return nil, fmt.Errorf("list %s: %w", s.table, err)
	}
	defer rows.Close()

	var out []*S
	for rows.Next() {
		m, err := s.scan(rows)
		if err != nil {
			s.log.Error("Failed to scan row", zap.Error(err), zap.String("table", s.table))
			return nil, fmt.Errorf("scan %s row: %w", s.table, err)
		}
		out = append(out, s.public(m))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", s.table, err)
	}

	return out, nil
}

// GetOne returns the single record matching the filters, or (nil, nil)
// when nothing matches. More than one match is a conflict.
func (s *Store[M, S]) GetOne(ctx context.Context, filters Filters) (*S, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(s.columns, ", "), s.table)
	where, args := filters.whereClause(1)
	query += where + " ORDER BY id LIMIT 2"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		s.log.Error("Failed to get record", zap.Error(err), zap.String("table", s.table))
		return nil, fmt.Errorf("get %s: %w", s.table, err)
	}
	defer rows.Close()

	var found []*M
	for rows.Next() {
		m, err := s.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", s.table, err)
		}
		found = append(found, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", s.table, err)
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return s.public(found[0]), nil
	default:
		return nil, fmt.Errorf("multiple %s records match: %w", s.table, ErrConflict)
	}
}

// Add inserts one record and returns the persisted, server-assigned
// external shape. A uniqueness violation surfaces as ErrConflict with
// the constraint name preserved.
func (s *Store[M, S]) Add(ctx context.Context, m *M) (*S, error) {
	cols := s.columns[1:]
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		s.table,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(s.columns, ", "),
	)

	created, err := s.scan(s.db.QueryRow(ctx, query, s.insertArgs(m)...))
	if err != nil {
		err = wrapConflict(err)
		s.log.Error("Failed to insert record", zap.Error(err), zap.String("table", s.table))
		return nil, fmt.Errorf("insert into %s: %w", s.table, err)
	}

	return s.public(created), nil
}

// Edit updates the single record matching the filters. Zero matches is
// ErrNotFound, more than one is ErrConflict; the contract holds whatever
// columns are used as filters. With partial=true only the supplied
// changes are written; otherwise every mutable column must be present.
func (s *Store[M, S]) Edit(ctx context.Context, changes map[string]any, filters Filters, partial bool) (*S, error) {
	if len(changes) == 0 {
		return nil, fmt.Errorf("invalid update of %s: no columns supplied", s.table)
	}
	if !partial {
		for _, col := range s.columns[1:] {
			if _, ok := changes[col]; !ok {
				return nil, fmt.Errorf("invalid full update of %s: column %s missing", s.table, col)
			}
		}
	}

	// Columns in declaration order keeps the statement deterministic.
	var setParts []string
	var args []any
	for _, col := range s.columns[1:] {
		v, ok := changes[col]
		if !ok {
			continue
		}
		args = append(args, v)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(setParts) == 0 {
		return nil, fmt.Errorf("invalid update of %s: no known columns in change set", s.table)
	}

	if err := s.mustMatchOne(ctx, filters); err != nil {
		return nil, err
	}

	where, whereArgs := filters.whereClause(len(args) + 1)
	args = append(args, whereArgs...)

	query := fmt.Sprintf(
		"UPDATE %s SET %s%s RETURNING %s",
		s.table,
		strings.Join(setParts, ", "),
		where,
		strings.Join(s.columns, ", "),
	)

	updated, err := s.scan(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		err = wrapConflict(err)
		s.log.Error("Failed to update record", zap.Error(err), zap.String("table", s.table))
		return nil, fmt.Errorf("update %s: %w", s.table, err)
	}

	return s.public(updated), nil
}

// Delete removes the single record matching the filters, with the same
// exactly-one-match contract as Edit.
func (s *Store[M, S]) Delete(ctx context.Context, filters Filters) error {
	if err := s.mustMatchOne(ctx, filters); err != nil {
		return err
	}

	where, args := filters.whereClause(1)
	query := fmt.Sprintf("DELETE FROM %s%s", s.table, where)

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		s.log.Error("Failed to delete record", zap.Error(err), zap.String("table", s.table))
		return fmt.Errorf("delete from %s: %w", s.table, err)
	}

	return nil
}

// mustMatchOne enforces the exactly-one-match contract shared by Edit
// and Delete.
func (s *Store[M, S]) mustMatchOne(ctx context.Context, filters Filters) error {
	where, args := filters.whereClause(1)
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", s.table, where)

	var n int64
	if err := s.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return fmt.Errorf("count %s: %w", s.table, err)
	}

	switch {
	case n == 0:
		return fmt.Errorf("%s: %w", s.table, ErrNotFound)
	case n > 1:
		return fmt.Errorf("%d %s records match: %w", n, s.table, ErrConflict)
	}

	return nil
}

// identity is the public mapper for entities whose persisted and
// external shapes coincide.
func identity[M any](m *M) *M {
	return m
}
