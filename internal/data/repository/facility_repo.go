package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var facilityColumns = []string{"id", "title", "description"}

func scanFacility(row pgx.Row) (*entity.Facility, error) {
	var f entity.Facility
	if err := row.Scan(&f.ID, &f.Title, &f.Description); err != nil {
		return nil, err
	}
	return &f, nil
}

func facilityInsertArgs(f *entity.Facility) []any {
	return []any{f.Title, f.Description}
}

type FacilityRepository struct {
	*Store[entity.Facility, entity.Facility]
	db  database.PgxIface
	log *zap.Logger
}

func NewFacilityRepository(db database.PgxIface, log *zap.Logger) *FacilityRepository {
	log = log.With(zap.String("repository", "facility"))
	return &FacilityRepository{
		Store: NewStore(db, log, "facilities", facilityColumns, scanFacility, facilityInsertArgs, identity[entity.Facility]),
		db:    db,
		log:   log,
	}
}

// FindExistingIDs returns the subset of ids present in the facility
// catalog, ascending. Unknown ids are simply absent from the result.
func (r *FacilityRepository) FindExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT id FROM facilities WHERE id = ANY($1) ORDER BY id`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to check facility ids", zap.Error(err))
		return nil, fmt.Errorf("check facility ids: %w", err)
	}
	defer rows.Close()

	var existing []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan facility id: %w", err)
		}
		existing = append(existing, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate facility ids: %w", err)
	}

	return existing, nil
}

// FindByRoom returns the catalog facilities linked to the room
func (r *FacilityRepository) FindByRoom(ctx context.Context, roomID int64) ([]*entity.Facility, error) {
	query := `
		SELECT f.id, f.title, f.description
		FROM facilities f
		JOIN rooms_facilities rf ON rf.facility_id = f.id
		WHERE rf.room_id = $1
		ORDER BY f.id`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to get room facilities",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return nil, fmt.Errorf("get facilities of room %d: %w", roomID, err)
	}
	defer rows.Close()

	var facilities []*entity.Facility
	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("scan facility row: %w", err)
		}
		facilities = append(facilities, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate facilities rows: %w", err)
	}

	return facilities, nil
}
