package repository

import (
	"context"
	"fmt"

	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

// RoomFacilityRepository is not built on the generic store: link rows
// are only ever written in bulk by reconciliation, never one at a time.
type RoomFacilityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomFacilityRepository(db database.PgxIface, log *zap.Logger) *RoomFacilityRepository {
	return &RoomFacilityRepository{
		db:  db,
		log: log.With(zap.String("repository", "room_facility")),
	}
}

// FindFacilityIDsByRoom returns the facility ids currently linked to the
// room, ascending.
func (r *RoomFacilityRepository) FindFacilityIDsByRoom(ctx context.Context, roomID int64) ([]int64, error) {
	query := `SELECT facility_id FROM rooms_facilities WHERE room_id = $1 ORDER BY facility_id`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to get room facility ids",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return nil, fmt.Errorf("get facility ids of room %d: %w", roomID, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan facility id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate facility ids: %w", err)
	}

	return ids, nil
}

// ApplyDiff bulk-inserts the add set and bulk-deletes the remove set of
// a room's facility links inside one transaction. A uniqueness violation
// on insert surfaces as ErrConflict.
func (r *RoomFacilityRepository) ApplyDiff(ctx context.Context, roomID int64, toAdd, toRemove []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin facility diff tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if len(toAdd) > 0 {
		insert := `
			INSERT INTO rooms_facilities (room_id, facility_id)
			SELECT $1, unnest($2::bigint[])`
		if _, err := tx.Exec(ctx, insert, roomID, toAdd); err != nil {
			err = wrapConflict(err)
			r.log.Error("Failed to insert room facilities",
				zap.Error(err),
				zap.Int64("room_id", roomID),
			)
			return fmt.Errorf("insert facilities of room %d: %w", roomID, err)
		}
	}

	if len(toRemove) > 0 {
		del := `DELETE FROM rooms_facilities WHERE room_id = $1 AND facility_id = ANY($2)`
		if _, err := tx.Exec(ctx, del, roomID, toRemove); err != nil {
			r.log.Error("Failed to delete room facilities",
				zap.Error(err),
				zap.Int64("room_id", roomID),
			)
			return fmt.Errorf("delete facilities of room %d: %w", roomID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit facility diff tx: %w", err)
	}

	return nil
}
