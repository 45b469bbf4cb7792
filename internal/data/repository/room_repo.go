package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var roomColumns = []string{"id", "hotel_id", "room_type_id", "number", "title", "description", "price"}

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var rm entity.Room
	if err := row.Scan(&rm.ID, &rm.HotelID, &rm.RoomTypeID, &rm.Number, &rm.Title, &rm.Description, &rm.Price); err != nil {
		return nil, err
	}
	return &rm, nil
}

func roomInsertArgs(rm *entity.Room) []any {
	return []any{rm.HotelID, rm.RoomTypeID, rm.Number, rm.Title, rm.Description, rm.Price}
}

type RoomRepository struct {
	*Store[entity.Room, entity.Room]
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) *RoomRepository {
	log = log.With(zap.String("repository", "room"))
	return &RoomRepository{
		Store: NewStore(db, log, "rooms", roomColumns, scanRoom, roomInsertArgs, identity[entity.Room]),
		db:    db,
		log:   log,
	}
}

// FindAvailable returns rooms with no blocking booking in [checkIn, checkOut]
func (r *RoomRepository) FindAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]*entity.Room, error) {
	query := `
		WITH rooms_booked AS (` + blockedRoomIDsSQL + `
		)
		SELECT id, hotel_id, room_type_id, number, title, description, price
		FROM rooms
		WHERE id NOT IN (SELECT room_id FROM rooms_booked)
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, checkIn, checkOut)
	if err != nil {
		r.log.Error("Failed to find available rooms",
			zap.Error(err),
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
		)
		return nil, fmt.Errorf("find available rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, rm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms rows: %w", err)
	}

	return rooms, nil
}
