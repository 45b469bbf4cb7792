package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var hotelColumns = []string{"id", "title", "location", "stars", "check_in", "check_out"}

func scanHotel(row pgx.Row) (*entity.Hotel, error) {
	var h entity.Hotel
	if err := row.Scan(&h.ID, &h.Title, &h.Location, &h.Stars, &h.CheckIn, &h.CheckOut); err != nil {
		return nil, err
	}
	return &h, nil
}

func hotelInsertArgs(h *entity.Hotel) []any {
	return []any{h.Title, h.Location, h.Stars, h.CheckIn, h.CheckOut}
}

type HotelRepository struct {
	*Store[entity.Hotel, entity.Hotel]
	db  database.PgxIface
	log *zap.Logger
}

func NewHotelRepository(db database.PgxIface, log *zap.Logger) *HotelRepository {
	log = log.With(zap.String("repository", "hotel"))
	return &HotelRepository{
		Store: NewStore(db, log, "hotels", hotelColumns, scanHotel, hotelInsertArgs, identity[entity.Hotel]),
		db:    db,
		log:   log,
	}
}

// FindAvailable returns hotels owning at least one room with no blocking
// booking in [checkIn, checkOut], with optional title/location substring
// filters and 1-based pagination applied in the query.
func (r *HotelRepository) FindAvailable(
	ctx context.Context,
	checkIn, checkOut time.Time,
	title, location string,
	limit, offset int,
) ([]*entity.Hotel, error) {
	query := `
		WITH rooms_booked AS (` + blockedRoomIDsSQL + `
		)
		SELECT h.id, h.title, h.location, h.stars, h.check_in, h.check_out
		FROM hotels h
		WHERE h.id IN (
			SELECT DISTINCT r.hotel_id FROM rooms r
			WHERE r.id NOT IN (SELECT room_id FROM rooms_booked)
		)`

	args := []any{checkIn, checkOut}
	if title != "" {
		args = append(args, title)
		query += fmt.Sprintf(" AND h.title ILIKE '%%' || $%d || '%%'", len(args))
	}
	if location != "" {
		args = append(args, location)
		query += fmt.Sprintf(" AND h.location ILIKE '%%' || $%d || '%%'", len(args))
	}
	query += fmt.Sprintf(" ORDER BY h.id LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find available hotels",
			zap.Error(err),
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
		)
		return nil, fmt.Errorf("find available hotels: %w", err)
	}
	defer rows.Close()

	var hotels []*entity.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hotel row: %w", err)
		}
		hotels = append(hotels, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hotels rows: %w", err)
	}

	return hotels, nil
}

// FindByRoomID returns the hotel owning the given room
func (r *HotelRepository) FindByRoomID(ctx context.Context, roomID int64) (*entity.Hotel, error) {
	query := `
		SELECT h.id, h.title, h.location, h.stars, h.check_in, h.check_out
		FROM hotels h
		JOIN rooms rm ON rm.hotel_id = h.id
		WHERE rm.id = $1`

	h, err := scanHotel(r.db.QueryRow(ctx, query, roomID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hotel by room ID",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return nil, fmt.Errorf("find hotel by room ID %d: %w", roomID, err)
	}

	return h, nil
}
