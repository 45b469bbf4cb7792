package repository

import (
	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// blockedRoomIDsSQL selects the room ids of bookings blocking the range
// $1..$2: a booking blocks when its check-in or its check-out falls
// inside the range. A booking that fully spans the range slips through
// this test; kept as-is pending a product decision (see DESIGN.md).
const blockedRoomIDsSQL = `
		SELECT room_id FROM bookings
		WHERE (check_in >= $1 AND check_in <= $2)
		   OR (check_out >= $1 AND check_out <= $2)`

var bookingColumns = []string{"id", "user_id", "room_id", "check_in", "check_out", "total_price"}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	if err := row.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CheckIn, &b.CheckOut, &b.TotalPrice); err != nil {
		return nil, err
	}
	return &b, nil
}

func bookingInsertArgs(b *entity.Booking) []any {
	return []any{b.UserID, b.RoomID, b.CheckIn, b.CheckOut, b.TotalPrice}
}

// BookingRepository persists bookings. Bookings are immutable: callers
// only List and Add; the store's Edit is never used for them.
type BookingRepository struct {
	*Store[entity.Booking, entity.Booking]
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) *BookingRepository {
	log = log.With(zap.String("repository", "booking"))
	return &BookingRepository{
		Store: NewStore(db, log, "bookings", bookingColumns, scanBooking, bookingInsertArgs, identity[entity.Booking]),
	}
}
