package entity

import "time"

// Booking is immutable once created. It is assembled by the booking
// service from a room, its hotel's check-in/out times and the requested
// date range, then inserted; there is no update path.
type Booking struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	RoomID     int64     `db:"room_id"`
	CheckIn    time.Time `db:"check_in"`
	CheckOut   time.Time `db:"check_out"`
	TotalPrice int64     `db:"total_price"`
}
