package request

// CreateBookingRequest carries dates, not timestamps; the booking
// service combines them with the hotel's check-in/out times of day.
type CreateBookingRequest struct {
	RoomID   int64  `json:"room_id" validate:"required,gt=0"`
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
}
