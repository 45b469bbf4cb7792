package entity

type Room struct {
	ID          int64   `db:"id"`
	HotelID     int64   `db:"hotel_id"`
	RoomTypeID  int64   `db:"room_type_id"`
	Number      string  `db:"number"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Price       int64   `db:"price"` // per night, non-negative
}

type RoomType struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
}
