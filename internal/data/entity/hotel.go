package entity

// Default check-in/check-out times of day, applied when a hotel
// is created without explicit values.
const (
	DefaultCheckInTime  = "14:00"
	DefaultCheckOutTime = "12:00"
)

type Hotel struct {
	ID       int64  `db:"id"`
	Title    string `db:"title"`
	Location string `db:"location"`
	Stars    int    `db:"stars"`     // 0-5
	CheckIn  string `db:"check_in"`  // time of day, "15:04"
	CheckOut string `db:"check_out"` // time of day, "15:04"
}
