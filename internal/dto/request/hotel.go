package request

// HotelRequest is the full-payload shape used by create and PUT.
type HotelRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=100"`
	Location string `json:"location" validate:"required,min=1,max=200"`
	Stars    int    `json:"stars" validate:"min=0,max=5"`
	CheckIn  string `json:"check_in" validate:"omitempty,datetime=15:04"`
	CheckOut string `json:"check_out" validate:"omitempty,datetime=15:04"`
}

// HotelUpdateRequest carries only the fields the caller wants changed.
type HotelUpdateRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Location *string `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
	Stars    *int    `json:"stars,omitempty" validate:"omitempty,min=0,max=5"`
	CheckIn  *string `json:"check_in,omitempty" validate:"omitempty,datetime=15:04"`
	CheckOut *string `json:"check_out,omitempty" validate:"omitempty,datetime=15:04"`
}

// HotelAvailabilityRequest is built from query parameters by the handler.
type HotelAvailabilityRequest struct {
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Title    string `json:"title" validate:"omitempty,min=2"`
	Location string `json:"location" validate:"omitempty,min=2"`
	PaginatedRequest
}

type RoomAvailabilityRequest struct {
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
}
