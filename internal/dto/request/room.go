package request

// RoomRequest is the full-payload shape used by create and PUT.
// The hotel id comes from the route, not the body.
type RoomRequest struct {
	RoomTypeID  int64   `json:"room_type_id" validate:"required,gt=0"`
	Number      string  `json:"number" validate:"required,min=1,max=10"`
	Title       string  `json:"title" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=200"`
	Price       int64   `json:"price" validate:"min=0"`
	Facilities  []int64 `json:"facilities" validate:"omitempty,dive,gt=0"`
}

type RoomUpdateRequest struct {
	RoomTypeID  *int64   `json:"room_type_id,omitempty" validate:"omitempty,gt=0"`
	Number      *string  `json:"number,omitempty" validate:"omitempty,min=1,max=10"`
	Title       *string  `json:"title,omitempty" validate:"omitempty,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=200"`
	Price       *int64   `json:"price,omitempty" validate:"omitempty,min=0"`
	Facilities  *[]int64 `json:"facilities,omitempty" validate:"omitempty,dive,gt=0"`
}

type RoomTypeRequest struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

// RoomFacilitiesRequest is the desired facility set for reconciliation.
// An empty list is valid and removes every link.
type RoomFacilitiesRequest struct {
	Facilities []int64 `json:"facilities" validate:"dive,gt=0"`
}
