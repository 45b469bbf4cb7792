package response

import (
	"hotel-booking/internal/data/entity"
)

type RoomResponse struct {
	ID          int64   `json:"id"`
	HotelID     int64   `json:"hotel_id"`
	RoomTypeID  int64   `json:"room_type_id"`
	Number      string  `json:"number"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Price       int64   `json:"price"`
}

// RoomDetailResponse includes the room's facility links.
type RoomDetailResponse struct {
	RoomResponse
	Facilities []FacilityResponse `json:"facilities"`
}

type RoomTypeResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

func RoomToResponse(rm *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          rm.ID,
		HotelID:     rm.HotelID,
		RoomTypeID:  rm.RoomTypeID,
		Number:      rm.Number,
		Title:       rm.Title,
		Description: rm.Description,
		Price:       rm.Price,
	}
}

func RoomsToResponse(rooms []*entity.Room) []RoomResponse {
	out := make([]RoomResponse, len(rooms))
	for i, rm := range rooms {
		out[i] = RoomToResponse(rm)
	}
	return out
}

func RoomTypeToResponse(rt *entity.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:          rt.ID,
		Title:       rt.Title,
		Description: rt.Description,
	}
}
