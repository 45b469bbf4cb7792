package response

import (
	"hotel-booking/internal/data/entity"
)

type HotelResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Stars    int    `json:"stars"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

func HotelToResponse(h *entity.Hotel) HotelResponse {
	return HotelResponse{
		ID:       h.ID,
		Title:    h.Title,
		Location: h.Location,
		Stars:    h.Stars,
		CheckIn:  h.CheckIn,
		CheckOut: h.CheckOut,
	}
}

func HotelsToResponse(hotels []*entity.Hotel) []HotelResponse {
	out := make([]HotelResponse, len(hotels))
	for i, h := range hotels {
		out[i] = HotelToResponse(h)
	}
	return out
}
