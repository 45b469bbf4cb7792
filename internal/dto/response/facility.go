package response

import (
	"hotel-booking/internal/data/entity"
)

type FacilityResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

func FacilityToResponse(f *entity.Facility) FacilityResponse {
	return FacilityResponse{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
	}
}

func FacilitiesToResponse(facilities []*entity.Facility) []FacilityResponse {
	out := make([]FacilityResponse, len(facilities))
	for i, f := range facilities {
		out[i] = FacilityToResponse(f)
	}
	return out
}
