package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles every use case behind one handle for wiring.
type Service struct {
	Auth     AuthService
	Hotel    HotelService
	Room     RoomService
	Facility FacilityService
	Booking  BookingService
}

func NewService(repo *repository.Repository, cache Cache, config *utils.Config, log *zap.Logger) *Service {
	facility := NewFacilityService(repo.Facility, repo.RoomFacility, repo.Room, cache, log)
	return &Service{
		Auth:     NewAuthService(repo.User, repo.Session, config, log),
		Hotel:    NewHotelService(repo.Hotel, repo.Room, log),
		Room:     NewRoomService(repo.Room, repo.RoomType, repo.Hotel, repo.Booking, repo.Facility, facility, log),
		Facility: facility,
		Booking:  NewBookingService(repo.Booking, repo.Room, repo.Hotel, log),
	}
}
