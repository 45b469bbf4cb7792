package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Hotel        *HotelRepository
	Room         *RoomRepository
	RoomType     *RoomTypeRepository
	Facility     *FacilityRepository
	RoomFacility *RoomFacilityRepository
	User         *UserRepository
	Booking      *BookingRepository
	Session      *SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Hotel:        NewHotelRepository(db, log),
		Room:         NewRoomRepository(db, log),
		RoomType:     NewRoomTypeRepository(db, log),
		Facility:     NewFacilityRepository(db, log),
		RoomFacility: NewRoomFacilityRepository(db, log),
		User:         NewUserRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Session:      NewSessionRepository(db, log),
	}
}
