package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/rooms/available - rooms free for a date range, across hotels
	r.Get("/api/rooms/available", roomHandler.ListAvailable)
	r.Get("/api/hotels/{hotel_id}/rooms", roomHandler.ListByHotel)
	r.Get("/api/hotels/{hotel_id}/rooms/{room_id}", roomHandler.Get)
	r.Get("/api/room-types", roomHandler.ListRoomTypes)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/hotels/{hotel_id}/rooms", roomHandler.Create)
		r.Put("/api/hotels/{hotel_id}/rooms/{room_id}", roomHandler.Update)
		r.Patch("/api/hotels/{hotel_id}/rooms/{room_id}", roomHandler.Patch)
		r.Delete("/api/hotels/{hotel_id}/rooms/{room_id}", roomHandler.Delete)

		r.Post("/api/room-types", roomHandler.CreateRoomType)
	})
}
