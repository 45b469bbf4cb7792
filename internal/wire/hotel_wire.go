package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHotel(
	r chi.Router,
	hotelHandler *adaptor.HotelHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/hotels - availability search with optional title/location filters
	r.Get("/api/hotels", hotelHandler.ListAvailable)
	r.Get("/api/hotels/{hotel_id}", hotelHandler.Get)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/hotels", hotelHandler.Create)
		r.Put("/api/hotels/{hotel_id}", hotelHandler.Update)
		r.Patch("/api/hotels/{hotel_id}", hotelHandler.Patch)
		r.Delete("/api/hotels/{hotel_id}", hotelHandler.Delete)
	})
}
