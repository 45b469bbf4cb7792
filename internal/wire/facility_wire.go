package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFacility(
	r chi.Router,
	facilityHandler *adaptor.FacilityHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Facility catalog
	r.Get("/api/facilities", facilityHandler.List)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/facilities", facilityHandler.Create)

		// PUT /api/rooms/{room_id}/facilities - replace the room's facility set
		r.Put("/api/rooms/{room_id}/facilities", facilityHandler.SetRoomFacilities)
	})
}
