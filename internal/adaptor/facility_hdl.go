package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FacilityHandler struct {
	service usecase.FacilityService
	log     *zap.Logger
}

func NewFacilityHandler(service usecase.FacilityService, log *zap.Logger) *FacilityHandler {
	return &FacilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "facility")),
	}
}

// List handles GET /api/facilities
func (h *FacilityHandler) List(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list facilities")
		return
	}

	utils.ResponseSuccess(w, "success", facilities)
}

// Create handles POST /api/facilities
func (h *FacilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.FacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	facility, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create facility")
		return
	}

	utils.ResponseCreated(w, "success", facility)
}

// SetRoomFacilities handles PUT /api/rooms/{room_id}/facilities.
// The body is the full desired set; an empty list removes every link.
func (h *FacilityHandler) SetRoomFacilities(w http.ResponseWriter, r *http.Request) {
	roomID, err := utils.ParseID(chi.URLParam(r, "room_id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	var req request.RoomFacilitiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	if err := h.service.SetRoomFacilities(r.Context(), roomID, req.Facilities); err != nil {
		handleServiceError(h.log, w, err, "set room facilities")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
