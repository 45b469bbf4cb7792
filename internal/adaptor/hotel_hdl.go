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

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// ListAvailable handles GET /api/hotels
func (h *HotelHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.HotelAvailabilityRequest{
		CheckIn:  query.Get("check_in"),
		CheckOut: query.Get("check_out"),
		Title:    query.Get("title"),
		Location: query.Get("location"),
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
	}

	hotels, err := h.service.ListAvailable(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list available hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// Get handles GET /api/hotels/{hotel_id}
func (h *HotelHandler) Get(w http.ResponseWriter, r *http.Request) {
	hotelID, err := utils.ParseID(chi.URLParam(r, "hotel_id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	hotel, err := h.service.GetByID(r.Context(), hotelID)
	if err != nil {
		handleServiceError(h.log, w, err, "get hotel")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}

// Create handles POST /api/hotels
func (h *HotelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.HotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hotel, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create hotel")
		return
	}

	utils.ResponseCreated(w, "success", hotel)
}

// Update handles PUT /api/hotels/{hotel_id}
func (h *HotelHandler) Update(w http.ResponseWriter, r *http.Request) {
	hotelID, err := utils.ParseID(chi.URLParam(r, "hotel_id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	var req request.HotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hotel, err := h.service.Update(r.Context(), hotelID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update hotel")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}

// Patch handles PATCH /api/hotels/{hotel_id}
func (h *HotelHandler) Patch(w http.ResponseWriter, r *http.Request) {
	hotelID, err := utils.ParseID(chi.URLParam(r, "hotel_id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	var req request.HotelUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hotel, err := h.service.Patch(r.Context(), hotelID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "patch hotel")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}

// Delete handles DELETE /api/hotels/{hotel_id}
func (h *HotelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	hotelID, err := utils.ParseID(chi.URLParam(r, "hotel_id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	if err := h.service.Delete(r.Context(), hotelID); err != nil {
		handleServiceError(h.log, w, err, "delete hotel")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
