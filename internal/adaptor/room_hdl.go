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

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// ListAvailable handles GET /api/rooms/available
func (h *RoomHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.RoomAvailabilityRequest{
		CheckIn:  query.Get("check_in"),
		CheckOut: query.Get("check_out"),
	}

	rooms, err := h.service.ListAvailable(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list available rooms")
		return
	}
	if len(rooms) == 0 {
		utils.ResponseNotFound(w, "No rooms available for the requested dates")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// ListByHotel handles GET /api/hotels/{hotel_id}/rooms
func (h *RoomHandler) ListByHotel(w http.ResponseWriter, r *http.Request) {
	hotelID, err := utils.ParseID(chi.URLParam(r, "hotel_id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	rooms, err := h.service.ListByHotel(r.Context(), hotelID)
	if err != nil {
		handleServiceError(h.log, w, err, "list hotel rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// Get handles GET /api/hotels/{hotel_id}/rooms/{room_id}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	hotelID, roomID, err := roomPathIDs(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	room, err := h.service.GetByID(r.Context(), hotelID, roomID)
	if err != nil {
		handleServiceError(h.log, w, err, "get room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// Create handles POST /api/hotels/{hotel_id}/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	hotelID, err := utils.ParseID(chi.URLParam(r, "hotel_id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	var req request.RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.Create(r.Context(), hotelID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// Update handles PUT /api/hotels/{hotel_id}/rooms/{room_id}
func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	hotelID, roomID, err := roomPathIDs(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	var req request.RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.Update(r.Context(), hotelID, roomID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// Patch handles PATCH /api/hotels/{hotel_id}/rooms/{room_id}
func (h *RoomHandler) Patch(w http.ResponseWriter, r *http.Request) {
	hotelID, roomID, err := roomPathIDs(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	var req request.RoomUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.Patch(r.Context(), hotelID, roomID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "patch room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// Delete handles DELETE /api/hotels/{hotel_id}/rooms/{room_id}
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	hotelID, roomID, err := roomPathIDs(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	if err := h.service.Delete(r.Context(), hotelID, roomID); err != nil {
		handleServiceError(h.log, w, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ListRoomTypes handles GET /api/room-types
func (h *RoomHandler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.ListRoomTypes(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list room types")
		return
	}

	utils.ResponseSuccess(w, "success", types)
}

// CreateRoomType handles POST /api/room-types
func (h *RoomHandler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	var req request.RoomTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rt, err := h.service.CreateRoomType(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create room type")
		return
	}

	utils.ResponseCreated(w, "success", rt)
}

func roomPathIDs(r *http.Request) (hotelID, roomID int64, err error) {
	hotelID, err = utils.ParseID(chi.URLParam(r, "hotel_id"))
	if err != nil {
		return 0, 0, err
	}
	roomID, err = utils.ParseID(chi.URLParam(r, "room_id"))
	if err != nil {
		return 0, 0, err
	}
	return hotelID, roomID, nil
}
