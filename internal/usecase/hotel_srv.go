package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type HotelService interface {
	ListAvailable(ctx context.Context, req *request.HotelAvailabilityRequest) ([]response.HotelResponse, error)
	GetByID(ctx context.Context, hotelID int64) (*response.HotelResponse, error)
	Create(ctx context.Context, req *request.HotelRequest) (*response.HotelResponse, error)
	Update(ctx context.Context, hotelID int64, req *request.HotelRequest) (*response.HotelResponse, error)
	Patch(ctx context.Context, hotelID int64, req *request.HotelUpdateRequest) (*response.HotelResponse, error)
	Delete(ctx context.Context, hotelID int64) error
}

type hotelStore interface {
	GetOne(ctx context.Context, filters repository.Filters) (*entity.Hotel, error)
	Add(ctx context.Context, h *entity.Hotel) (*entity.Hotel, error)
	Edit(ctx context.Context, changes map[string]any, filters repository.Filters, partial bool) (*entity.Hotel, error)
	Delete(ctx context.Context, filters repository.Filters) error
	FindAvailable(ctx context.Context, checkIn, checkOut time.Time, title, location string, limit, offset int) ([]*entity.Hotel, error)
}

type hotelRoomLister interface {
	List(ctx context.Context, filters repository.Filters, limit, offset int) ([]*entity.Room, error)
}

type hotelService struct {
	hotels hotelStore
	rooms  hotelRoomLister
	log    *zap.Logger
}

func NewHotelService(hotels hotelStore, rooms hotelRoomLister, log *zap.Logger) HotelService {
	return &hotelService{
		hotels: hotels,
		rooms:  rooms,
		log:    log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) ListAvailable(ctx context.Context, req *request.HotelAvailabilityRequest) ([]response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkIn, checkOut, err := parseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	hotels, err := s.hotels.FindAvailable(ctx, checkIn, checkOut, req.Title, req.Location, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	s.log.Debug("Hotel availability resolved",
		zap.Time("check_in", checkIn),
		zap.Time("check_out", checkOut),
		zap.Int("count", len(hotels)),
	)
	return response.HotelsToResponse(hotels), nil
}

func (s *hotelService) GetByID(ctx context.Context, hotelID int64) (*response.HotelResponse, error) {
	h, err := s.getExisting(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	resp := response.HotelToResponse(h)
	return &resp, nil
}

func (s *hotelService) Create(ctx context.Context, req *request.HotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	h := &entity.Hotel{
		Title:    req.Title,
		Location: req.Location,
		Stars:    req.Stars,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
	}
	if h.CheckIn == "" {
		h.CheckIn = entity.DefaultCheckInTime
	}
	if h.CheckOut == "" {
		h.CheckOut = entity.DefaultCheckOutTime
	}

	created, err := s.hotels.Add(ctx, h)
	if err != nil {
		return nil, err
	}

	s.log.Info("Hotel created", zap.Int64("hotel_id", created.ID), zap.String("title", created.Title))
	resp := response.HotelToResponse(created)
	return &resp, nil
}

func (s *hotelService) Update(ctx context.Context, hotelID int64, req *request.HotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.getExisting(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{
		"title":     req.Title,
		"location":  req.Location,
		"stars":     req.Stars,
		"check_in":  req.CheckIn,
		"check_out": req.CheckOut,
	}
	// PUT with omitted times keeps the stored ones rather than blanking them
	if req.CheckIn == "" {
		changes["check_in"] = existing.CheckIn
	}
	if req.CheckOut == "" {
		changes["check_out"] = existing.CheckOut
	}

	updated, err := s.hotels.Edit(ctx, changes, repository.Filters{repository.Eq("id", hotelID)}, false)
	if err != nil {
		return nil, err
	}

	s.log.Info("Hotel updated", zap.Int64("hotel_id", hotelID))
	resp := response.HotelToResponse(updated)
	return &resp, nil
}

func (s *hotelService) Patch(ctx context.Context, hotelID int64, req *request.HotelUpdateRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if _, err := s.getExisting(ctx, hotelID); err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Location != nil {
		changes["location"] = *req.Location
	}
	if req.Stars != nil {
		changes["stars"] = *req.Stars
	}
	if req.CheckIn != nil {
		changes["check_in"] = *req.CheckIn
	}
	if req.CheckOut != nil {
		changes["check_out"] = *req.CheckOut
	}
	if len(changes) == 0 {
		return nil, fmt.Errorf("validation failed: no fields to update")
	}

	updated, err := s.hotels.Edit(ctx, changes, repository.Filters{repository.Eq("id", hotelID)}, true)
	if err != nil {
		return nil, err
	}

	s.log.Info("Hotel patched", zap.Int64("hotel_id", hotelID), zap.Int("fields", len(changes)))
	resp := response.HotelToResponse(updated)
	return &resp, nil
}

func (s *hotelService) Delete(ctx context.Context, hotelID int64) error {
	if _, err := s.getExisting(ctx, hotelID); err != nil {
		return err
	}

	rooms, err := s.rooms.List(ctx, repository.Filters{repository.Eq("hotel_id", hotelID)}, 1, 0)
	if err != nil {
		return err
	}
	if len(rooms) > 0 {
		return fmt.Errorf("cannot delete hotel %d: rooms still attached", hotelID)
	}

	if err := s.hotels.Delete(ctx, repository.Filters{repository.Eq("id", hotelID)}); err != nil {
		return err
	}

	s.log.Info("Hotel deleted", zap.Int64("hotel_id", hotelID))
	return nil
}

func (s *hotelService) getExisting(ctx context.Context, hotelID int64) (*entity.Hotel, error) {
	h, err := s.hotels.GetOne(ctx, repository.Filters{repository.Eq("id", hotelID)})
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("hotel %d: %w", hotelID, repository.ErrNotFound)
	}
	return h, nil
}

// parseDateRange parses two calendar dates and rejects an empty or
// inverted range. Equal dates are inverted too, a stay is at least one
// night.
func parseDateRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check_in date: %w", err)
	}
	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check_out date: %w", err)
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date range: check_out must be after check_in")
	}
	return in, out, nil
}
