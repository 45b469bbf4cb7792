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

type RoomService interface {
	ListAvailable(ctx context.Context, req *request.RoomAvailabilityRequest) ([]response.RoomResponse, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]response.RoomResponse, error)
	GetByID(ctx context.Context, hotelID, roomID int64) (*response.RoomDetailResponse, error)
	Create(ctx context.Context, hotelID int64, req *request.RoomRequest) (*response.RoomResponse, error)
	Update(ctx context.Context, hotelID, roomID int64, req *request.RoomRequest) (*response.RoomResponse, error)
	Patch(ctx context.Context, hotelID, roomID int64, req *request.RoomUpdateRequest) (*response.RoomResponse, error)
	Delete(ctx context.Context, hotelID, roomID int64) error
	ListRoomTypes(ctx context.Context) ([]response.RoomTypeResponse, error)
	CreateRoomType(ctx context.Context, req *request.RoomTypeRequest) (*response.RoomTypeResponse, error)
}

type roomStore interface {
	GetOne(ctx context.Context, filters repository.Filters) (*entity.Room, error)
	List(ctx context.Context, filters repository.Filters, limit, offset int) ([]*entity.Room, error)
	Add(ctx context.Context, rm *entity.Room) (*entity.Room, error)
	Edit(ctx context.Context, changes map[string]any, filters repository.Filters, partial bool) (*entity.Room, error)
	Delete(ctx context.Context, filters repository.Filters) error
	FindAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]*entity.Room, error)
}

type roomTypeStore interface {
	GetOne(ctx context.Context, filters repository.Filters) (*entity.RoomType, error)
	List(ctx context.Context, filters repository.Filters, limit, offset int) ([]*entity.RoomType, error)
	Add(ctx context.Context, rt *entity.RoomType) (*entity.RoomType, error)
}

type roomHotelFinder interface {
	GetOne(ctx context.Context, filters repository.Filters) (*entity.Hotel, error)
}

type roomBookingLister interface {
	List(ctx context.Context, filters repository.Filters, limit, offset int) ([]*entity.Booking, error)
}

type roomFacilityCatalog interface {
	FindByRoom(ctx context.Context, roomID int64) ([]*entity.Facility, error)
}

type facilityReconciler interface {
	SetRoomFacilities(ctx context.Context, roomID int64, desired []int64) error
}

type roomService struct {
	rooms      roomStore
	roomTypes  roomTypeStore
	hotels     roomHotelFinder
	bookings   roomBookingLister
	facilities roomFacilityCatalog
	reconciler facilityReconciler
	log        *zap.Logger
}

func NewRoomService(
	rooms roomStore,
	roomTypes roomTypeStore,
	hotels roomHotelFinder,
	bookings roomBookingLister,
	facilities roomFacilityCatalog,
	reconciler facilityReconciler,
	log *zap.Logger,
) RoomService {
	return &roomService{
		rooms:      rooms,
		roomTypes:  roomTypes,
		hotels:     hotels,
		bookings:   bookings,
		facilities: facilities,
		reconciler: reconciler,
		log:        log.With(zap.String("service", "room")),
	}
}

func (s *roomService) ListAvailable(ctx context.Context, req *request.RoomAvailabilityRequest) ([]response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkIn, checkOut, err := parseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.FindAvailable(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return response.RoomsToResponse(rooms), nil
}

func (s *roomService) ListByHotel(ctx context.Context, hotelID int64) ([]response.RoomResponse, error) {
	if _, err := s.existingHotel(ctx, hotelID); err != nil {
		return nil, err
	}

	rooms, err := s.rooms.List(ctx, repository.Filters{repository.Eq("hotel_id", hotelID)}, 0, 0)
	if err != nil {
		return nil, err
	}
	return response.RoomsToResponse(rooms), nil
}

func (s *roomService) GetByID(ctx context.Context, hotelID, roomID int64) (*response.RoomDetailResponse, error) {
	rm, err := s.existingRoom(ctx, hotelID, roomID)
	if err != nil {
		return nil, err
	}

	facilities, err := s.facilities.FindByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return &response.RoomDetailResponse{
		RoomResponse: response.RoomToResponse(rm),
		Facilities:   response.FacilitiesToResponse(facilities),
	}, nil
}

func (s *roomService) Create(ctx context.Context, hotelID int64, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if _, err := s.existingHotel(ctx, hotelID); err != nil {
		return nil, err
	}
	if err := s.checkRoomType(ctx, req.RoomTypeID); err != nil {
		return nil, err
	}

	created, err := s.rooms.Add(ctx, &entity.Room{
		HotelID:     hotelID,
		RoomTypeID:  req.RoomTypeID,
		Number:      req.Number,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return nil, err
	}

	if len(req.Facilities) > 0 {
		if err := s.reconciler.SetRoomFacilities(ctx, created.ID, req.Facilities); err != nil {
			return nil, err
		}
	}

	s.log.Info("Room created",
		zap.Int64("room_id", created.ID),
		zap.Int64("hotel_id", hotelID),
		zap.String("number", created.Number),
	)
	resp := response.RoomToResponse(created)
	return &resp, nil
}

func (s *roomService) Update(ctx context.Context, hotelID, roomID int64, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if _, err := s.existingRoom(ctx, hotelID, roomID); err != nil {
		return nil, err
	}
	if err := s.checkRoomType(ctx, req.RoomTypeID); err != nil {
		return nil, err
	}

	changes := map[string]any{
		"hotel_id":     hotelID,
		"room_type_id": req.RoomTypeID,
		"number":       req.Number,
		"title":        req.Title,
		"description":  req.Description,
		"price":        req.Price,
	}
	updated, err := s.rooms.Edit(ctx, changes, repository.Filters{repository.Eq("id", roomID)}, false)
	if err != nil {
		return nil, err
	}

	if err := s.reconciler.SetRoomFacilities(ctx, roomID, req.Facilities); err != nil {
		return nil, err
	}

	s.log.Info("Room updated", zap.Int64("room_id", roomID))
	resp := response.RoomToResponse(updated)
	return &resp, nil
}

func (s *roomService) Patch(ctx context.Context, hotelID, roomID int64, req *request.RoomUpdateRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	rm, err := s.existingRoom(ctx, hotelID, roomID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if req.RoomTypeID != nil {
		if err := s.checkRoomType(ctx, *req.RoomTypeID); err != nil {
			return nil, err
		}
		changes["room_type_id"] = *req.RoomTypeID
	}
	if req.Number != nil {
		changes["number"] = *req.Number
	}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Price != nil {
		changes["price"] = *req.Price
	}
	if len(changes) == 0 && req.Facilities == nil {
		return nil, fmt.Errorf("validation failed: no fields to update")
	}

	if len(changes) > 0 {
		rm, err = s.rooms.Edit(ctx, changes, repository.Filters{repository.Eq("id", roomID)}, true)
		if err != nil {
			return nil, err
		}
	}

	if req.Facilities != nil {
		if err := s.reconciler.SetRoomFacilities(ctx, roomID, *req.Facilities); err != nil {
			return nil, err
		}
	}

	s.log.Info("Room patched", zap.Int64("room_id", roomID), zap.Int("fields", len(changes)))
	resp := response.RoomToResponse(rm)
	return &resp, nil
}

func (s *roomService) Delete(ctx context.Context, hotelID, roomID int64) error {
	if _, err := s.existingRoom(ctx, hotelID, roomID); err != nil {
		return err
	}

	booked, err := s.bookings.List(ctx, repository.Filters{repository.Eq("room_id", roomID)}, 1, 0)
	if err != nil {
		return err
	}
	if len(booked) > 0 {
		return fmt.Errorf("cannot delete room %d: bookings exist for it", roomID)
	}

	// Drop the facility links before the row itself
	if err := s.reconciler.SetRoomFacilities(ctx, roomID, nil); err != nil {
		return err
	}

	if err := s.rooms.Delete(ctx, repository.Filters{repository.Eq("id", roomID)}); err != nil {
		return err
	}

	s.log.Info("Room deleted", zap.Int64("room_id", roomID), zap.Int64("hotel_id", hotelID))
	return nil
}

func (s *roomService) ListRoomTypes(ctx context.Context) ([]response.RoomTypeResponse, error) {
	types, err := s.roomTypes.List(ctx, nil, 0, 0)
	if err != nil {
		return nil, err
	}

	out := make([]response.RoomTypeResponse, len(types))
	for i, rt := range types {
		out[i] = response.RoomTypeToResponse(rt)
	}
	return out, nil
}

func (s *roomService) CreateRoomType(ctx context.Context, req *request.RoomTypeRequest) (*response.RoomTypeResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	created, err := s.roomTypes.Add(ctx, &entity.RoomType{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Room type created", zap.Int64("room_type_id", created.ID))
	resp := response.RoomTypeToResponse(created)
	return &resp, nil
}

func (s *roomService) existingHotel(ctx context.Context, hotelID int64) (*entity.Hotel, error) {
	h, err := s.hotels.GetOne(ctx, repository.Filters{repository.Eq("id", hotelID)})
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("hotel %d: %w", hotelID, repository.ErrNotFound)
	}
	return h, nil
}

// existingRoom looks the room up scoped to its hotel so a room id under
// the wrong hotel path reads as absent.
func (s *roomService) existingRoom(ctx context.Context, hotelID, roomID int64) (*entity.Room, error) {
	rm, err := s.rooms.GetOne(ctx, repository.Filters{
		repository.Eq("id", roomID),
		repository.Eq("hotel_id", hotelID),
	})
	if err != nil {
		return nil, err
	}
	if rm == nil {
		return nil, fmt.Errorf("room %d of hotel %d: %w", roomID, hotelID, repository.ErrNotFound)
	}
	return rm, nil
}

func (s *roomService) checkRoomType(ctx context.Context, roomTypeID int64) error {
	rt, err := s.roomTypes.GetOne(ctx, repository.Filters{repository.Eq("id", roomTypeID)})
	if err != nil {
		return err
	}
	if rt == nil {
		return fmt.Errorf("room type %d: %w", roomTypeID, repository.ErrNotFound)
	}
	return nil
}
