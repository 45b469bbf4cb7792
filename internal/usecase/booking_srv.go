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

type BookingService interface {
	Create(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListByUser(ctx context.Context, userID int64) ([]response.BookingResponse, error)
}

type bookingStore interface {
	Add(ctx context.Context, b *entity.Booking) (*entity.Booking, error)
	List(ctx context.Context, filters repository.Filters, limit, offset int) ([]*entity.Booking, error)
}

type bookingHotelFinder interface {
	FindByRoomID(ctx context.Context, roomID int64) (*entity.Hotel, error)
}

type bookingService struct {
	bookings bookingStore
	rooms    roomFinder
	hotels   bookingHotelFinder
	log      *zap.Logger
	now      func() time.Time
}

func NewBookingService(
	bookings bookingStore,
	rooms roomFinder,
	hotels bookingHotelFinder,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		bookings: bookings,
		rooms:    rooms,
		hotels:   hotels,
		log:      log.With(zap.String("service", "booking")),
		now:      time.Now,
	}
}

// Create assembles a booking from the requested date range, the room's
// nightly price and the hotel's times of day. There is no lock between
// the caller's availability check and this insert, so two overlapping
// bookings can both land; see DESIGN.md.
func (s *bookingService) Create(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkInDate, checkOutDate, err := parseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	if !checkInDate.After(today) {
		return nil, fmt.Errorf("invalid date range: check_in must be in the future")
	}

	rm, err := s.rooms.GetOne(ctx, repository.Filters{repository.Eq("id", req.RoomID)})
	if err != nil {
		return nil, err
	}
	if rm == nil {
		return nil, fmt.Errorf("room %d: %w", req.RoomID, repository.ErrNotFound)
	}

	hotel, err := s.hotels.FindByRoomID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, fmt.Errorf("hotel of room %d: %w", req.RoomID, repository.ErrNotFound)
	}

	checkIn, err := combineDateAndTime(checkInDate, hotel.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel check_in time: %w", err)
	}
	checkOut, err := combineDateAndTime(checkOutDate, hotel.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel check_out time: %w", err)
	}

	nights := nightsBetween(checkInDate, checkOutDate)
	created, err := s.bookings.Add(ctx, &entity.Booking{
		UserID:     userID,
		RoomID:     req.RoomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: nights * rm.Price,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", created.ID),
		zap.Int64("user_id", userID),
		zap.Int64("room_id", req.RoomID),
		zap.Int64("nights", nights),
		zap.Int64("total_price", created.TotalPrice),
	)
	resp := response.BookingToResponse(created)
	return &resp, nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID int64) ([]response.BookingResponse, error) {
	bookings, err := s.bookings.List(ctx, repository.Filters{repository.Eq("user_id", userID)}, 0, 0)
	if err != nil {
		return nil, err
	}
	return response.BookingsToResponse(bookings), nil
}

// combineDateAndTime anchors a "15:04" time of day onto a calendar date.
func combineDateAndTime(date time.Time, hhmm string) (time.Time, error) {
	tod, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), 0, 0, time.UTC,
	), nil
}

func nightsBetween(checkIn, checkOut time.Time) int64 {
	return int64(checkOut.Sub(checkIn).Hours() / 24)
}
