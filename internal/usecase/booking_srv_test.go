package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBookingStore struct {
	added  []*entity.Booking
	listed []*entity.Booking
}

func (f *fakeBookingStore) Add(_ context.Context, b *entity.Booking) (*entity.Booking, error) {
	stored := *b
	stored.ID = int64(len(f.added) + 1)
	f.added = append(f.added, &stored)
	return &stored, nil
}

func (f *fakeBookingStore) List(_ context.Context, _ repository.Filters, _, _ int) ([]*entity.Booking, error) {
	return f.listed, nil
}

type fakeRoomFinder struct {
	room *entity.Room
}

func (f *fakeRoomFinder) GetOne(context.Context, repository.Filters) (*entity.Room, error) {
	return f.room, nil
}

type fakeHotelByRoom struct {
	hotel *entity.Hotel
}

func (f *fakeHotelByRoom) FindByRoomID(context.Context, int64) (*entity.Hotel, error) {
	return f.hotel, nil
}

func newBookingServiceForTest(store *fakeBookingStore, room *entity.Room, hotel *entity.Hotel) *bookingService {
	svc := NewBookingService(store, &fakeRoomFinder{room: room}, &fakeHotelByRoom{hotel: hotel}, zap.NewNop()).(*bookingService)
	svc.now = func() time.Time {
		return time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestBookingCreate(t *testing.T) {
	room := &entity.Room{ID: 3, HotelID: 1, Price: 100}
	hotel := &entity.Hotel{ID: 1, CheckIn: "14:00", CheckOut: "12:00"}

	store := &fakeBookingStore{}
	svc := newBookingServiceForTest(store, room, hotel)

	got, err := svc.Create(context.Background(), 42, &request.CreateBookingRequest{
		RoomID:   3,
		CheckIn:  "2026-07-01",
		CheckOut: "2026-07-03",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, int64(3), got.RoomID)
	assert.Equal(t, int64(200), got.TotalPrice, "two nights at 100 per night")
	assert.Equal(t, time.Date(2026, 7, 1, 14, 0, 0, 0, time.UTC), got.CheckIn)
	assert.Equal(t, time.Date(2026, 7, 3, 12, 0, 0, 0, time.UTC), got.CheckOut)
	require.Len(t, store.added, 1)
}

func TestBookingCreateRejectsBadDates(t *testing.T) {
	room := &entity.Room{ID: 3, Price: 100}
	hotel := &entity.Hotel{ID: 1, CheckIn: "14:00", CheckOut: "12:00"}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  string
	}{
		{"reversed range", "2026-07-03", "2026-07-01", "check_out must be after check_in"},
		{"zero nights", "2026-07-01", "2026-07-01", "check_out must be after check_in"},
		{"past stay", "2026-01-01", "2026-01-05", "check_in must be in the future"},
		{"starts today", "2026-06-15", "2026-06-20", "check_in must be in the future"},
		{"malformed date", "01-07-2026", "2026-07-03", "validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newBookingServiceForTest(&fakeBookingStore{}, room, hotel)
			_, err := svc.Create(context.Background(), 42, &request.CreateBookingRequest{
				RoomID:   3,
				CheckIn:  tt.checkIn,
				CheckOut: tt.checkOut,
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBookingCreateUnknownRoom(t *testing.T) {
	svc := newBookingServiceForTest(&fakeBookingStore{}, nil, nil)

	_, err := svc.Create(context.Background(), 42, &request.CreateBookingRequest{
		RoomID:   999,
		CheckIn:  "2026-07-01",
		CheckOut: "2026-07-03",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBookingListByUser(t *testing.T) {
	store := &fakeBookingStore{listed: []*entity.Booking{
		{ID: 1, UserID: 42, RoomID: 3, TotalPrice: 200},
		{ID: 2, UserID: 42, RoomID: 5, TotalPrice: 450},
	}}
	svc := newBookingServiceForTest(store, nil, nil)

	got, err := svc.ListByUser(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(450), got[1].TotalPrice)
}

func TestNightsBetween(t *testing.T) {
	in := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(1), nightsBetween(in, in.AddDate(0, 0, 1)))
	assert.Equal(t, int64(13), nightsBetween(in, in.AddDate(0, 0, 13)))
}
