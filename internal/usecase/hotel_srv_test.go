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

type fakeHotelStore struct {
	existing    *entity.Hotel
	available   []*entity.Hotel
	editChanges map[string]any
	editPartial bool
	added       *entity.Hotel
	deleted     bool
}

func (f *fakeHotelStore) GetOne(context.Context, repository.Filters) (*entity.Hotel, error) {
	return f.existing, nil
}

func (f *fakeHotelStore) Add(_ context.Context, h *entity.Hotel) (*entity.Hotel, error) {
	stored := *h
	stored.ID = 1
	f.added = &stored
	return &stored, nil
}

func (f *fakeHotelStore) Edit(_ context.Context, changes map[string]any, _ repository.Filters, partial bool) (*entity.Hotel, error) {
	f.editChanges = changes
	f.editPartial = partial
	return f.existing, nil
}

func (f *fakeHotelStore) Delete(context.Context, repository.Filters) error {
	f.deleted = true
	return nil
}

func (f *fakeHotelStore) FindAvailable(_ context.Context, _, _ time.Time, _, _ string, _, _ int) ([]*entity.Hotel, error) {
	return f.available, nil
}

type fakeRoomLister struct {
	rooms []*entity.Room
}

func (f *fakeRoomLister) List(context.Context, repository.Filters, int, int) ([]*entity.Room, error) {
	return f.rooms, nil
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  string
	}{
		{"valid range", "2026-07-01", "2026-07-03", ""},
		{"single night", "2026-07-01", "2026-07-02", ""},
		{"equal dates", "2026-07-01", "2026-07-01", "check_out must be after check_in"},
		{"reversed", "2026-07-03", "2026-07-01", "check_out must be after check_in"},
		{"garbage check_in", "soon", "2026-07-01", "invalid check_in date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out, err := parseDateRange(tt.checkIn, tt.checkOut)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, out.After(in))
		})
	}
}

func TestHotelListAvailableValidation(t *testing.T) {
	svc := NewHotelService(&fakeHotelStore{}, &fakeRoomLister{}, zap.NewNop())

	tests := []struct {
		name    string
		req     *request.HotelAvailabilityRequest
		wantErr string
	}{
		{
			name: "missing dates",
			req: &request.HotelAvailabilityRequest{
				PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
			},
			wantErr: "validation failed",
		},
		{
			name: "title too short",
			req: &request.HotelAvailabilityRequest{
				CheckIn:          "2026-07-01",
				CheckOut:         "2026-07-03",
				Title:            "a",
				PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
			},
			wantErr: "validation failed",
		},
		{
			name: "per_page over limit",
			req: &request.HotelAvailabilityRequest{
				CheckIn:          "2026-07-01",
				CheckOut:         "2026-07-03",
				PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 500},
			},
			wantErr: "validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ListAvailable(context.Background(), tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHotelCreateAppliesDefaultTimes(t *testing.T) {
	store := &fakeHotelStore{}
	svc := NewHotelService(store, &fakeRoomLister{}, zap.NewNop())

	got, err := svc.Create(context.Background(), &request.HotelRequest{
		Title:    "Grand Palace",
		Location: "Jakarta",
		Stars:    4,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCheckInTime, got.CheckIn)
	assert.Equal(t, entity.DefaultCheckOutTime, got.CheckOut)
}

func TestHotelPatchBuildsSparseChanges(t *testing.T) {
	store := &fakeHotelStore{existing: &entity.Hotel{ID: 1, Title: "Old", Location: "Bali"}}
	svc := NewHotelService(store, &fakeRoomLister{}, zap.NewNop())

	title := "New Name"
	stars := 5
	_, err := svc.Patch(context.Background(), 1, &request.HotelUpdateRequest{
		Title: &title,
		Stars: &stars,
	})
	require.NoError(t, err)

	assert.True(t, store.editPartial)
	assert.Equal(t, map[string]any{"title": "New Name", "stars": 5}, store.editChanges)
}

func TestHotelPatchRejectsEmptyBody(t *testing.T) {
	store := &fakeHotelStore{existing: &entity.Hotel{ID: 1}}
	svc := NewHotelService(store, &fakeRoomLister{}, zap.NewNop())

	_, err := svc.Patch(context.Background(), 1, &request.HotelUpdateRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no fields to update")
}

func TestHotelDeleteBlockedByRooms(t *testing.T) {
	store := &fakeHotelStore{existing: &entity.Hotel{ID: 1}}
	svc := NewHotelService(store, &fakeRoomLister{rooms: []*entity.Room{{ID: 9}}}, zap.NewNop())

	err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot delete hotel")
	assert.False(t, store.deleted)
}

func TestHotelGetUnknown(t *testing.T) {
	svc := NewHotelService(&fakeHotelStore{}, &fakeRoomLister{}, zap.NewNop())

	_, err := svc.GetByID(context.Background(), 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
