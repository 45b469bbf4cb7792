package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFacilityStore struct {
	catalog []*entity.Facility
	added   []*entity.Facility
}

func (f *fakeFacilityStore) List(context.Context, repository.Filters, int, int) ([]*entity.Facility, error) {
	return f.catalog, nil
}

func (f *fakeFacilityStore) Add(_ context.Context, fac *entity.Facility) (*entity.Facility, error) {
	stored := *fac
	stored.ID = int64(len(f.catalog) + len(f.added) + 1)
	f.added = append(f.added, &stored)
	return &stored, nil
}

func (f *fakeFacilityStore) FindExistingIDs(_ context.Context, ids []int64) ([]int64, error) {
	known := map[int64]struct{}{}
	for _, fac := range f.catalog {
		known[fac.ID] = struct{}{}
	}
	var existing []int64
	for _, id := range ids {
		if _, ok := known[id]; ok {
			existing = append(existing, id)
		}
	}
	return existing, nil
}

type fakeRoomFacilityStore struct {
	current     []int64
	appliedAdd  []int64
	appliedDel  []int64
	applyCalled bool
}

func (f *fakeRoomFacilityStore) FindFacilityIDsByRoom(context.Context, int64) ([]int64, error) {
	return f.current, nil
}

func (f *fakeRoomFacilityStore) ApplyDiff(_ context.Context, _ int64, toAdd, toRemove []int64) error {
	f.applyCalled = true
	f.appliedAdd = toAdd
	f.appliedDel = toRemove
	return nil
}

type fakeCache struct {
	data map[string][]byte
	hits int
	dels int
}

func (f *fakeCache) Get(_ context.Context, key string, dst any) (bool, error) {
	if _, ok := f.data[key]; !ok {
		return false, nil
	}
	f.hits++
	if out, ok := dst.(*[]response.FacilityResponse); ok {
		*out = []response.FacilityResponse{{ID: 1, Title: "cached"}}
	}
	return true, nil
}

func (f *fakeCache) Set(_ context.Context, key string, _ any) error {
	if f.data == nil {
		f.data = map[string][]byte{}
	}
	f.data[key] = []byte("x")
	return nil
}

func (f *fakeCache) Del(_ context.Context, key string) error {
	f.dels++
	delete(f.data, key)
	return nil
}

func TestSetRoomFacilities(t *testing.T) {
	catalog := []*entity.Facility{{ID: 1}, {ID: 2}, {ID: 3}}
	room := &entity.Room{ID: 10}

	tests := []struct {
		name      string
		desired   []int64
		current   []int64
		wantApply bool
		wantAdd   []int64
		wantDel   []int64
	}{
		{
			name:      "adds and removes",
			desired:   []int64{2, 3},
			current:   []int64{1, 2},
			wantApply: true,
			wantAdd:   []int64{3},
			wantDel:   []int64{1},
		},
		{
			name:      "unknown ids dropped before diffing",
			desired:   []int64{2, 3, 99},
			current:   []int64{1, 2},
			wantApply: true,
			wantAdd:   []int64{3},
			wantDel:   []int64{1},
		},
		{
			name:      "already converged",
			desired:   []int64{1, 2},
			current:   []int64{1, 2},
			wantApply: false,
		},
		{
			name:      "only unknown ids is a no-op on empty room",
			desired:   []int64{99},
			current:   nil,
			wantApply: false,
		},
		{
			name:      "empty desired removes all links",
			desired:   nil,
			current:   []int64{1, 3},
			wantApply: true,
			wantDel:   []int64{1, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := &fakeRoomFacilityStore{current: tt.current}
			svc := NewFacilityService(
				&fakeFacilityStore{catalog: catalog},
				links,
				&fakeRoomFinder{room: room},
				nil,
				zap.NewNop(),
			)

			err := svc.SetRoomFacilities(context.Background(), room.ID, tt.desired)
			require.NoError(t, err)

			assert.Equal(t, tt.wantApply, links.applyCalled)
			if tt.wantApply {
				assert.Equal(t, tt.wantAdd, links.appliedAdd)
				assert.Equal(t, tt.wantDel, links.appliedDel)
			}
		})
	}
}

func TestSetRoomFacilitiesUnknownRoom(t *testing.T) {
	svc := NewFacilityService(
		&fakeFacilityStore{},
		&fakeRoomFacilityStore{},
		&fakeRoomFinder{room: nil},
		nil,
		zap.NewNop(),
	)

	err := svc.SetRoomFacilities(context.Background(), 77, []int64{1})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFacilityListUsesCache(t *testing.T) {
	desc := "pool bar"
	store := &fakeFacilityStore{catalog: []*entity.Facility{{ID: 1, Title: "Pool", Description: &desc}}}
	cache := &fakeCache{}
	svc := NewFacilityService(store, &fakeRoomFacilityStore{}, &fakeRoomFinder{}, cache, zap.NewNop())

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "Pool", first[0].Title)

	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, "cached", second[0].Title)
}

func TestFacilityCreateInvalidatesCache(t *testing.T) {
	cache := &fakeCache{data: map[string][]byte{facilityListCacheKey: []byte("x")}}
	svc := NewFacilityService(&fakeFacilityStore{}, &fakeRoomFacilityStore{}, &fakeRoomFinder{}, cache, zap.NewNop())

	created, err := svc.Create(context.Background(), &request.FacilityRequest{Title: "Gym"})
	require.NoError(t, err)
	assert.Equal(t, "Gym", created.Title)
	assert.Equal(t, 1, cache.dels)
	assert.Empty(t, cache.data)
}
