package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

const facilityListCacheKey = "facilities:all"

type FacilityService interface {
	List(ctx context.Context) ([]response.FacilityResponse, error)
	Create(ctx context.Context, req *request.FacilityRequest) (*response.FacilityResponse, error)
	SetRoomFacilities(ctx context.Context, roomID int64, desired []int64) error
}

type facilityStore interface {
	List(ctx context.Context, filters repository.Filters, limit, offset int) ([]*entity.Facility, error)
	Add(ctx context.Context, f *entity.Facility) (*entity.Facility, error)
	FindExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

type roomFacilityStore interface {
	FindFacilityIDsByRoom(ctx context.Context, roomID int64) ([]int64, error)
	ApplyDiff(ctx context.Context, roomID int64, toAdd, toRemove []int64) error
}

type roomFinder interface {
	GetOne(ctx context.Context, filters repository.Filters) (*entity.Room, error)
}

// Cache is the slice of the cache layer the services need. Implemented
// by pkg/cache; a nil Cache disables caching entirely.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Del(ctx context.Context, key string) error
}

type facilityService struct {
	facilities     facilityStore
	roomFacilities roomFacilityStore
	rooms          roomFinder
	cache          Cache
	log            *zap.Logger
}

func NewFacilityService(
	facilities facilityStore,
	roomFacilities roomFacilityStore,
	rooms roomFinder,
	cache Cache,
	log *zap.Logger,
) FacilityService {
	return &facilityService{
		facilities:     facilities,
		roomFacilities: roomFacilities,
		rooms:          rooms,
		cache:          cache,
		log:            log.With(zap.String("service", "facility")),
	}
}

func (s *facilityService) List(ctx context.Context) ([]response.FacilityResponse, error) {
	if s.cache != nil {
		var cached []response.FacilityResponse
		hit, err := s.cache.Get(ctx, facilityListCacheKey, &cached)
		if err != nil {
			s.log.Warn("Facility cache read failed", zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	facilities, err := s.facilities.List(ctx, nil, 0, 0)
	if err != nil {
		return nil, err
	}
	out := response.FacilitiesToResponse(facilities)

	if s.cache != nil {
		if err := s.cache.Set(ctx, facilityListCacheKey, out); err != nil {
			s.log.Warn("Facility cache write failed", zap.Error(err))
		}
	}
	return out, nil
}

func (s *facilityService) Create(ctx context.Context, req *request.FacilityRequest) (*response.FacilityResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	created, err := s.facilities.Add(ctx, &entity.Facility{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, facilityListCacheKey); err != nil {
			s.log.Warn("Facility cache invalidation failed", zap.Error(err))
		}
	}

	s.log.Info("Facility created", zap.Int64("facility_id", created.ID), zap.String("title", created.Title))
	resp := response.FacilityToResponse(created)
	return &resp, nil
}

// SetRoomFacilities reconciles the room's facility links toward the
// desired set. Ids absent from the catalog are dropped silently, and a
// desired set equal to the current one touches nothing.
func (s *facilityService) SetRoomFacilities(ctx context.Context, roomID int64, desired []int64) error {
	rm, err := s.rooms.GetOne(ctx, repository.Filters{repository.Eq("id", roomID)})
	if err != nil {
		return err
	}
	if rm == nil {
		return fmt.Errorf("room %d: %w", roomID, repository.ErrNotFound)
	}

	valid, err := s.facilities.FindExistingIDs(ctx, desired)
	if err != nil {
		return err
	}
	if dropped := len(desired) - len(valid); dropped > 0 {
		s.log.Debug("Dropped unknown facility ids",
			zap.Int64("room_id", roomID),
			zap.Int("dropped", dropped),
		)
	}

	current, err := s.roomFacilities.FindFacilityIDsByRoom(ctx, roomID)
	if err != nil {
		return err
	}

	toAdd, toRemove := diffFacilities(valid, current)
	if len(toAdd) == 0 && len(toRemove) == 0 {
		s.log.Debug("Room facilities already in desired state", zap.Int64("room_id", roomID))
		return nil
	}

	if err := s.roomFacilities.ApplyDiff(ctx, roomID, toAdd, toRemove); err != nil {
		return err
	}

	s.log.Info("Room facilities reconciled",
		zap.Int64("room_id", roomID),
		zap.Int("added", len(toAdd)),
		zap.Int("removed", len(toRemove)),
	)
	return nil
}
