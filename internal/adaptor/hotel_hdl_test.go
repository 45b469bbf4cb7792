package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubHotelService struct {
	err    error
	hotel  *response.HotelResponse
	hotels []response.HotelResponse
}

func (s *stubHotelService) ListAvailable(context.Context, *request.HotelAvailabilityRequest) ([]response.HotelResponse, error) {
	return s.hotels, s.err
}

func (s *stubHotelService) GetByID(context.Context, int64) (*response.HotelResponse, error) {
	return s.hotel, s.err
}

func (s *stubHotelService) Create(context.Context, *request.HotelRequest) (*response.HotelResponse, error) {
	return s.hotel, s.err
}

func (s *stubHotelService) Update(context.Context, int64, *request.HotelRequest) (*response.HotelResponse, error) {
	return s.hotel, s.err
}

func (s *stubHotelService) Patch(context.Context, int64, *request.HotelUpdateRequest) (*response.HotelResponse, error) {
	return s.hotel, s.err
}

func (s *stubHotelService) Delete(context.Context, int64) error {
	return s.err
}

func newHotelRouter(svc *stubHotelService) http.Handler {
	h := NewHotelHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/hotels", h.ListAvailable)
	r.Get("/api/hotels/{hotel_id}", h.Get)
	r.Post("/api/hotels", h.Create)
	r.Delete("/api/hotels/{hotel_id}", h.Delete)
	return r
}

func TestHotelGetStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"ok", nil, http.StatusOK},
		{"not found", fmt.Errorf("hotel 7: %w", repository.ErrNotFound), http.StatusNotFound},
		{"conflict", fmt.Errorf("constraint hotels_title_key violated: %w", repository.ErrConflict), http.StatusConflict},
		{"validation", fmt.Errorf("validation failed: Title: This field is required"), http.StatusBadRequest},
		{"guarded delete", fmt.Errorf("cannot delete hotel 7: rooms still attached"), http.StatusBadRequest},
		{"unexpected", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubHotelService{err: tt.serviceErr, hotel: &response.HotelResponse{ID: 7}}
			router := newHotelRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/hotels/7", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHotelGetInvalidID(t *testing.T) {
	router := newHotelRouter(&stubHotelService{})

	req := httptest.NewRequest(http.MethodGet, "/api/hotels/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHotelCreate(t *testing.T) {
	svc := &stubHotelService{hotel: &response.HotelResponse{ID: 1, Title: "Grand Palace"}}
	router := newHotelRouter(svc)

	body := `{"title":"Grand Palace","location":"Jakarta","stars":4}`
	req := httptest.NewRequest(http.MethodPost, "/api/hotels", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Status  bool                   `json:"status"`
		Message string                 `json:"message"`
		Data    response.HotelResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Status)
	assert.Equal(t, "Grand Palace", envelope.Data.Title)
}

func TestHotelCreateMalformedBody(t *testing.T) {
	router := newHotelRouter(&stubHotelService{})

	req := httptest.NewRequest(http.MethodPost, "/api/hotels", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
