package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/venue-booking/internal/dto"
	"github.com/campusops/venue-booking/internal/models"
	"github.com/campusops/venue-booking/internal/repository"
	"github.com/campusops/venue-booking/internal/service"
)

// --- Mock VenueService ---

type mockVenueService struct {
	listFn   func(ctx context.Context, filter repository.VenueFilter) ([]models.Venue, error)
	getFn    func(ctx context.Context, id uint) (*models.Venue, error)
	createFn func(ctx context.Context, caller models.Identity, p service.CreateVenueParams) (*models.Venue, error)
	updateFn func(ctx context.Context, caller models.Identity, id uint, p service.UpdateVenueParams) (*models.Venue, error)
	deleteFn func(ctx context.Context, caller models.Identity, id uint) error
}

func (m *mockVenueService) List(ctx context.Context, filter repository.VenueFilter) ([]models.Venue, error) {
	return m.listFn(ctx, filter)
}
func (m *mockVenueService) Get(ctx context.Context, id uint) (*models.Venue, error) {
	return m.getFn(ctx, id)
}
func (m *mockVenueService) Create(ctx context.Context, caller models.Identity, p service.CreateVenueParams) (*models.Venue, error) {
	return m.createFn(ctx, caller, p)
}
func (m *mockVenueService) Update(ctx context.Context, caller models.Identity, id uint, p service.UpdateVenueParams) (*models.Venue, error) {
	return m.updateFn(ctx, caller, id, p)
}
func (m *mockVenueService) Delete(ctx context.Context, caller models.Identity, id uint) error {
	return m.deleteFn(ctx, caller, id)
}

func TestListVenues_Handler_PassesFilters(t *testing.T) {
	var gotFilter repository.VenueFilter
	svc := &mockVenueService{
		listFn: func(ctx context.Context, filter repository.VenueFilter) ([]models.Venue, error) {
			gotFilter = filter
			return []models.Venue{{ID: 1, Name: "Physics Lab"}}, nil
		},
	}

	c, rec := newContext(t, http.MethodGet, "/api/v1/venues?type=lab&status=Available&search=phys", "")
	require.NoError(t, NewVenueHandler(svc).ListVenues(c))

	assert.Equal(t, models.VenueLab, gotFilter.Type)
	assert.Equal(t, models.VenueAvailable, gotFilter.Status)
	assert.Equal(t, "phys", gotFilter.Search)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Count)
	assert.Equal(t, 1, *resp.Count)
}

func TestGetVenue_Handler_NotFound(t *testing.T) {
	svc := &mockVenueService{
		getFn: func(ctx context.Context, id uint) (*models.Venue, error) {
			return nil, service.ErrVenueNotFound
		},
	}

	c, _ := newContext(t, http.MethodGet, "/api/v1/venues/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := NewVenueHandler(svc).GetVenue(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestCreateVenue_Handler(t *testing.T) {
	svc := &mockVenueService{
		createFn: func(ctx context.Context, caller models.Identity, p service.CreateVenueParams) (*models.Venue, error) {
			return &models.Venue{
				ID:       1,
				Name:     p.Name,
				Type:     p.Type,
				Capacity: p.Capacity,
				Location: p.Location,
				Status:   models.VenueAvailable,
				IsActive: true,
			}, nil
		},
	}

	body := `{"name":"Physics Lab","type":"lab","capacity":25,"location":{"building":"Science Block","floor":"3"}}`
	c, rec := newContext(t, http.MethodPost, "/api/v1/venues", body)

	require.NoError(t, NewVenueHandler(svc).CreateVenue(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	data, _ := resp.Data.(map[string]any)
	require.NotNil(t, data)
	assert.Equal(t, "Physics Lab", data["name"])
}

func TestDeleteVenue_Handler_Forbidden(t *testing.T) {
	svc := &mockVenueService{
		deleteFn: func(ctx context.Context, caller models.Identity, id uint) error {
			return service.ErrForbidden
		},
	}

	c, _ := newContext(t, http.MethodDelete, "/api/v1/venues/2", "")
	c.SetParamNames("id")
	c.SetParamValues("2")

	err := NewVenueHandler(svc).DeleteVenue(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}
