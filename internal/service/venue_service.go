package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusops/venue-booking/internal/models"
	"github.com/campusops/venue-booking/internal/policy"
	"github.com/campusops/venue-booking/internal/repository"
	"github.com/campusops/venue-booking/pkg/rabbitmq"
)

type CreateVenueParams struct {
	Name        string
	Type        models.VenueType
	Capacity    int
	Location    models.Location
	Facilities  []string
	Description string
	Status      models.VenueStatus
	Images      []string
}

type UpdateVenueParams struct {
	Name        *string
	Type        *models.VenueType
	Capacity    *int
	Location    *models.Location
	Facilities  *[]string
	Description *string
	Status      *models.VenueStatus
	Images      *[]string
}

type VenueService interface {
	List(ctx context.Context, filter repository.VenueFilter) ([]models.Venue, error)
	Get(ctx context.Context, id uint) (*models.Venue, error)
	Create(ctx context.Context, caller models.Identity, p CreateVenueParams) (*models.Venue, error)
	Update(ctx context.Context, caller models.Identity, id uint, p UpdateVenueParams) (*models.Venue, error)
	Delete(ctx context.Context, caller models.Identity, id uint) error
}

type venueService struct {
	venueRepo repository.VenueRepository
	publisher *rabbitmq.Publisher // nil disables event publishing
}

func NewVenueService(venueRepo repository.VenueRepository, publisher *rabbitmq.Publisher) VenueService {
	return &venueService{venueRepo: venueRepo, publisher: publisher}
}

// List returns active venues only; soft-deleted venues stay hidden.
func (s *venueService) List(ctx context.Context, filter repository.VenueFilter) ([]models.Venue, error) {
	return s.venueRepo.FindActive(ctx, filter)
}

func (s *venueService) Get(ctx context.Context, id uint) (*models.Venue, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrVenueNotFound
	}
	return venue, nil
}

func (s *venueService) Create(ctx context.Context, caller models.Identity, p CreateVenueParams) (*models.Venue, error) {
	if !policy.Allow(caller.Role, policy.ActionManageVenues, false) {
		return nil, fmt.Errorf("%w to manage venues", ErrForbidden)
	}

	status := p.Status
	if status == "" {
		status = models.VenueAvailable
	}

	venue := &models.Venue{
		Name:        strings.TrimSpace(p.Name),
		Type:        p.Type,
		Capacity:    p.Capacity,
		Location:    p.Location,
		Facilities:  p.Facilities,
		Description: p.Description,
		Status:      status,
		Images:      p.Images,
		IsActive:    true,
		CreatedBy:   caller.UserID,
	}
	if err := validateVenue(venue); err != nil {
		return nil, err
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, err
	}

	s.publish(rabbitmq.KeyVenueCreated, venue)
	return venue, nil
}

func (s *venueService) Update(ctx context.Context, caller models.Identity, id uint, p UpdateVenueParams) (*models.Venue, error) {
	if !policy.Allow(caller.Role, policy.ActionManageVenues, false) {
		return nil, fmt.Errorf("%w to manage venues", ErrForbidden)
	}

	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrVenueNotFound
	}

	if p.Name != nil {
		venue.Name = strings.TrimSpace(*p.Name)
	}
	if p.Type != nil {
		venue.Type = *p.Type
	}
	if p.Capacity != nil {
		venue.Capacity = *p.Capacity
	}
	if p.Location != nil {
		venue.Location = *p.Location
	}
	if p.Facilities != nil {
		venue.Facilities = *p.Facilities
	}
	if p.Description != nil {
		venue.Description = *p.Description
	}
	if p.Status != nil {
		venue.Status = *p.Status
	}
	if p.Images != nil {
		venue.Images = *p.Images
	}
	if err := validateVenue(venue); err != nil {
		return nil, err
	}

	if err := s.venueRepo.Save(ctx, venue); err != nil {
		return nil, err
	}

	s.publish(rabbitmq.KeyVenueUpdated, venue)
	return venue, nil
}

// Delete soft-deletes: the venue stops accepting bookings and disappears
// from listings, but existing bookings keep their reference.
func (s *venueService) Delete(ctx context.Context, caller models.Identity, id uint) error {
	if !policy.Allow(caller.Role, policy.ActionManageVenues, false) {
		return fmt.Errorf("%w to manage venues", ErrForbidden)
	}

	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		return ErrVenueNotFound
	}

	venue.IsActive = false
	if err := s.venueRepo.Save(ctx, venue); err != nil {
		return err
	}

	s.publish(rabbitmq.KeyVenueUpdated, venue)
	return nil
}

func validateVenue(v *models.Venue) error {
	switch {
	case v.Name == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case !v.Type.Valid():
		return fmt.Errorf("%w: invalid venue type %q", ErrValidation, v.Type)
	case v.Capacity < 1:
		return fmt.Errorf("%w: capacity must be at least 1", ErrValidation)
	case v.Location.Building == "" || v.Location.Floor == "":
		return fmt.Errorf("%w: location building and floor are required", ErrValidation)
	case !v.Status.Valid():
		return fmt.Errorf("%w: invalid venue status %q", ErrValidation, v.Status)
	}
	return nil
}

func (s *venueService) publish(routingKey string, payload any) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(routingKey, payload)
}
