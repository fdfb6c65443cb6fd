package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/campusops/venue-booking/internal/models"
	"github.com/campusops/venue-booking/internal/policy"
	"github.com/campusops/venue-booking/internal/repository"
	"github.com/campusops/venue-booking/pkg/rabbitmq"
)

type CreateBookingParams struct {
	VenueID     uint
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Purpose     models.BookingPurpose
	Attendees   int
	Notes       string
}

// UpdateBookingParams carries a partial update; nil fields keep their
// current value. Status is not updatable here, only via SetStatus.
type UpdateBookingParams struct {
	VenueID     *uint
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Purpose     *models.BookingPurpose
	Attendees   *int
	Notes       *string
}

type ListBookingsParams struct {
	Status  models.BookingStatus
	VenueID uint
}

type BookingService interface {
	Create(ctx context.Context, caller models.Identity, p CreateBookingParams) (*models.Booking, error)
	Get(ctx context.Context, caller models.Identity, id uint) (*models.Booking, error)
	List(ctx context.Context, caller models.Identity, p ListBookingsParams) ([]models.Booking, error)
	Update(ctx context.Context, caller models.Identity, id uint, p UpdateBookingParams) (*models.Booking, error)
	SetStatus(ctx context.Context, caller models.Identity, id uint, status models.BookingStatus, reason string) (*models.Booking, error)
	Delete(ctx context.Context, caller models.Identity, id uint) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	venueRepo   repository.VenueRepository
	publisher   *rabbitmq.Publisher // nil disables event publishing
}

func NewBookingService(bookingRepo repository.BookingRepository, venueRepo repository.VenueRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		publisher:   publisher,
	}
}

func (s *bookingService) Create(ctx context.Context, caller models.Identity, p CreateBookingParams) (*models.Booking, error) {
	if !policy.Allow(caller.Role, policy.ActionCreateBooking, false) {
		return nil, fmt.Errorf("%w: role %s cannot create bookings", ErrForbidden, caller.Role)
	}
	if p.VenueID == 0 {
		return nil, fmt.Errorf("%w: venue is required", ErrValidation)
	}
	if err := validateBookingFields(p.Title, p.StartTime, p.EndTime, p.Purpose, p.Attendees); err != nil {
		return nil, err
	}

	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the venue row — serializes concurrent check-then-write
		//    sequences per venue
		venue, err := s.venueRepo.FindByIDForUpdate(ctx, tx, p.VenueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return err
		}
		if !venue.IsActive {
			return ErrVenueNotFound
		}

		// 2. Capacity, independent of any time conflict
		if p.Attendees > venue.Capacity {
			return fmt.Errorf("%w: venue capacity is %d", ErrCapacityExceeded, venue.Capacity)
		}

		// 3. Overlap scan against active bookings
		if err := s.checkConflict(ctx, tx, venue.ID, p.StartTime, p.EndTime, 0); err != nil {
			return err
		}

		// 4. Write, still under the venue lock
		booking := &models.Booking{
			VenueID:     venue.ID,
			UserID:      caller.UserID,
			Title:       strings.TrimSpace(p.Title),
			Description: p.Description,
			StartTime:   p.StartTime,
			EndTime:     p.EndTime,
			Purpose:     p.Purpose,
			Attendees:   p.Attendees,
			Status:      models.StatusPending,
			Notes:       p.Notes,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}

		booking.Venue = venue
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(rabbitmq.KeyBookingCreated, result)
	return result, nil
}

func (s *bookingService) Get(ctx context.Context, caller models.Identity, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if !policy.Allow(caller.Role, policy.ActionViewBooking, booking.UserID == caller.UserID) {
		return nil, fmt.Errorf("%w to view this booking", ErrForbidden)
	}
	return booking, nil
}

// List returns bookings visible to the caller, most recent start first.
// Non-admin callers only ever see their own bookings, whatever filters
// they request.
func (s *bookingService) List(ctx context.Context, caller models.Identity, p ListBookingsParams) ([]models.Booking, error) {
	filter := repository.BookingFilter{
		Status:  p.Status,
		VenueID: p.VenueID,
	}
	if !policy.Allow(caller.Role, policy.ActionListAllBookings, false) {
		filter.UserID = caller.UserID
	}
	return s.bookingRepo.Find(ctx, filter)
}

func (s *bookingService) Update(ctx context.Context, caller models.Identity, id uint, p UpdateBookingParams) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if !policy.Allow(caller.Role, policy.ActionUpdateBooking, booking.UserID == caller.UserID) {
		return nil, fmt.Errorf("%w to update this booking", ErrForbidden)
	}

	windowChanged := p.VenueID != nil || p.StartTime != nil || p.EndTime != nil

	if p.VenueID != nil {
		booking.VenueID = *p.VenueID
	}
	if p.Title != nil {
		booking.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		booking.Description = *p.Description
	}
	if p.StartTime != nil {
		booking.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		booking.EndTime = *p.EndTime
	}
	if p.Purpose != nil {
		booking.Purpose = *p.Purpose
	}
	if p.Attendees != nil {
		booking.Attendees = *p.Attendees
	}
	if p.Notes != nil {
		booking.Notes = *p.Notes
	}

	if err := validateBookingFields(booking.Title, booking.StartTime, booking.EndTime, booking.Purpose, booking.Attendees); err != nil {
		return nil, err
	}

	err = s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		venue, err := s.venueRepo.FindByIDForUpdate(ctx, tx, booking.VenueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return err
		}
		if !venue.IsActive {
			return ErrVenueNotFound
		}
		if booking.Attendees > venue.Capacity {
			return fmt.Errorf("%w: venue capacity is %d", ErrCapacityExceeded, venue.Capacity)
		}
		// Only a venue or time change can introduce a new overlap; the
		// booking's own row is excluded from the scan.
		if windowChanged {
			if err := s.checkConflict(ctx, tx, booking.VenueID, booking.StartTime, booking.EndTime, booking.ID); err != nil {
				return err
			}
		}
		if err := s.bookingRepo.Save(ctx, tx, booking); err != nil {
			return err
		}
		booking.Venue = venue
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(rabbitmq.KeyBookingUpdated, booking)
	return booking, nil
}

func (s *bookingService) SetStatus(ctx context.Context, caller models.Identity, id uint, status models.BookingStatus, reason string) (*models.Booking, error) {
	if !policy.Allow(caller.Role, policy.ActionSetBookingStatus, false) {
		return nil, fmt.Errorf("%w to change booking status", ErrForbidden)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}

	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	// Re-asserting the held status is an idempotent no-op.
	if booking.Status == status {
		return booking, nil
	}
	if !policy.CanTransition(booking.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}

	booking.Status = status
	switch status {
	case models.StatusApproved:
		booking.ApprovedBy = caller.UserID
	case models.StatusRejected:
		if reason != "" {
			booking.RejectionReason = reason
		}
	}

	// A status change never alters the time window, so no conflict
	// re-check is needed here.
	if err := s.bookingRepo.Save(ctx, s.bookingRepo.GetDB(), booking); err != nil {
		return nil, err
	}

	s.publish(rabbitmq.KeyBookingStatusChanged, booking)
	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, caller models.Identity, id uint) error {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return ErrBookingNotFound
	}
	if !policy.Allow(caller.Role, policy.ActionDeleteBooking, booking.UserID == caller.UserID) {
		return fmt.Errorf("%w to delete this booking", ErrForbidden)
	}

	if err := s.bookingRepo.Delete(ctx, booking); err != nil {
		return err
	}

	s.publish(rabbitmq.KeyBookingDeleted, booking)
	return nil
}

// checkConflict reports ErrConflict (naming the conflicting booking) when
// an active booking overlaps [start, end) on the venue. Must run inside
// the transaction holding the venue lock.
func (s *bookingService) checkConflict(ctx context.Context, tx *gorm.DB, venueID uint, start, end time.Time, excludeID uint) error {
	existing, err := s.bookingRepo.FindOverlapping(ctx, tx, venueID, start, end, excludeID)
	if err == nil {
		return fmt.Errorf("%w: overlaps %s booking %d (%s - %s)",
			ErrConflict, existing.Status, existing.ID,
			existing.StartTime.Format(time.RFC3339), existing.EndTime.Format(time.RFC3339))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func validateBookingFields(title string, start, end time.Time, purpose models.BookingPurpose, attendees int) error {
	switch {
	case strings.TrimSpace(title) == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case start.IsZero() || end.IsZero():
		return fmt.Errorf("%w: start_time and end_time are required", ErrValidation)
	case !end.After(start):
		return fmt.Errorf("%w: end time must be after start time", ErrValidation)
	case !purpose.Valid():
		return fmt.Errorf("%w: invalid purpose %q", ErrValidation, purpose)
	case attendees < 1:
		return fmt.Errorf("%w: attendees must be at least 1", ErrValidation)
	}
	return nil
}

func (s *bookingService) publish(routingKey string, payload any) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(routingKey, payload)
}
