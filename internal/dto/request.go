package dto

import (
	"time"

	"github.com/campusops/venue-booking/internal/models"
)

type CreateBookingRequest struct {
	VenueID     uint      `json:"venue_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Purpose     string    `json:"purpose"`
	Attendees   int       `json:"attendees"`
	Notes       string    `json:"notes"`
}

// UpdateBookingRequest is a partial update; omitted fields are left
// untouched.
type UpdateBookingRequest struct {
	VenueID     *uint      `json:"venue_id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Purpose     *string    `json:"purpose"`
	Attendees   *int       `json:"attendees"`
	Notes       *string    `json:"notes"`
}

type SetBookingStatusRequest struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason"`
}

type CreateVenueRequest struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Capacity    int             `json:"capacity"`
	Location    models.Location `json:"location"`
	Facilities  []string        `json:"facilities"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Images      []string        `json:"images"`
}

type UpdateVenueRequest struct {
	Name        *string          `json:"name"`
	Type        *string          `json:"type"`
	Capacity    *int             `json:"capacity"`
	Location    *models.Location `json:"location"`
	Facilities  *[]string        `json:"facilities"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
	Images      *[]string        `json:"images"`
}
