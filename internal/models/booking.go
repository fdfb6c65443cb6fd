package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Active reports whether the booking occupies its venue/time window for
// conflict purposes. Rejected, cancelled and completed bookings do not.
func (s BookingStatus) Active() bool {
	return s == StatusPending || s == StatusApproved
}

type BookingPurpose string

const (
	PurposeClass    BookingPurpose = "class"
	PurposeMeeting  BookingPurpose = "meeting"
	PurposeSeminar  BookingPurpose = "seminar"
	PurposeWorkshop BookingPurpose = "workshop"
	PurposeExam     BookingPurpose = "exam"
	PurposeEvent    BookingPurpose = "event"
	PurposeOther    BookingPurpose = "other"
)

func (p BookingPurpose) Valid() bool {
	switch p {
	case PurposeClass, PurposeMeeting, PurposeSeminar, PurposeWorkshop, PurposeExam, PurposeEvent, PurposeOther:
		return true
	}
	return false
}

type Booking struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	VenueID         uint           `gorm:"not null" json:"venue_id"`
	UserID          string         `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title           string         `gorm:"not null" json:"title"`
	Description     string         `json:"description,omitempty"`
	StartTime       time.Time      `gorm:"not null" json:"start_time"`
	EndTime         time.Time      `gorm:"not null" json:"end_time"`
	Purpose         BookingPurpose `gorm:"type:varchar(20);not null" json:"purpose"`
	Attendees       int            `gorm:"not null" json:"attendees"`
	Status          BookingStatus  `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ApprovedBy      string         `gorm:"type:varchar(36)" json:"approved_by,omitempty"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`

	Venue *Venue `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
}
