package models

import "time"

type VenueType string

const (
	VenueClassroom      VenueType = "classroom"
	VenueLab            VenueType = "lab"
	VenueAuditorium     VenueType = "auditorium"
	VenueLectureTheater VenueType = "lecture-theater"
	VenueTutorialRoom   VenueType = "tutorial-room"
	VenueLibrary        VenueType = "library"
	VenueOther          VenueType = "other"
)

func (t VenueType) Valid() bool {
	switch t {
	case VenueClassroom, VenueLab, VenueAuditorium, VenueLectureTheater, VenueTutorialRoom, VenueLibrary, VenueOther:
		return true
	}
	return false
}

type VenueStatus string

const (
	VenueAvailable   VenueStatus = "Available"
	VenueOccupied    VenueStatus = "Occupied"
	VenueMaintenance VenueStatus = "Maintenance"
	VenueInactive    VenueStatus = "Inactive"
)

func (s VenueStatus) Valid() bool {
	switch s {
	case VenueAvailable, VenueOccupied, VenueMaintenance, VenueInactive:
		return true
	}
	return false
}

type Location struct {
	Building   string `gorm:"not null" json:"building"`
	Floor      string `gorm:"not null" json:"floor"`
	RoomNumber string `json:"room_number,omitempty"`
}

type Venue struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"uniqueIndex;not null" json:"name"`
	Type        VenueType   `gorm:"type:varchar(20);not null" json:"type"`
	Capacity    int         `gorm:"not null" json:"capacity"`
	Location    Location    `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Facilities  []string    `gorm:"serializer:json" json:"facilities,omitempty"`
	Description string      `json:"description,omitempty"`
	Status      VenueStatus `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`
	Images      []string    `gorm:"serializer:json" json:"images,omitempty"`
	IsActive    bool        `gorm:"not null;default:true" json:"is_active"`
	CreatedBy   string      `gorm:"type:varchar(36);not null" json:"created_by"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
