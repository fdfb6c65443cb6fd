package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusops/venue-booking/internal/models"
)

// BookingFilter narrows a booking listing. Zero values mean "any";
// UserID non-empty restricts the listing to that owner.
type BookingFilter struct {
	UserID  string
	Status  models.BookingStatus
	VenueID uint
}

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	Find(ctx context.Context, filter BookingFilter) ([]models.Booking, error)
	FindOverlapping(ctx context.Context, tx *gorm.DB, venueID uint, start, end time.Time, excludeID uint) (*models.Booking, error)
	Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	Delete(ctx context.Context, booking *models.Booking) error
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Preload("Venue").First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Find(ctx context.Context, filter BookingFilter) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).Preload("Venue")
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.VenueID != 0 {
		q = q.Where("venue_id = ?", filter.VenueID)
	}
	if err := q.Order("start_time DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindOverlapping returns the first active (pending or approved) booking
// on the venue whose interval overlaps [start, end). Intervals are
// half-open: a booking ending exactly at start does not overlap.
// excludeID, when non-zero, removes a booking from consideration so an
// update does not conflict with itself.
func (r *bookingRepository) FindOverlapping(ctx context.Context, tx *gorm.DB, venueID uint, start, end time.Time, excludeID uint) (*models.Booking, error) {
	q := tx.WithContext(ctx).
		Where("venue_id = ? AND status IN ?", venueID, []models.BookingStatus{models.StatusPending, models.StatusApproved}).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var booking models.Booking
	if err := q.Order("start_time ASC").First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	// The preloaded Venue is read-only here; never write it back.
	return tx.WithContext(ctx).Omit(clause.Associations).Save(booking).Error
}

func (r *bookingRepository) Delete(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Delete(booking).Error
}
