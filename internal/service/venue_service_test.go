package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/venue-booking/internal/models"
	"github.com/campusops/venue-booking/internal/repository"
)

func newVenueSvc(t *testing.T) (VenueService, BookingService) {
	t.Helper()
	db := newTestDB(t)
	return NewVenueService(repository.NewVenueRepository(db), nil), newBookingSvc(db)
}

func venueParams(name string) CreateVenueParams {
	return CreateVenueParams{
		Name:     name,
		Type:     models.VenueLab,
		Capacity: 25,
		Location: models.Location{Building: "Science Block", Floor: "3", RoomNumber: "S301"},
	}
}

func TestCreateVenue_AdminOnly(t *testing.T) {
	svc, _ := newVenueSvc(t)

	venue, err := svc.Create(context.Background(), adminIdentity(), venueParams("Physics Lab"))
	require.NoError(t, err)
	assert.True(t, venue.IsActive)
	assert.Equal(t, models.VenueAvailable, venue.Status)

	_, err = svc.Create(context.Background(), staffIdentity(), venueParams("Chemistry Lab"))
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Create(context.Background(), studentIdentity(), venueParams("Biology Lab"))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateVenue_Validation(t *testing.T) {
	svc, _ := newVenueSvc(t)
	admin := adminIdentity()

	p := venueParams("")
	_, err := svc.Create(context.Background(), admin, p)
	assert.ErrorIs(t, err, ErrValidation)

	p = venueParams("Lab A")
	p.Capacity = 0
	_, err = svc.Create(context.Background(), admin, p)
	assert.ErrorIs(t, err, ErrValidation)

	p = venueParams("Lab B")
	p.Type = "gym"
	_, err = svc.Create(context.Background(), admin, p)
	assert.ErrorIs(t, err, ErrValidation)

	p = venueParams("Lab C")
	p.Location.Building = ""
	_, err = svc.Create(context.Background(), admin, p)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListVenues_Filters(t *testing.T) {
	svc, _ := newVenueSvc(t)
	admin := adminIdentity()

	_, err := svc.Create(context.Background(), admin, venueParams("Physics Lab"))
	require.NoError(t, err)

	p := venueParams("Main Auditorium")
	p.Type = models.VenueAuditorium
	p.Location.Building = "Convocation Hall"
	_, err = svc.Create(context.Background(), admin, p)
	require.NoError(t, err)

	labs, err := svc.List(context.Background(), repository.VenueFilter{Type: models.VenueLab})
	require.NoError(t, err)
	require.Len(t, labs, 1)
	assert.Equal(t, "Physics Lab", labs[0].Name)

	// Search is case-insensitive and matches name or building.
	found, err := svc.List(context.Background(), repository.VenueFilter{Search: "audito"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Main Auditorium", found[0].Name)

	found, err = svc.List(context.Background(), repository.VenueFilter{Search: "CONVOCATION"})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	none, err := svc.List(context.Background(), repository.VenueFilter{Search: "swimming"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateVenue_Merge(t *testing.T) {
	svc, _ := newVenueSvc(t)
	admin := adminIdentity()

	venue, err := svc.Create(context.Background(), admin, venueParams("Physics Lab"))
	require.NoError(t, err)

	capacity := 40
	status := models.VenueMaintenance
	updated, err := svc.Update(context.Background(), admin, venue.ID, UpdateVenueParams{
		Capacity: &capacity,
		Status:   &status,
	})

	require.NoError(t, err)
	assert.Equal(t, 40, updated.Capacity)
	assert.Equal(t, models.VenueMaintenance, updated.Status)
	assert.Equal(t, "Physics Lab", updated.Name)

	badCapacity := 0
	_, err = svc.Update(context.Background(), admin, venue.ID, UpdateVenueParams{Capacity: &badCapacity})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(context.Background(), staffIdentity(), venue.ID, UpdateVenueParams{Capacity: &capacity})
	assert.ErrorIs(t, err, ErrForbidden)
}

// Soft delete: the venue disappears from listings and stops accepting
// bookings, but a direct Get still resolves it.
func TestDeleteVenue_SoftDelete(t *testing.T) {
	svc, bookingSvc := newVenueSvc(t)
	admin := adminIdentity()

	venue, err := svc.Create(context.Background(), admin, venueParams("Physics Lab"))
	require.NoError(t, err)

	err = svc.Delete(context.Background(), staffIdentity(), venue.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(context.Background(), admin, venue.ID))

	listed, err := svc.List(context.Background(), repository.VenueFilter{})
	require.NoError(t, err)
	assert.Empty(t, listed)

	got, err := svc.Get(context.Background(), venue.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = bookingSvc.Create(context.Background(), staffIdentity(), createParams(venue.ID, at(10, 0), at(11, 0)))
	assert.ErrorIs(t, err, ErrVenueNotFound)
}
