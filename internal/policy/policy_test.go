package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusops/venue-booking/internal/models"
)

func TestAllow_AuthorizationMatrix(t *testing.T) {
	cases := []struct {
		name   string
		role   models.Role
		action Action
		owner  bool
		want   bool
	}{
		{"student cannot create booking", models.RoleStudent, ActionCreateBooking, false, false},
		{"staff can create booking", models.RoleStaff, ActionCreateBooking, false, true},
		{"admin can create booking", models.RoleAdmin, ActionCreateBooking, false, true},

		{"owner can view own booking", models.RoleStaff, ActionViewBooking, true, true},
		{"student owner can view own booking", models.RoleStudent, ActionViewBooking, true, true},
		{"non-owner staff cannot view", models.RoleStaff, ActionViewBooking, false, false},
		{"admin can view any booking", models.RoleAdmin, ActionViewBooking, false, true},

		{"owner can update own booking", models.RoleStaff, ActionUpdateBooking, true, true},
		{"non-owner staff cannot update", models.RoleStaff, ActionUpdateBooking, false, false},
		{"non-owner student cannot update", models.RoleStudent, ActionUpdateBooking, false, false},
		{"admin can update any booking", models.RoleAdmin, ActionUpdateBooking, false, true},

		{"owner can delete own booking", models.RoleStaff, ActionDeleteBooking, true, true},
		{"non-owner staff cannot delete", models.RoleStaff, ActionDeleteBooking, false, false},
		{"admin can delete any booking", models.RoleAdmin, ActionDeleteBooking, false, true},

		{"staff cannot set status even on own booking", models.RoleStaff, ActionSetBookingStatus, true, false},
		{"student cannot set status", models.RoleStudent, ActionSetBookingStatus, false, false},
		{"admin can set status", models.RoleAdmin, ActionSetBookingStatus, false, true},

		{"staff does not see all bookings", models.RoleStaff, ActionListAllBookings, false, false},
		{"admin sees all bookings", models.RoleAdmin, ActionListAllBookings, false, true},

		{"staff cannot manage venues", models.RoleStaff, ActionManageVenues, false, false},
		{"admin manages venues", models.RoleAdmin, ActionManageVenues, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Allow(tc.role, tc.action, tc.owner))
		})
	}
}

func TestCanTransition_StateMachine(t *testing.T) {
	allowed := []struct{ from, to models.BookingStatus }{
		{models.StatusPending, models.StatusApproved},
		{models.StatusPending, models.StatusRejected},
		{models.StatusPending, models.StatusCancelled},
		{models.StatusPending, models.StatusCompleted},
		{models.StatusApproved, models.StatusCancelled},
		{models.StatusApproved, models.StatusCompleted},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr.from, tr.to), "%s -> %s should be allowed", tr.from, tr.to)
	}

	denied := []struct{ from, to models.BookingStatus }{
		{models.StatusApproved, models.StatusRejected},
		{models.StatusRejected, models.StatusApproved},
		{models.StatusRejected, models.StatusPending},
		{models.StatusCancelled, models.StatusApproved},
		{models.StatusCancelled, models.StatusPending},
		{models.StatusCompleted, models.StatusApproved},
		{models.StatusCompleted, models.StatusCancelled},
	}
	for _, tr := range denied {
		assert.False(t, CanTransition(tr.from, tr.to), "%s -> %s should be denied", tr.from, tr.to)
	}
}

func TestCanTransition_SameStatusIsNoOp(t *testing.T) {
	for _, s := range []models.BookingStatus{
		models.StatusPending,
		models.StatusApproved,
		models.StatusRejected,
		models.StatusCancelled,
		models.StatusCompleted,
	} {
		assert.True(t, CanTransition(s, s))
	}
}
