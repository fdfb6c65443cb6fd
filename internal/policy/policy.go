// Package policy centralizes the authorization matrix and the booking
// status state machine, so neither is re-implemented per call site.
package policy

import "github.com/campusops/venue-booking/internal/models"

type Action string

const (
	ActionCreateBooking    Action = "booking:create"
	ActionViewBooking      Action = "booking:view"
	ActionUpdateBooking    Action = "booking:update"
	ActionDeleteBooking    Action = "booking:delete"
	ActionSetBookingStatus Action = "booking:set-status"
	ActionListAllBookings  Action = "booking:list-all"
	ActionManageVenues     Action = "venue:manage"
)

// grants lists the roles allowed to perform an action regardless of
// resource ownership.
var grants = map[Action][]models.Role{
	ActionCreateBooking:    {models.RoleStaff, models.RoleAdmin},
	ActionViewBooking:      {models.RoleAdmin},
	ActionUpdateBooking:    {models.RoleAdmin},
	ActionDeleteBooking:    {models.RoleAdmin},
	ActionSetBookingStatus: {models.RoleAdmin},
	ActionListAllBookings:  {models.RoleAdmin},
	ActionManageVenues:     {models.RoleAdmin},
}

// ownerActions are additionally allowed to the owner of the resource,
// whatever their role.
var ownerActions = map[Action]bool{
	ActionViewBooking:   true,
	ActionUpdateBooking: true,
	ActionDeleteBooking: true,
}

// Allow decides whether a caller with the given role may perform action.
// owner reports whether the caller owns the target resource.
func Allow(role models.Role, action Action, owner bool) bool {
	if owner && ownerActions[action] {
		return true
	}
	for _, r := range grants[action] {
		if r == role {
			return true
		}
	}
	return false
}
