package policy

import "github.com/campusops/venue-booking/internal/models"

// transitions is the booking status state machine. Absent states
// (rejected, cancelled, completed) are terminal.
var transitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending: {
		models.StatusApproved,
		models.StatusRejected,
		models.StatusCancelled,
		models.StatusCompleted,
	},
	models.StatusApproved: {
		models.StatusCancelled,
		models.StatusCompleted,
	},
}

// CanTransition reports whether a booking may move from one status to
// another. Re-asserting the currently-held status is treated as a no-op
// and always allowed.
func CanTransition(from, to models.BookingStatus) bool {
	if from == to {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
