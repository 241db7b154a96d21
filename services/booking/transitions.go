package booking

import "brightnest/models"

// allowedTransitions enumerates the legal status moves. The forward path is
// pending → confirmed → in-progress → completed. Cancellation is only
// reachable before work starts. rescheduled is a side-state entered from
// confirmed by the scheduling-webhook path and returns to confirmed once a
// new slot is booked. completed and cancelled are terminal.
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:     {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:   {models.StatusInProgress, models.StatusCancelled, models.StatusRescheduled},
	models.StatusInProgress:  {models.StatusCompleted},
	models.StatusRescheduled: {models.StatusConfirmed, models.StatusCancelled},
	models.StatusCompleted:   {},
	models.StatusCancelled:   {},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to models.BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves the given status.
func IsTerminal(status models.BookingStatus) bool {
	return status == models.StatusCompleted || status == models.StatusCancelled
}

// IsKnownStatus reports whether the status is one of the lifecycle states.
func IsKnownStatus(status models.BookingStatus) bool {
	_, ok := allowedTransitions[status]
	return ok
}
