package service

import (
	"fmt"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

// CheckTransition decides whether actor may move the docket to the requested
// status. Office roles may set any status (administrative override); a driver
// may only act on dockets assigned to them, stepping forward along the
// delivery path or sideways into Cancelled/Returned. Terminal dockets reject
// every transition regardless of role.
func CheckTransition(d *models.Docket, to models.DocketStatus, actor models.Actor) error {
	if !to.IsValid() {
		return models.ValidationError("status", fmt.Sprintf("%q is not a recognised status", to))
	}
	if d.Status.IsTerminal() {
		return models.TerminalStateError(d.Status)
	}
	if !actor.Role.IsValid() {
		return models.UnauthorizedTransitionError(fmt.Sprintf("role %q is not recognised", actor.Role))
	}

	if actor.Role.IsOffice() {
		return nil
	}

	// Driver rules.
	if d.DriverID == nil || *d.DriverID != actor.DriverID {
		return models.UnauthorizedTransitionError("docket is not assigned to this driver")
	}
	switch to {
	case models.StatusCancelled:
		return nil
	case models.StatusReturned:
		if !models.CanReturnFrom(d.Status) {
			return models.UnauthorizedTransitionError(
				fmt.Sprintf("docket cannot be returned while %s", d.Status))
		}
		return nil
	default:
		next, ok := d.Status.NextForward()
		if !ok || next != to {
			return models.UnauthorizedTransitionError(
				fmt.Sprintf("driver cannot move docket from %s to %s", d.Status, to))
		}
		return nil
	}
}
