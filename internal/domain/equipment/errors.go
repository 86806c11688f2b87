package equipment

import "errors"

var (
	// ErrAlreadyAssigned is returned when the equipment is held by another employee.
	ErrAlreadyAssigned = errors.New("equipment is already assigned")

	// ErrNotAssignable is returned for equipment in repair, lost or destroyed.
	ErrNotAssignable = errors.New("equipment cannot be assigned")

	// ErrNoAssignee is returned when an assignment has no employee.
	ErrNoAssignee = errors.New("an employee is required to assign equipment")
)
