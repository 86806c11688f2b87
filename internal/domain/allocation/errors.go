package allocation

import "errors"

var (
	ErrNoEquipment              = errors.New("at least one equipment is required")
	ErrDuplicateEquipment       = errors.New("equipment listed twice in the allocation")
	ErrAlreadySigned            = errors.New("allocation is already signed")
	ErrNotActive                = errors.New("allocation is not active")
	ErrInvalidTransition        = errors.New("invalid allocation status transition")
	ErrEquipmentNotInAllocation = errors.New("equipment is not an outstanding line of the allocation")
)
