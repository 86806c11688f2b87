package valueobjects

import "fmt"

type AllocationStatus string

const (
	StatusInProgress AllocationStatus = "EN_COURS"
	StatusCompleted  AllocationStatus = "TERMINEE"
	StatusOverdue    AllocationStatus = "EN_RETARD"
	StatusCancelled  AllocationStatus = "ANNULEE"
)

var validAllocationStatuses = map[AllocationStatus]bool{
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusOverdue:    true,
	StatusCancelled:  true,
}

var allocationStatusTransitions = map[AllocationStatus][]AllocationStatus{
	StatusInProgress: {StatusCompleted, StatusOverdue, StatusCancelled},
	StatusOverdue:    {StatusCompleted, StatusInProgress, StatusCancelled},
}

func (s AllocationStatus) String() string {
	return string(s)
}

func (s AllocationStatus) IsValid() bool {
	return validAllocationStatuses[s]
}

// IsActive reports whether the allocation still holds its equipment.
func (s AllocationStatus) IsActive() bool {
	return s == StatusInProgress || s == StatusOverdue
}

func (s AllocationStatus) CanTransitionTo(next AllocationStatus) bool {
	for _, allowed := range allocationStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func NewAllocationStatus(s string) (AllocationStatus, error) {
	status := AllocationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid allocation status: %s", s)
	}
	return status, nil
}

func AllAllocationStatuses() []AllocationStatus {
	return []AllocationStatus{StatusInProgress, StatusCompleted, StatusOverdue, StatusCancelled}
}
