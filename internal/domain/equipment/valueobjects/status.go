package valueobjects

import (
	"fmt"
	"strings"

	"github.com/GithubESPI/dotationsFrontend/internal/shared/textutil"
)

type EquipmentStatus string

const (
	StatusAvailable EquipmentStatus = "DISPONIBLE"
	StatusAssigned  EquipmentStatus = "AFFECTE"
	StatusInRepair  EquipmentStatus = "EN_REPARATION"
	StatusReturned  EquipmentStatus = "RESTITUE"
	StatusLost      EquipmentStatus = "PERDU"
	StatusDestroyed EquipmentStatus = "DETRUIT"
)

var validEquipmentStatuses = map[EquipmentStatus]bool{
	StatusAvailable: true,
	StatusAssigned:  true,
	StatusInRepair:  true,
	StatusReturned:  true,
	StatusLost:      true,
	StatusDestroyed: true,
}

var equipmentStatusLabels = map[EquipmentStatus]string{
	StatusAvailable: "Disponible",
	StatusAssigned:  "Affecté",
	StatusInRepair:  "En réparation",
	StatusReturned:  "Restitué",
	StatusLost:      "Perdu",
	StatusDestroyed: "Détruit",
}

var statusKeywords = []struct {
	keywords []string
	status   EquipmentStatus
}{
	{[]string{"disponible", "available"}, StatusAvailable},
	{[]string{"affecte", "assigned"}, StatusAssigned},
	{[]string{"reparation", "repair", "maintenance"}, StatusInRepair},
	{[]string{"restitue", "returned"}, StatusReturned},
	{[]string{"perdu", "lost"}, StatusLost},
	{[]string{"detruit", "destroyed"}, StatusDestroyed},
}

func (s EquipmentStatus) String() string {
	return string(s)
}

func (s EquipmentStatus) IsValid() bool {
	return validEquipmentStatuses[s]
}

func (s EquipmentStatus) Label() string {
	return equipmentStatusLabels[s]
}

// IsTerminal reports whether the equipment left the inventory for good.
func (s EquipmentStatus) IsTerminal() bool {
	return s == StatusLost || s == StatusDestroyed
}

func NewEquipmentStatus(s string) (EquipmentStatus, error) {
	st := EquipmentStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("invalid equipment status: %s", s)
	}
	return st, nil
}

// EquipmentStatusFromLabel maps a free-text Jira status to an equipment status.
// Unknown or empty labels map to StatusAvailable.
func EquipmentStatusFromLabel(label string) EquipmentStatus {
	if st, err := NewEquipmentStatus(label); err == nil {
		return st
	}

	folded := textutil.Fold(label)
	for _, entry := range statusKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(folded, kw) {
				return entry.status
			}
		}
	}
	return StatusAvailable
}

func AllEquipmentStatuses() []EquipmentStatus {
	return []EquipmentStatus{StatusAvailable, StatusAssigned, StatusInRepair, StatusReturned, StatusLost, StatusDestroyed}
}
