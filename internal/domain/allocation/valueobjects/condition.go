package valueobjects

import (
	"fmt"

	equipmentvo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
)

// Condition describes the state of an equipment at delivery or return.
type Condition string

const (
	ConditionGood      Condition = "bon_etat"
	ConditionWorn      Condition = "degrade"
	ConditionDamaged   Condition = "endommage"
	ConditionMissing   Condition = "manquant"
	ConditionDestroyed Condition = "detruit"
)

var conditionEquipmentStatus = map[Condition]equipmentvo.EquipmentStatus{
	ConditionGood:      equipmentvo.StatusAvailable,
	ConditionWorn:      equipmentvo.StatusReturned,
	ConditionDamaged:   equipmentvo.StatusInRepair,
	ConditionMissing:   equipmentvo.StatusLost,
	ConditionDestroyed: equipmentvo.StatusDestroyed,
}

func (c Condition) String() string {
	return string(c)
}

func (c Condition) IsValid() bool {
	_, ok := conditionEquipmentStatus[c]
	return ok
}

// EquipmentStatus is the inventory status an equipment takes when returned in this condition.
func (c Condition) EquipmentStatus() equipmentvo.EquipmentStatus {
	return conditionEquipmentStatus[c]
}

// NewCondition parses a condition; an empty string means ConditionGood.
func NewCondition(s string) (Condition, error) {
	if s == "" {
		return ConditionGood, nil
	}
	c := Condition(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid condition: %s", s)
	}
	return c, nil
}

func AllConditions() []Condition {
	return []Condition{ConditionGood, ConditionWorn, ConditionDamaged, ConditionMissing, ConditionDestroyed}
}
