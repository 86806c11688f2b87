package valueobjects

import (
	"fmt"
	"strings"

	"github.com/GithubESPI/dotationsFrontend/internal/shared/textutil"
)

type EquipmentType string

const (
	TypeLaptop  EquipmentType = "PC_PORTABLE"
	TypeDesktop EquipmentType = "PC_FIXE"
	TypeTablet  EquipmentType = "TABLETTE"
	TypeMobile  EquipmentType = "MOBILE"
	TypeScreen  EquipmentType = "ECRAN"
	TypeIPPhone EquipmentType = "TELEPHONE_IP"
	TypeOther   EquipmentType = "AUTRES"
)

var validEquipmentTypes = map[EquipmentType]bool{
	TypeLaptop:  true,
	TypeDesktop: true,
	TypeTablet:  true,
	TypeMobile:  true,
	TypeScreen:  true,
	TypeIPPhone: true,
	TypeOther:   true,
}

var equipmentTypeLabels = map[EquipmentType]string{
	TypeLaptop:  "PC Portable",
	TypeDesktop: "PC Fixe",
	TypeTablet:  "Tablette",
	TypeMobile:  "Mobile",
	TypeScreen:  "Écran",
	TypeIPPhone: "Téléphone IP",
	TypeOther:   "Autres",
}

// typeKeywords is evaluated in order. IP phones come before mobiles because
// "ip phone" also contains "phone".
var typeKeywords = []struct {
	keywords []string
	typ      EquipmentType
}{
	{[]string{"laptop", "portable"}, TypeLaptop},
	{[]string{"desktop", "fixe"}, TypeDesktop},
	{[]string{"tablet", "tablette"}, TypeTablet},
	{[]string{"ip phone", "telephone ip"}, TypeIPPhone},
	{[]string{"mobile", "phone"}, TypeMobile},
	{[]string{"screen", "ecran", "monitor"}, TypeScreen},
}

func (t EquipmentType) String() string {
	return string(t)
}

func (t EquipmentType) IsValid() bool {
	return validEquipmentTypes[t]
}

// Label is the French display name.
func (t EquipmentType) Label() string {
	return equipmentTypeLabels[t]
}

func NewEquipmentType(s string) (EquipmentType, error) {
	t := EquipmentType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid equipment type: %s", s)
	}
	return t, nil
}

// EquipmentTypeFromLabel maps a free-text Jira label to an equipment type. Matching
// ignores case and accents. Unknown or empty labels map to TypeOther.
func EquipmentTypeFromLabel(label string) EquipmentType {
	if t, err := NewEquipmentType(label); err == nil {
		return t
	}

	folded := textutil.Fold(label)
	if strings.TrimSpace(folded) == "" {
		return TypeOther
	}
	for _, entry := range typeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(folded, kw) {
				return entry.typ
			}
		}
	}
	return TypeOther
}

func AllEquipmentTypes() []EquipmentType {
	return []EquipmentType{TypeLaptop, TypeDesktop, TypeTablet, TypeMobile, TypeScreen, TypeIPPhone, TypeOther}
}
