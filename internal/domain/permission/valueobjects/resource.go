package valueobjects

import "fmt"

type Resource string

const (
	ResourceEquipment  Resource = "equipment"
	ResourceAllocation Resource = "allocation"
	ResourceReturn     Resource = "return"
	ResourceEmployee   Resource = "employee"
	ResourceJira       Resource = "jira"
)

var validResources = map[Resource]bool{
	ResourceEquipment:  true,
	ResourceAllocation: true,
	ResourceReturn:     true,
	ResourceEmployee:   true,
	ResourceJira:       true,
}

func NewResource(resource string) (Resource, error) {
	r := Resource(resource)
	if !validResources[r] {
		return "", fmt.Errorf("invalid resource: %s", resource)
	}
	return r, nil
}

func (r Resource) String() string {
	return string(r)
}
