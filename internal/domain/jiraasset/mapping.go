package jiraasset

// Field is a semantic equipment field that can be backed by a Jira attribute.
type Field string

const (
	FieldSerialNumber Field = "serialNumber"
	FieldBrand        Field = "brand"
	FieldModel        Field = "model"
	FieldType         Field = "type"
	FieldStatus       Field = "status"
	FieldInternalID   Field = "internalId"
	FieldAssignedUser Field = "assignedUser"
)

// Fields lists every mappable field in a stable order.
var Fields = []Field{
	FieldSerialNumber,
	FieldBrand,
	FieldModel,
	FieldType,
	FieldStatus,
	FieldInternalID,
	FieldAssignedUser,
}

// DetectableFields are the fields the auto-detector has a rule for.
var DetectableFields = []Field{
	FieldSerialNumber,
	FieldInternalID,
	FieldBrand,
	FieldModel,
	FieldStatus,
}

// AttributeMapping maps semantic fields to Jira attribute ids for one object type.
// An empty string means the field is not mapped.
type AttributeMapping struct {
	SerialNumberAttrID string `json:"serialNumberAttrId,omitempty" yaml:"serialNumberAttrId,omitempty"`
	BrandAttrID        string `json:"brandAttrId,omitempty" yaml:"brandAttrId,omitempty"`
	ModelAttrID        string `json:"modelAttrId,omitempty" yaml:"modelAttrId,omitempty"`
	TypeAttrID         string `json:"typeAttrId,omitempty" yaml:"typeAttrId,omitempty"`
	StatusAttrID       string `json:"statusAttrId,omitempty" yaml:"statusAttrId,omitempty"`
	InternalIDAttrID   string `json:"internalIdAttrId,omitempty" yaml:"internalIdAttrId,omitempty"`
	AssignedUserAttrID string `json:"assignedUserAttrId,omitempty" yaml:"assignedUserAttrId,omitempty"`
}

func (m AttributeMapping) Get(f Field) string {
	switch f {
	case FieldSerialNumber:
		return m.SerialNumberAttrID
	case FieldBrand:
		return m.BrandAttrID
	case FieldModel:
		return m.ModelAttrID
	case FieldType:
		return m.TypeAttrID
	case FieldStatus:
		return m.StatusAttrID
	case FieldInternalID:
		return m.InternalIDAttrID
	case FieldAssignedUser:
		return m.AssignedUserAttrID
	default:
		return ""
	}
}

func (m *AttributeMapping) Set(f Field, attributeID string) {
	switch f {
	case FieldSerialNumber:
		m.SerialNumberAttrID = attributeID
	case FieldBrand:
		m.BrandAttrID = attributeID
	case FieldModel:
		m.ModelAttrID = attributeID
	case FieldType:
		m.TypeAttrID = attributeID
	case FieldStatus:
		m.StatusAttrID = attributeID
	case FieldInternalID:
		m.InternalIDAttrID = attributeID
	case FieldAssignedUser:
		m.AssignedUserAttrID = attributeID
	}
}

func (m AttributeMapping) IsEmpty() bool {
	return m == AttributeMapping{}
}

// Merge returns m with every unset field taken from fallback.
func (m AttributeMapping) Merge(fallback AttributeMapping) AttributeMapping {
	out := m
	for _, f := range Fields {
		if out.Get(f) == "" {
			out.Set(f, fallback.Get(f))
		}
	}
	return out
}

// MappedFields returns the fields that carry an attribute id.
func (m AttributeMapping) MappedFields() []Field {
	var fields []Field
	for _, f := range Fields {
		if m.Get(f) != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// HasRequired reports whether every given field is mapped.
func (m AttributeMapping) HasRequired(fields ...Field) bool {
	for _, f := range fields {
		if m.Get(f) == "" {
			return false
		}
	}
	return true
}
