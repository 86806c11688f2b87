package jiraasset

// AttributeValue resolves the first value of attributeID on asset. It reports false
// when attributeID is empty, when the asset has no such attribute, when the attribute
// has no values, or when the first value cannot be resolved.
func AttributeValue(asset *Object, attributeID string) (string, bool) {
	if attributeID == "" {
		return "", false
	}
	attr, ok := asset.FindAttribute(attributeID)
	if !ok {
		return "", false
	}
	first, ok := attr.First()
	if !ok {
		return "", false
	}
	return first.Resolve()
}

// AttributeValues resolves every value of attributeID and drops empty results.
func AttributeValues(asset *Object, attributeID string) []string {
	if attributeID == "" {
		return nil
	}
	attr, ok := asset.FindAttribute(attributeID)
	if !ok {
		return nil
	}

	values := make([]string, 0, len(attr.Values))
	for _, v := range attr.Values {
		if s, ok := v.Resolve(); ok && s != "" {
			values = append(values, s)
		}
	}
	return values
}

// DisplayType names the kind of an attribute in the attribute picker.
type DisplayType string

const (
	DisplayString    DisplayType = "string"
	DisplayNumber    DisplayType = "number"
	DisplayBoolean   DisplayType = "boolean"
	DisplayReference DisplayType = "reference"
	DisplayStatus    DisplayType = "status"
)

// AvailableAttribute is one entry of the attribute picker.
type AvailableAttribute struct {
	ID    string      `json:"id"`
	Value string      `json:"value"`
	Type  DisplayType `json:"type"`
}

// AvailableAttributes lists every attribute of the asset with its first value's
// display string and kind. Attributes without values are listed as empty strings.
func AvailableAttributes(asset *Object) []AvailableAttribute {
	if asset == nil {
		return nil
	}

	out := make([]AvailableAttribute, 0, len(asset.Attributes))
	for i := range asset.Attributes {
		attr := &asset.Attributes[i]
		entry := AvailableAttribute{ID: attr.ObjectTypeAttributeID, Type: DisplayString}
		if first, ok := attr.First(); ok {
			entry.Value, _ = first.Resolve()
			entry.Type = displayType(first)
		}
		out = append(out, entry)
	}
	return out
}

func displayType(v Value) DisplayType {
	switch v.Kind() {
	case ValueKindPrimitive:
		switch v.primKind {
		case PrimitiveNumber:
			return DisplayNumber
		case PrimitiveBool:
			return DisplayBoolean
		default:
			return DisplayString
		}
	case ValueKindReference:
		return DisplayReference
	case ValueKindStatus:
		return DisplayStatus
	default:
		return DisplayString
	}
}
