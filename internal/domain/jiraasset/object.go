// Package jiraasset models the read-only projection of Jira Assets objects and the
// pure logic that turns them into equipment form data: attribute resolution,
// attribute-role detection and text filtering.
package jiraasset

// Object is one asset as returned by the Jira Assets API. It is never persisted.
type Object struct {
	ID           string      `json:"id"`
	ObjectKey    string      `json:"objectKey,omitempty"`
	Label        string      `json:"label,omitempty"`
	ObjectTypeID string      `json:"objectTypeId"`
	Attributes   []Attribute `json:"attributes"`
}

// Attribute is one attribute slot of an asset. Values keeps the order returned by Jira.
type Attribute struct {
	ObjectTypeAttributeID string  `json:"objectTypeAttributeId"`
	Values                []Value `json:"objectAttributeValues"`
}

// ReferencedObject is the target of a reference attribute, for example a manufacturer.
type ReferencedObject struct {
	ID         string         `json:"id,omitempty"`
	ObjectKey  string         `json:"objectKey,omitempty"`
	Label      string         `json:"label,omitempty"`
	ObjectType *ObjectTypeRef `json:"objectType,omitempty"`
}

type ObjectTypeRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// TypeName returns the referenced object type name, or "" when Jira did not send it.
func (r ReferencedObject) TypeName() string {
	if r.ObjectType == nil {
		return ""
	}
	return r.ObjectType.Name
}

type Status struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
}

// FindAttribute returns the first attribute carrying attributeID.
func (o *Object) FindAttribute(attributeID string) (*Attribute, bool) {
	if o == nil {
		return nil, false
	}
	for i := range o.Attributes {
		if o.Attributes[i].ObjectTypeAttributeID == attributeID {
			return &o.Attributes[i], true
		}
	}
	return nil, false
}

// First returns the first value of the attribute.
func (a *Attribute) First() (Value, bool) {
	if a == nil || len(a.Values) == 0 {
		return Value{}, false
	}
	return a.Values[0], true
}
