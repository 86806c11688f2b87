package jiraasset

func attr(id string, values ...Value) Attribute {
	return Attribute{ObjectTypeAttributeID: id, Values: values}
}

func asset(id string, attrs ...Attribute) *Object {
	return &Object{ID: id, ObjectKey: "PARC-" + id, ObjectTypeID: "23", Attributes: attrs}
}

func brandRef(key, id, typeName string) Value {
	return ReferenceValue(ReferencedObject{ID: id, ObjectKey: key, ObjectType: &ObjectTypeRef{ID: "7", Name: typeName}})
}
