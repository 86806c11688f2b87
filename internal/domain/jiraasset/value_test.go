package jiraasset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		kind     ValueKind
		resolved string
		ok       bool
	}{
		{name: "string", payload: `{"value":"ABC123"}`, kind: ValueKindPrimitive, resolved: "ABC123", ok: true},
		{name: "empty string", payload: `{"value":""}`, kind: ValueKindPrimitive, resolved: "", ok: true},
		{name: "integer", payload: `{"value":42}`, kind: ValueKindPrimitive, resolved: "42", ok: true},
		{name: "float", payload: `{"value":13.5}`, kind: ValueKindPrimitive, resolved: "13.5", ok: true},
		{name: "boolean", payload: `{"value":false}`, kind: ValueKindPrimitive, resolved: "false", ok: true},
		{name: "object value is not primitive", payload: `{"value":{"a":1}}`, kind: ValueKindUnknown, ok: false},
		{name: "null value falls through to reference", payload: `{"value":null,"referencedObject":{"id":"9","objectKey":"BRAND-1"}}`, kind: ValueKindReference, resolved: "BRAND-1", ok: true},
		{name: "reference without key", payload: `{"referencedObject":{"id":"999"}}`, kind: ValueKindReference, resolved: "999", ok: true},
		{name: "empty reference", payload: `{"referencedObject":{}}`, kind: ValueKindReference, ok: false},
		{name: "status", payload: `{"status":{"id":"10","name":"Disponible","category":"2"}}`, kind: ValueKindStatus, resolved: "Disponible", ok: true},
		{name: "status without name", payload: `{"status":{"id":"10"}}`, kind: ValueKindStatus, resolved: "10", ok: true},
		{name: "primitive wins over reference", payload: `{"value":"X1","referencedObject":{"objectKey":"R"}}`, kind: ValueKindPrimitive, resolved: "X1", ok: true},
		{name: "reference wins over status", payload: `{"referencedObject":{"objectKey":"R"},"status":{"name":"S"}}`, kind: ValueKindReference, resolved: "R", ok: true},
		{name: "empty object", payload: `{}`, kind: ValueKindUnknown, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &v))
			assert.Equal(t, tt.kind, v.Kind())

			got, ok := v.Resolve()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.resolved, got)
		})
	}
}

func TestValue_UnmarshalJSON_Invalid(t *testing.T) {
	var v Value
	assert.Error(t, json.Unmarshal([]byte(`{"value":"unterminated}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &v))
}

func TestValue_MarshalJSON_KeepsShape(t *testing.T) {
	values := []Value{
		StringValue("SN1"),
		NumberValue(7),
		BoolValue(true),
		brandRef("BRAND-1", "999", "Constructeur"),
		StatusValue(Status{ID: "1", Name: "Actif"}),
		{},
	}

	for _, v := range values {
		data, err := json.Marshal(v)
		require.NoError(t, err)

		var back Value
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, v.Kind(), back.Kind(), string(data))

		want, wantOK := v.Resolve()
		got, gotOK := back.Resolve()
		assert.Equal(t, wantOK, gotOK)
		assert.Equal(t, want, got)
	}
}

func TestObject_UnmarshalJSON(t *testing.T) {
	payload := `{
		"id": "1001",
		"objectKey": "PARC-1001",
		"objectTypeId": "23",
		"attributes": [
			{"objectTypeAttributeId": "201", "objectAttributeValues": [{"value": "SN1234AB", "displayValue": "SN1234AB"}]},
			{"objectTypeAttributeId": "202", "objectAttributeValues": [{"referencedObject": {"id": "5", "objectKey": "CONST-5", "objectType": {"id": "7", "name": "Constructeur"}}}]}
		]
	}`

	var obj Object
	require.NoError(t, json.Unmarshal([]byte(payload), &obj))
	assert.Equal(t, "1001", obj.ID)
	require.Len(t, obj.Attributes, 2)

	ref, ok := obj.Attributes[1].Values[0].Reference()
	require.True(t, ok)
	assert.Equal(t, "Constructeur", ref.TypeName())
}
