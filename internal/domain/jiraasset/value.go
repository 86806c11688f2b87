package jiraasset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	// ValueKindUnknown covers empty or unrecognised payloads, including object-shaped
	// plain values. It never resolves to a string.
	ValueKindUnknown ValueKind = iota
	ValueKindPrimitive
	ValueKindReference
	ValueKindStatus
)

func (k ValueKind) String() string {
	switch k {
	case ValueKindPrimitive:
		return "primitive"
	case ValueKindReference:
		return "reference"
	case ValueKindStatus:
		return "status"
	default:
		return "unknown"
	}
}

// PrimitiveKind refines ValueKindPrimitive.
type PrimitiveKind uint8

const (
	PrimitiveString PrimitiveKind = iota
	PrimitiveNumber
	PrimitiveBool
)

// Value is a single attribute value. Exactly one variant is populated and the
// variant is fixed at construction (or decoding) time.
type Value struct {
	kind ValueKind

	primKind PrimitiveKind
	str      string
	num      float64
	boolean  bool

	ref    ReferencedObject
	status Status
}

func StringValue(s string) Value {
	return Value{kind: ValueKindPrimitive, primKind: PrimitiveString, str: s}
}

func NumberValue(n float64) Value {
	return Value{kind: ValueKindPrimitive, primKind: PrimitiveNumber, num: n}
}

func BoolValue(b bool) Value {
	return Value{kind: ValueKindPrimitive, primKind: PrimitiveBool, boolean: b}
}

func ReferenceValue(ref ReferencedObject) Value {
	return Value{kind: ValueKindReference, ref: ref}
}

func StatusValue(s Status) Value {
	return Value{kind: ValueKindStatus, status: s}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

// Primitive returns the primitive kind when the value is a primitive.
func (v Value) Primitive() (PrimitiveKind, bool) {
	return v.primKind, v.kind == ValueKindPrimitive
}

func (v Value) Reference() (ReferencedObject, bool) {
	return v.ref, v.kind == ValueKindReference
}

func (v Value) Status() (Status, bool) {
	return v.status, v.kind == ValueKindStatus
}

// PrimitiveText is the string form of a primitive: strings as-is, numbers in their
// shortest decimal form, booleans as "true"/"false".
func (v Value) PrimitiveText() (string, bool) {
	if v.kind != ValueKindPrimitive {
		return "", false
	}
	switch v.primKind {
	case PrimitiveNumber:
		return formatNumber(v.num), true
	case PrimitiveBool:
		return strconv.FormatBool(v.boolean), true
	default:
		return v.str, true
	}
}

// Resolve turns the value into a display string. References resolve to their
// object key, then id. Statuses resolve to their name, then id. A primitive always
// resolves, even to "".
func (v Value) Resolve() (string, bool) {
	switch v.kind {
	case ValueKindPrimitive:
		return v.PrimitiveText()
	case ValueKindReference:
		return firstNonEmpty(v.ref.ObjectKey, v.ref.ID)
	case ValueKindStatus:
		return firstNonEmpty(v.status.Name, v.status.ID)
	default:
		return "", false
	}
}

// truthyText is the text used by pattern based detection. Falsy primitives
// (empty string, zero, false) and non-primitives produce "".
func (v Value) truthyText() string {
	if v.kind != ValueKindPrimitive {
		return ""
	}
	switch v.primKind {
	case PrimitiveNumber:
		if v.num == 0 || math.IsNaN(v.num) {
			return ""
		}
	case PrimitiveBool:
		if !v.boolean {
			return ""
		}
	}
	s, _ := v.PrimitiveText()
	return s
}

func firstNonEmpty(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if c != "" {
			return c, true
		}
	}
	return "", false
}

func formatNumber(n float64) string {
	if math.IsInf(n, 1) {
		return "Infinity"
	}
	if math.IsInf(n, -1) {
		return "-Infinity"
	}
	if math.IsNaN(n) {
		return "NaN"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

type wireValue struct {
	Value            json.RawMessage   `json:"value,omitempty"`
	DisplayValue     string            `json:"displayValue,omitempty"`
	ReferencedObject *ReferencedObject `json:"referencedObject,omitempty"`
	Status           *Status           `json:"status,omitempty"`
}

// UnmarshalJSON picks the variant in priority order: plain value, referenced
// object, status.
func (v *Value) UnmarshalJSON(data []byte) error {
	var w wireValue
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode attribute value: %w", err)
	}

	if prim, ok, err := decodePrimitive(w.Value); err != nil {
		return err
	} else if ok {
		*v = prim
		return nil
	}

	switch {
	case w.ReferencedObject != nil:
		*v = ReferenceValue(*w.ReferencedObject)
	case w.Status != nil:
		*v = StatusValue(*w.Status)
	default:
		*v = Value{}
	}
	return nil
}

func decodePrimitive(raw json.RawMessage) (Value, bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Value{}, false, nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, false, fmt.Errorf("decode string value: %w", err)
		}
		return StringValue(s), true, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return Value{}, false, fmt.Errorf("decode boolean value: %w", err)
		}
		return BoolValue(b), true, nil
	case 'n', '{', '[':
		return Value{}, false, nil
	default:
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			return Value{}, false, fmt.Errorf("decode number value: %w", err)
		}
		return NumberValue(n), true, nil
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueKindPrimitive:
		var raw any
		switch v.primKind {
		case PrimitiveNumber:
			raw = v.num
		case PrimitiveBool:
			raw = v.boolean
		default:
			raw = v.str
		}
		return json.Marshal(map[string]any{"value": raw})
	case ValueKindReference:
		return json.Marshal(map[string]any{"referencedObject": v.ref})
	case ValueKindStatus:
		return json.Marshal(map[string]any{"status": v.status})
	default:
		return []byte("{}"), nil
	}
}
