package jiraasset

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	serialNumberPattern = regexp.MustCompile(`(?i)^[A-Z0-9]{4,20}$`)
	internalIDPattern   = regexp.MustCompile(`(?i)^PI-?\d+$`)
	modelPattern        = regexp.MustCompile(`(?i)^(Precision|Latitude|ThinkPad|MacBook|Surface|EliteBook|ProBook|Inspiron|XPS)`)

	brandTypeKeywords = []string{"constructeur", "brand", "manufacturer"}
)

// DetectedField records which attribute a field was bound to and the sample value
// that triggered the rule.
type DetectedField struct {
	Field       Field  `json:"field"`
	AttributeID string `json:"attributeId"`
	Sample      string `json:"sample,omitempty"`
}

// Detection is the outcome of DetectMapping. Missing lists the detectable fields no
// attribute satisfied; callers decide whether a partial mapping is usable.
type Detection struct {
	Mapping        AttributeMapping `json:"mapping"`
	Detected       []DetectedField  `json:"detected"`
	Missing        []Field          `json:"missing"`
	SampleID       string           `json:"sampleId,omitempty"`
	IgnoredSamples int              `json:"ignoredSamples"`
}

// Complete reports whether every detectable field was found.
func (d Detection) Complete() bool {
	return len(d.Missing) == 0
}

// Has reports whether f was detected.
func (d Detection) Has(f Field) bool {
	return d.Mapping.Get(f) != ""
}

// DetectMapping guesses attribute ids from the first sample only. Attributes are
// walked in declared order using their first value, and each field keeps its first
// match. Rules are independent: one attribute may satisfy several of them.
func DetectMapping(samples []Object) Detection {
	d := Detection{}
	if len(samples) == 0 {
		d.Missing = append(d.Missing, DetectableFields...)
		return d
	}

	sample := &samples[0]
	d.SampleID = sample.ID
	d.IgnoredSamples = len(samples) - 1

	bind := func(f Field, attrID, sample string) {
		d.Mapping.Set(f, attrID)
		d.Detected = append(d.Detected, DetectedField{Field: f, AttributeID: attrID, Sample: sample})
	}

	for i := range sample.Attributes {
		attr := &sample.Attributes[i]
		first, ok := attr.First()
		if !ok {
			continue
		}
		attrID := attr.ObjectTypeAttributeID
		text := first.truthyText()

		if d.Mapping.SerialNumberAttrID == "" && serialNumberPattern.MatchString(text) {
			bind(FieldSerialNumber, attrID, text)
		}
		if d.Mapping.InternalIDAttrID == "" && internalIDPattern.MatchString(text) {
			bind(FieldInternalID, attrID, text)
		}

		if ref, ok := first.Reference(); ok && d.Mapping.BrandAttrID == "" && isBrandType(ref.TypeName()) {
			label, _ := first.Resolve()
			bind(FieldBrand, attrID, label)
		}

		if d.Mapping.ModelAttrID == "" && utf8.RuneCountInString(text) > 2 && modelPattern.MatchString(text) {
			bind(FieldModel, attrID, text)
		}

		if status, ok := first.Status(); ok && d.Mapping.StatusAttrID == "" {
			bind(FieldStatus, attrID, status.Name)
		}
	}

	for _, f := range DetectableFields {
		if !d.Has(f) {
			d.Missing = append(d.Missing, f)
		}
	}
	return d
}

func isBrandType(typeName string) bool {
	name := strings.ToLower(typeName)
	for _, kw := range brandTypeKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
