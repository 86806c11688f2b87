package jiraasset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectMapping_SerialAndInternalID(t *testing.T) {
	samples := []Object{*asset("1",
		attr("101", StringValue("SN1234AB")),
		attr("102", StringValue("PI-5678")),
	)}

	d := DetectMapping(samples)

	assert.Equal(t, "101", d.Mapping.SerialNumberAttrID)
	assert.Equal(t, "102", d.Mapping.InternalIDAttrID)
	assert.Equal(t, "1", d.SampleID)
	assert.ElementsMatch(t, []Field{FieldBrand, FieldModel, FieldStatus}, d.Missing)
	assert.False(t, d.Complete())
}

func TestDetectMapping_AllFields(t *testing.T) {
	samples := []Object{*asset("1",
		attr("1", StringValue("Ordinateur portable de test")),
		attr("2", brandRef("CONST-1", "5", "Manufacturer list")),
		attr("3", StringValue("Latitude 5440")),
		attr("4", StringValue("5CG1234XYZ")),
		attr("5", StringValue("pi42")),
		attr("6", StatusValue(Status{ID: "1", Name: "En stock"})),
		attr("7", StringValue("ABCD9999")),
	)}

	d := DetectMapping(samples)

	assert.True(t, d.Complete())
	assert.Equal(t, AttributeMapping{
		SerialNumberAttrID: "4",
		BrandAttrID:        "2",
		ModelAttrID:        "3",
		StatusAttrID:       "6",
		InternalIDAttrID:   "5",
	}, d.Mapping)

	require.Len(t, d.Detected, 5)
	assert.Equal(t, DetectedField{Field: FieldBrand, AttributeID: "2", Sample: "CONST-1"}, d.Detected[0])
}

func TestDetectMapping_RulesAreIndependent(t *testing.T) {
	// "PI1234" is both a plausible serial and an internal id.
	samples := []Object{*asset("1", attr("9", StringValue("PI1234")))}

	d := DetectMapping(samples)

	assert.Equal(t, "9", d.Mapping.SerialNumberAttrID)
	assert.Equal(t, "9", d.Mapping.InternalIDAttrID)
}

func TestDetectMapping_OnlyFirstSample(t *testing.T) {
	samples := []Object{
		*asset("1", attr("1", StringValue("a b"))),
		*asset("2", attr("2", StringValue("SN1234AB"))),
		*asset("3"),
	}

	d := DetectMapping(samples)

	assert.True(t, d.Mapping.IsEmpty())
	assert.Equal(t, 2, d.IgnoredSamples)
	assert.Len(t, d.Missing, len(DetectableFields))
}

func TestDetectMapping_FalsyAndNonTextValues(t *testing.T) {
	samples := []Object{*asset("1",
		attr("1", NumberValue(0)),
		attr("2", BoolValue(false)),
		attr("3", brandRef("ABCD1234", "1", "Fournisseur")),
		attr("4"),
		attr("5", NumberValue(123456)),
	)}

	d := DetectMapping(samples)

	assert.Equal(t, "5", d.Mapping.SerialNumberAttrID)
	assert.Empty(t, d.Mapping.BrandAttrID)
}

func TestDetectMapping_ModelNeedsKnownPrefix(t *testing.T) {
	samples := []Object{*asset("1",
		attr("1", StringValue("Vostro 3520")),
		attr("2", StringValue("thinkpad t14")),
	)}

	d := DetectMapping(samples)

	assert.Equal(t, "2", d.Mapping.ModelAttrID)
}

func TestDetectMapping_NoSamples(t *testing.T) {
	d := DetectMapping(nil)

	assert.True(t, d.Mapping.IsEmpty())
	assert.Equal(t, DetectableFields, d.Missing)
	assert.Empty(t, d.SampleID)
}
