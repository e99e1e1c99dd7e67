package docx

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCustomPropertyAllKinds(t *testing.T) {
	when := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		name  string
		value PropertyValue
		want  string
	}{
		{"Title", Text("quarterly report"), "quarterly report"},
		{"Reviewed", YesNo(true), "true"},
		{"Revision", Integer(7), "7"},
		{"Ratio", Double(0.5), "0.5"},
		{"ReviewedAt", DateTime(when), "2024-05-01T12:30:00Z"},
	}

	doc := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, existed, err := doc.SetCustomProperty(tt.name, tt.value)
			require.NoError(t, err)
			assert.False(t, existed)

			got, ok := doc.CustomProperty(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetCustomPropertyValueTypeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		kind  PropertyKind
		value interface{}
	}{
		{"string for integer", PropertyInteger, "42"},
		{"string for double", PropertyDouble, "0.5"},
		{"int for yesno", PropertyYesNo, 1},
		{"string for datetime", PropertyDateTime, "2024-05-01"},
		{"float for integer", PropertyInteger, 4.2},
		{"int out of 32-bit range", PropertyInteger, int64(1) << 40},
	}

	doc := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := doc.SetCustomPropertyValue("P", tt.kind, tt.value)
			require.Error(t, err)
			assert.True(t, IsPropertyTypeError(err), "want PropertyTypeError, got %v", err)

			_, ok := doc.CustomProperty("P")
			assert.False(t, ok, "mismatch must not write anything")
		})
	}
}

func TestSetCustomPropertyValueTextAcceptsAnything(t *testing.T) {
	doc := New()
	_, _, err := doc.SetCustomPropertyValue("N", PropertyText, 42)
	require.NoError(t, err)
	got, ok := doc.CustomProperty("N")
	require.True(t, ok)
	assert.Equal(t, "42", got, "non-string text values are stringified")
}

func TestSetCustomPropertyOverwriteReturnsPrevious(t *testing.T) {
	doc := New()

	_, existed, err := doc.SetCustomProperty("Revision", Integer(1))
	require.NoError(t, err)
	assert.False(t, existed)

	previous, existed, err := doc.SetCustomProperty("Revision", Integer(2))
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, "1", previous)

	got, ok := doc.CustomProperty("Revision")
	require.True(t, ok)
	assert.Equal(t, "2", got)
}

func TestPropertyIDsStayContiguous(t *testing.T) {
	for _, count := range []int{1, 2, 5} {
		t.Run(fmt.Sprintf("%d properties", count), func(t *testing.T) {
			doc := New()
			for i := 0; i < count; i++ {
				_, _, err := doc.SetCustomProperty(fmt.Sprintf("p%d", i), Integer(int32(i)))
				require.NoError(t, err)
			}
			// Overwrite and remove in the middle to force renumbering.
			_, _, err := doc.SetCustomProperty("p0", Text("again"))
			require.NoError(t, err)
			if count > 1 {
				_, err := doc.RemoveCustomProperty("p1")
				require.NoError(t, err)
			}

			props, err := doc.CustomProperties()
			require.NoError(t, err)
			for i, p := range props {
				assert.Equal(t, i+2, p.PID, "property %q", p.Name)
			}
		})
	}
}

func TestRemoveCustomProperty(t *testing.T) {
	doc := New()
	_, _, err := doc.SetCustomProperty("Gone", Text("x"))
	require.NoError(t, err)

	removed, err := doc.RemoveCustomProperty("Gone")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = doc.RemoveCustomProperty("Gone")
	require.NoError(t, err)
	assert.False(t, removed)

	_, ok := doc.CustomProperty("Gone")
	assert.False(t, ok)
}

func TestRemoveCustomPropertySurvivesRoundTrip(t *testing.T) {
	doc := New(WithLogger(NewLogger(nil, LogOff)))
	_, _, err := doc.SetCustomProperty("Gone", Text("x"))
	require.NoError(t, err)
	_, err = doc.Bytes()
	require.NoError(t, err)

	removed, err := doc.RemoveCustomProperty("Gone")
	require.NoError(t, err)
	require.True(t, removed)

	data, err := doc.Bytes()
	require.NoError(t, err)
	reopened, err := OpenBytes(data, WithLogger(NewLogger(nil, LogOff)))
	require.NoError(t, err)

	_, ok := reopened.CustomProperty("Gone")
	assert.False(t, ok, "removed property must not survive save/reopen")
	_, hasPart := reopened.parts[partCustomProps]
	assert.False(t, hasPart, "empty custom properties part must be dropped")
	assert.NotContains(t, string(reopened.parts[partContentTypes]), partCustomProps)
	assert.NotContains(t, string(reopened.parts[partPackageRels]), partCustomProps)
}

func TestRemoveSomeCustomPropertiesKeepsPart(t *testing.T) {
	doc := New(WithLogger(NewLogger(nil, LogOff)))
	_, _, err := doc.SetCustomProperty("Keep", Text("1"))
	require.NoError(t, err)
	_, _, err = doc.SetCustomProperty("Drop", Text("2"))
	require.NoError(t, err)
	_, err = doc.Bytes()
	require.NoError(t, err)

	_, err = doc.RemoveCustomProperty("Drop")
	require.NoError(t, err)

	data, err := doc.Bytes()
	require.NoError(t, err)
	reopened, err := OpenBytes(data, WithLogger(NewLogger(nil, LogOff)))
	require.NoError(t, err)

	value, ok := reopened.CustomProperty("Keep")
	require.True(t, ok)
	assert.Equal(t, "1", value)
	_, ok = reopened.CustomProperty("Drop")
	assert.False(t, ok)
}

func TestParsePropertyKind(t *testing.T) {
	kind, err := ParsePropertyKind("integer")
	require.NoError(t, err)
	assert.Equal(t, PropertyInteger, kind)

	_, err = ParsePropertyKind("complex")
	assert.Error(t, err)
}
