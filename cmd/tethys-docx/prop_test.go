package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tngraf/tethys-docx-go/pkg/docx"
)

func TestParsePropertyValue(t *testing.T) {
	tests := []struct {
		name string
		kind docx.PropertyKind
		text string
		want string
	}{
		{"text", docx.PropertyText, "hello", "hello"},
		{"yesno true", docx.PropertyYesNo, "true", "true"},
		{"yesno numeric", docx.PropertyYesNo, "1", "true"},
		{"integer", docx.PropertyInteger, "-42", "-42"},
		{"double", docx.PropertyDouble, "2.5", "2.5"},
		{"datetime", docx.PropertyDateTime, "2024-05-01T12:30:00Z", "2024-05-01T12:30:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parsePropertyValue(tt.kind, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.want, v.Serialized())
		})
	}
}

func TestParsePropertyValueInvalid(t *testing.T) {
	tests := []struct {
		name string
		kind docx.PropertyKind
		text string
	}{
		{"bad yesno", docx.PropertyYesNo, "maybe"},
		{"bad integer", docx.PropertyInteger, "4.2"},
		{"integer overflow", docx.PropertyInteger, "4294967296"},
		{"bad double", docx.PropertyDouble, "two"},
		{"bad datetime", docx.PropertyDateTime, "yesterday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePropertyValue(tt.kind, tt.text)
			assert.Error(t, err)
		})
	}
}
