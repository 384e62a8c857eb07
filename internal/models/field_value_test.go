package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayValue(t *testing.T) {
	url := "https://cdn.example.com/hero.jpg"
	label := "Spring Campaign"

	tests := []struct {
		name  string
		value PageFieldValue
		field FieldDefinition
		want  string
	}{
		{
			name:  "plain text passes through",
			value: PageFieldValue{Value: "hello"},
			field: FieldDefinition{Type: FieldText},
			want:  "hello",
		},
		{
			name:  "boolean true renders Yes",
			value: PageFieldValue{Value: "true"},
			field: FieldDefinition{Type: FieldBoolean},
			want:  "Yes",
		},
		{
			name:  "boolean loose truthy renders Yes",
			value: PageFieldValue{Value: "1"},
			field: FieldDefinition{Type: FieldBoolean},
			want:  "Yes",
		},
		{
			name:  "boolean false renders No",
			value: PageFieldValue{Value: "false"},
			field: FieldDefinition{Type: FieldBoolean},
			want:  "No",
		},
		{
			name:  "select resolves the option label",
			value: PageFieldValue{Value: "sm"},
			field: FieldDefinition{Type: FieldSelect, Options: `[{"value":"sm","label":"Small"}]`},
			want:  "Small",
		},
		{
			name:  "select with unknown value falls back to the raw value",
			value: PageFieldValue{Value: "xl"},
			field: FieldDefinition{Type: FieldSelect, Options: `[{"value":"sm","label":"Small"}]`},
			want:  "xl",
		},
		{
			name:  "file kind renders the file URL",
			value: PageFieldValue{FileURL: &url},
			field: FieldDefinition{Type: FieldImage},
			want:  url,
		},
		{
			name:  "relation renders the referenced label",
			value: PageFieldValue{RefLabel: &label},
			field: FieldDefinition{Type: FieldRelation},
			want:  label,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.DisplayValue(&tt.field))
		})
	}
}
