package minigu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	minigu "github.com/minigu-db/minigu-go"
)

func TestGraphSchemaFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		schema *minigu.GraphSchema
		want   string
	}{
		{
			name: "single element",
			schema: &minigu.GraphSchema{
				Elements: []minigu.SchemaElement{
					{
						Alias: "p",
						Label: "Person",
						Properties: []minigu.PropertyType{
							{Name: "name", Type: "STRING"},
							{Name: "age", Type: "INT64"},
						},
					},
				},
			},
			want: "(p :Person {name STRING, age INT64})",
		},
		{
			name: "alias defaults to label",
			schema: &minigu.GraphSchema{
				Elements: []minigu.SchemaElement{
					{
						Label:      "City",
						Properties: []minigu.PropertyType{{Name: "name", Type: "STRING"}},
					},
				},
			},
			want: "(City :City {name STRING})",
		},
		{
			name: "multiple elements joined",
			schema: &minigu.GraphSchema{
				Elements: []minigu.SchemaElement{
					{Label: "Person", Properties: []minigu.PropertyType{{Name: "name", Type: "STRING"}}},
					{Label: "KNOWS"},
				},
			},
			want: "(Person :Person {name STRING}); (KNOWS :KNOWS {})",
		},
		{
			name:   "nil schema",
			schema: nil,
			want:   "",
		},
		{
			name:   "empty schema",
			schema: &minigu.GraphSchema{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.schema.Format())
		})
	}
}
