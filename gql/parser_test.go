package gql_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	minigu "github.com/minigu-db/minigu-go"
	"github.com/minigu-db/minigu-go/gql"
)

func TestParseSchema(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ddl  string
		want *minigu.GraphSchema
	}{
		{
			name: "single element",
			ddl:  "(person :Person { name STRING, age INT64 })",
			want: &minigu.GraphSchema{
				Elements: []minigu.SchemaElement{
					{
						Alias: "person",
						Label: "Person",
						Properties: []minigu.PropertyType{
							{Name: "name", Type: "STRING"},
							{Name: "age", Type: "INT64"},
						},
					},
				},
			},
		},
		{
			name: "multiple elements with trailing semicolon",
			ddl:  "(p :Person { name STRING }); (c :City { name STRING });",
			want: &minigu.GraphSchema{
				Elements: []minigu.SchemaElement{
					{Alias: "p", Label: "Person", Properties: []minigu.PropertyType{{Name: "name", Type: "STRING"}}},
					{Alias: "c", Label: "City", Properties: []minigu.PropertyType{{Name: "name", Type: "STRING"}}},
				},
			},
		},
		{
			name: "empty property list",
			ddl:  "(knows :KNOWS {})",
			want: &minigu.GraphSchema{
				Elements: []minigu.SchemaElement{{Alias: "knows", Label: "KNOWS"}},
			},
		},
		{
			name: "line comments elided",
			ddl:  "// vertex types\n(p :Person { name STRING })",
			want: &minigu.GraphSchema{
				Elements: []minigu.SchemaElement{
					{Alias: "p", Label: "Person", Properties: []minigu.PropertyType{{Name: "name", Type: "STRING"}}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			schema, err := gql.ParseSchema(tt.ddl)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, schema.GraphSchema()); diff != "" {
				t.Errorf("schema mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSchemaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ddl  string
	}{
		{"missing label", "(person { name STRING })"},
		{"unclosed braces", "(person :Person { name STRING"},
		{"empty input", ""},
		{"property without type", "(p :Person { name })"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := gql.ParseSchema(tt.ddl)
			require.Error(t, err)
		})
	}
}

func TestParsedSchemaFormatsRoundTrip(t *testing.T) {
	t.Parallel()

	schema, err := gql.ParseSchema("(p :Person { name STRING, age INT64 }); (c :City { name STRING })")
	require.NoError(t, err)

	got := schema.GraphSchema().Format()
	assert.Equal(t, "(p :Person {name STRING, age INT64}); (c :City {name STRING})", got)
}

func TestNilSchemaGraphSchema(t *testing.T) {
	t.Parallel()

	var schema *gql.Schema
	assert.Nil(t, schema.GraphSchema())
}
