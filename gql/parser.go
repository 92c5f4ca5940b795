// Package gql parses the graph type DDL dialect accepted by the miniGU
// engine. It covers only schema definitions; the full query grammar is the
// engine's own concern.
package gql

import (
	"github.com/alecthomas/participle/v2"

	minigu "github.com/minigu-db/minigu-go"
)

// Parser is the schema DDL parser instance.
var Parser = participle.MustBuild[Schema](
	participle.Lexer(SchemaLexer),
	participle.Elide("Whitespace", "LineComment"),
)

// ParseSchema parses schema DDL text into an AST.
func ParseSchema(ddl string) (*Schema, error) {
	return Parser.ParseString("", ddl)
}

// GraphSchema converts the AST into the binding layer's schema model.
func (s *Schema) GraphSchema() *minigu.GraphSchema {
	if s == nil {
		return nil
	}

	out := &minigu.GraphSchema{}

	for _, e := range s.Elements {
		element := minigu.SchemaElement{
			Alias: e.Alias,
			Label: e.Label,
		}

		for _, p := range e.Properties {
			element.Properties = append(element.Properties, minigu.PropertyType{
				Name: p.Name,
				Type: p.Type,
			})
		}

		out.Elements = append(out.Elements, element)
	}

	return out
}
