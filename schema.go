package minigu

import (
	"fmt"
	"strings"
)

// GraphSchema describes the vertex and edge types of a graph, used when
// creating a graph with an explicit schema. See the gql package for parsing
// schema DDL text into this form.
type GraphSchema struct {
	Elements []SchemaElement
}

// SchemaElement is one vertex or edge type definition.
type SchemaElement struct {
	// Alias is the element binding name. Defaults to the label when empty.
	Alias string

	// Label is the vertex/edge type name.
	Label string

	// Properties are the typed properties of this element, in order.
	Properties []PropertyType
}

// PropertyType is a property name paired with its engine type name
// (e.g. STRING, INT64, BOOL).
type PropertyType struct {
	Name string
	Type string
}

// Format renders the schema as the DDL text accepted by the engine's
// create-graph surface: "(alias :Label {name TYPE, ...})" per element,
// "; "-joined.
func (s *GraphSchema) Format() string {
	if s == nil || len(s.Elements) == 0 {
		return ""
	}

	elements := make([]string, 0, len(s.Elements))

	for _, e := range s.Elements {
		alias := e.Alias
		if alias == "" {
			alias = e.Label
		}

		props := make([]string, 0, len(e.Properties))
		for _, p := range e.Properties {
			props = append(props, p.Name+" "+p.Type)
		}

		elements = append(elements,
			fmt.Sprintf("(%s :%s {%s})", alias, e.Label, strings.Join(props, ", ")))
	}

	return strings.Join(elements, "; ")
}
