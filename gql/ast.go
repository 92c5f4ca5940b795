package gql

import "github.com/alecthomas/participle/v2/lexer"

// ----------------------------------------------------------------------------
// Graph type DDL AST
//
// The grammar covers the schema text accepted by the engine's create-graph
// surface: one parenthesized element per vertex/edge type, "; "-joined.
//
//	(person :Person { name STRING, age INT64 });
//	(city :City { name STRING })
// ----------------------------------------------------------------------------

// Schema is the root of a schema DDL parse tree.
type Schema struct {
	Pos      lexer.Position
	Elements []*Element `parser:"@@ ( ';' @@ )* ';'?"`
}

// Element is one vertex or edge type definition.
type Element struct {
	Pos        lexer.Position
	Alias      string      `parser:"'(' @Ident"`
	Label      string      `parser:"':' @Ident"`
	Properties []*Property `parser:"'{' ( @@ ( ',' @@ )* )? '}' ')'"`
}

// Property is a property name with its engine type name.
type Property struct {
	Pos  lexer.Position
	Name string `parser:"@Ident"`
	Type string `parser:"@Ident"`
}
