// Package minigu is the Go binding layer for the miniGU graph database
// engine. The engine itself is an external, natively compiled collaborator
// reached through the [Engine] interface; this package owns the connection
// lifecycle around a single engine instance, builds GQL statements from Go
// values, and classifies the engine's free-text failures into a closed,
// branchable error taxonomy.
//
// Callers interact through a facade bound to a calling convention:
// [Client] executes native calls directly on the caller's goroutine, while
// [AsyncClient] dispatches them and suspends the caller until the engine
// returns. Both share one implementation of the translation logic.
package minigu
