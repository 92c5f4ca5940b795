package minigu

import "strings"

// Kind categorizes a failure into the layer's closed error taxonomy.
// Callers branch on Kind, never on message text: the engine reports
// failures as free text, and messages are not part of the contract.
type Kind int

// The closed set of error kinds.
const (
	// KindUnknown is the zero value, returned by KindOf for errors that
	// did not originate from this layer.
	KindUnknown Kind = iota

	// KindConnection covers engine allocation/configuration failures and
	// operations attempted on a closed or never-connected handle.
	KindConnection

	// KindSyntax covers query syntax errors reported by the engine.
	KindSyntax

	// KindTimeout covers query timeouts reported by the engine.
	KindTimeout

	// KindTransaction covers transaction failures, including the engine's
	// honest refusal: transactions are not yet implemented upstream.
	KindTransaction

	// KindNotImplemented covers features the engine does not support yet.
	KindNotImplemented

	// KindExecution is the default query-level failure kind.
	KindExecution

	// KindData covers data load/save failures.
	KindData

	// KindGraph covers graph/schema creation failures, including
	// identifiers that are empty after sanitization.
	KindGraph
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindSyntax:
		return "syntax"
	case KindTimeout:
		return "timeout"
	case KindTransaction:
		return "transaction"
	case KindNotImplemented:
		return "not implemented"
	case KindExecution:
		return "execution"
	case KindData:
		return "data"
	case KindGraph:
		return "graph"
	default:
		return "unknown"
	}
}

// ClassifyMessage maps a free-text engine failure message to a Kind.
//
// The match is case-insensitive substring containment with first-match-wins
// priority, evaluated in a fixed order. The order is a contract: a message
// containing both "syntax" and "timeout" classifies as KindSyntax because
// the syntax rule is checked first. ClassifyMessage never fails; messages
// matching no rule classify as KindExecution.
func ClassifyMessage(msg string) Kind {
	m := strings.ToLower(msg)

	switch {
	case strings.Contains(m, "syntax") || strings.Contains(m, "unexpected"):
		return KindSyntax
	case strings.Contains(m, "timeout"):
		return KindTimeout
	case containsAny(m, "transaction", "txn", "commit", "rollback"):
		return KindTransaction
	case strings.Contains(m, "not implemented") || strings.Contains(m, "not yet implemented"):
		return KindNotImplemented
	default:
		return KindExecution
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
