package minigu

import (
	"fmt"
	"strconv"
	"strings"
)

// LabelKey is the reserved record key naming the vertex/edge type.
const LabelKey = "label"

// DefaultLabel is used when a record carries no label entry.
const DefaultLabel = "Node"

// Property is a single named scalar in a Record.
type Property struct {
	Key   string
	Value any
}

// Record is an ordered property list used as the unit of data loading.
// Order matters: generated statements list properties in record order,
// which keeps statement text deterministic. A record may contain a reserved
// "label" entry naming its vertex/edge type; without one the label defaults
// to "Node". Records are value objects with no identity beyond their
// contents.
type Record []Property

// NewRecord builds a record from alternating key/value pairs.
func NewRecord(pairs ...any) Record {
	r := make(Record, 0, len(pairs)/2)

	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}

		r = append(r, Property{Key: key, Value: pairs[i+1]})
	}

	return r
}

// Label returns the record's label entry, or DefaultLabel if absent.
func (r Record) Label() string {
	for _, p := range r {
		if p.Key == LabelKey {
			if s, ok := p.Value.(string); ok && s != "" {
				return s
			}
		}
	}

	return DefaultLabel
}

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	for _, p := range r {
		if p.Key == key {
			return p.Value, true
		}
	}

	return nil, false
}

// BuildInsert converts records into GQL INSERT text, one
// "INSERT :<Label> { k: v, ... }" clause per record. Clauses for multiple
// records are joined with "; " so each is an independent statement.
// An empty record list produces an empty string.
func BuildInsert(records []Record) string {
	statements := make([]string, 0, len(records))

	for _, record := range records {
		var props []string

		for _, p := range record {
			if p.Key == LabelKey {
				continue
			}

			props = append(props, p.Key+": "+formatLiteral(p.Value))
		}

		statements = append(statements,
			fmt.Sprintf("INSERT :%s { %s }", record.Label(), strings.Join(props, ", ")))
	}

	return strings.Join(statements, "; ")
}

// BuildProcedureCall emits "CALL <name>('<arg>')" with arg passed through
// the identifier sanitizer before embedding.
func BuildProcedureCall(name, arg string) string {
	return fmt.Sprintf("CALL %s('%s')", name, SanitizeIdentifier(arg))
}

// formatLiteral renders one scalar as a GQL literal. Strings are
// single-quoted with embedded quotes doubled so a value can never terminate
// the quoted context early; numbers and booleans are bare; anything else is
// coerced to a string and quoted.
func formatLiteral(v any) string {
	switch t := v.(type) {
	case string:
		return quoteString(t)
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return quoteString(fmt.Sprint(v))
	}
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// SanitizeIdentifier keeps only [A-Za-z0-9_] characters, dropping the rest.
// An empty result means the input had no identifier content at all; callers
// must treat that as an invalid-identifier condition (KindGraph) rather than
// letting an empty identifier silently target no object or an unintended
// default.
func SanitizeIdentifier(s string) string {
	var b strings.Builder

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}

	return b.String()
}

// SanitizePath strips the literal characters ', ", ;, \n and \r, then
// removes occurrences of the two-character sequence "..".
//
// The ".." removal is a single non-recursive pass, not a fixed-point loop:
// adversarial inputs crafted so that removal re-forms a traversal sequence
// are not re-scanned. This documents the existing upstream behavior rather
// than silently strengthening it.
func SanitizePath(p string) string {
	for _, c := range []string{"'", `"`, ";", "\n", "\r"} {
		p = strings.ReplaceAll(p, c, "")
	}

	return strings.ReplaceAll(p, "..", "")
}
