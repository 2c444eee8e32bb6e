// Package query builds Drive query-language expressions from typed clauses.
//
// Clauses are composed as an abstract tree and serialized to the files.list
// "q" syntax only when the final query string is needed. A nil Clause means
// "no constraint" and is dropped by And/Or, so callers can pass optional
// fragments without special-casing empties.
package query

import (
	"strings"
	"time"
)

// Clause is a single boolean predicate fragment of a Drive query.
type Clause interface {
	write(sb *strings.Builder)
}

type leaf struct {
	text string
}

func (l leaf) write(sb *strings.Builder) { sb.WriteString(l.text) }

type group struct {
	op    string // "and" | "or"
	parts []Clause
}

func (g group) write(sb *strings.Builder) {
	sb.WriteByte('(')
	for i, p := range g.parts {
		if i > 0 {
			sb.WriteByte(' ')
			sb.WriteString(g.op)
			sb.WriteByte(' ')
		}
		p.write(sb)
	}
	sb.WriteByte(')')
}

// escape sanitizes a literal before insertion into the query language.
// Drive treats backslash as the escape character inside quoted strings.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// NameContains matches files whose name contains term.
func NameContains(term string) Clause {
	return leaf{text: "name contains '" + escape(term) + "'"}
}

// FullTextContains matches files whose indexed content contains term.
func FullTextContains(term string) Clause {
	return leaf{text: "fullText contains '" + escape(term) + "'"}
}

// InParents matches files contained in the given folder.
func InParents(folderID string) Clause {
	return leaf{text: "'" + escape(folderID) + "' in parents"}
}

// NotTrashed excludes trashed files. Present in every built query.
func NotTrashed() Clause {
	return leaf{text: "trashed = false"}
}

// ModifiedAfter matches files modified strictly after t.
func ModifiedAfter(t time.Time) Clause {
	return leaf{text: "modifiedTime > '" + t.UTC().Format(time.RFC3339) + "'"}
}

// Or combines clauses disjunctively. Nil parts are dropped; a single
// surviving part is returned as-is; no parts yields nil.
func Or(parts ...Clause) Clause {
	return combine("or", parts)
}

// And combines clauses conjunctively with the same nil handling as Or.
func And(parts ...Clause) Clause {
	return combine("and", parts)
}

func combine(op string, parts []Clause) Clause {
	kept := make([]Clause, 0, len(parts))
	for _, p := range parts {
		if p != nil {
			kept = append(kept, p)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return group{op: op, parts: kept}
}

// Serialize renders a clause tree to the Drive query language.
// The outermost group is emitted without surrounding parentheses.
func Serialize(c Clause) string {
	if c == nil {
		return ""
	}
	var sb strings.Builder
	if g, ok := c.(group); ok && g.op == "and" {
		for i, p := range g.parts {
			if i > 0 {
				sb.WriteString(" and ")
			}
			p.write(&sb)
		}
		return sb.String()
	}
	c.write(&sb)
	return sb.String()
}
