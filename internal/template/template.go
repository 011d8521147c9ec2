// Package template implements the marker-based text expansion used for
// scaffold file contents.
//
// The syntax is a small mustache subset: {{name}} substitutes a scalar,
// {{#name}}...{{/name}} emits its body when name is bound to a true
// boolean, and emits the body once per element when name is bound to a
// list of records. Expansion is total: unresolved or malformed markers
// pass through verbatim.
package template

import "strings"

// Bindings maps marker names to values. Supported value types are
// string (scalar substitution), bool (conditional sections) and
// []Bindings (list sections). Any other type leaves markers unresolved.
type Bindings map[string]any

// List is a convenience constructor for list-of-record bindings.
func List(elems ...Bindings) []Bindings {
	return elems
}

// Expand renders template text against the given bindings. It is a pure
// function and never fails; see the package comment for the pass-through
// policy on unresolved markers.
func Expand(text string, bindings Bindings) string {
	nodes := parse(lex(text))

	var b strings.Builder
	b.Grow(len(text))
	evalNodes(&b, nodes, bindings)
	return b.String()
}

func evalNodes(b *strings.Builder, nodes []node, bindings Bindings) {
	for _, n := range nodes {
		switch n := n.(type) {
		case literalNode:
			b.WriteString(n.text)

		case variableNode:
			if v, ok := bindings[n.name].(string); ok {
				b.WriteString(v)
			} else {
				// Unbound or non-scalar: verbatim pass-through.
				b.WriteString(n.raw)
			}

		case sectionNode:
			evalSection(b, n, bindings)
		}
	}
}

// evalSection renders a section span. Boolean bindings take precedence
// over list bindings because they are checked first; an unbound section
// behaves like a false boolean and disappears entirely.
func evalSection(b *strings.Builder, s sectionNode, bindings Bindings) {
	switch v := bindings[s.name].(type) {
	case bool:
		if v {
			evalNodes(b, s.body, bindings)
		}
	case []Bindings:
		for _, elem := range v {
			// Inner markers resolve against the element only, not the
			// enclosing bindings.
			evalNodes(b, s.body, elem)
		}
	}
}
