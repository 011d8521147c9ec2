package template

// node is one element of a parsed template tree.
type node interface {
	isNode()
}

// literalNode is verbatim text.
type literalNode struct {
	text string
}

// variableNode is a scalar reference like {{name}}.
type variableNode struct {
	name string
	raw  string
}

// sectionNode is a span delimited by {{#name}} and {{/name}}. Whether it
// behaves as a boolean or a list section is decided at evaluation time by
// the binding's type.
type sectionNode struct {
	name string
	body []node
}

func (literalNode) isNode()  {}
func (variableNode) isNode() {}
func (sectionNode) isNode()  {}

// parse builds a node tree from a token stream. It never fails: a close
// marker with no matching open, or an open marker never closed, degrades
// to literal text.
func parse(tokens []token) []node {
	nodes, _, _ := parseNodes(tokens, 0, "")
	return nodes
}

// parseNodes consumes tokens from pos until it finds a close marker for
// closing (or runs out of tokens, when closing is empty or unmatched).
// Same-name nesting pairs each close marker with the innermost open.
func parseNodes(tokens []token, pos int, closing string) (nodes []node, next int, closed bool) {
	for pos < len(tokens) {
		tok := tokens[pos]
		switch tok.kind {
		case tokenLiteral:
			nodes = append(nodes, literalNode{text: tok.text})
			pos++

		case tokenVariable:
			nodes = append(nodes, variableNode{name: tok.name, raw: tok.text})
			pos++

		case tokenSectionOpen:
			body, after, ok := parseNodes(tokens, pos+1, tok.name)
			if ok {
				nodes = append(nodes, sectionNode{name: tok.name, body: body})
			} else {
				// Never closed: the open marker is literal text and its
				// would-be body joins this level.
				nodes = append(nodes, literalNode{text: tok.text})
				nodes = append(nodes, body...)
			}
			pos = after

		case tokenSectionClose:
			if tok.name == closing {
				return nodes, pos + 1, true
			}
			// Stray close marker: literal.
			nodes = append(nodes, literalNode{text: tok.text})
			pos++
		}
	}

	return nodes, pos, false
}
