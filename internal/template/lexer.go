package template

import "strings"

// tokenKind identifies the lexical class of a token.
type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenVariable
	tokenSectionOpen
	tokenSectionClose
)

// token is one lexical unit of a template.
type token struct {
	kind tokenKind

	// name is the marker name for variable and section tokens.
	name string

	// text is the raw source text. For marker tokens this is the full
	// "{{...}}" span, preserved so unresolved markers can pass through
	// verbatim.
	text string
}

const (
	markerOpen  = "{{"
	markerClose = "}}"
)

// isMarkerName reports whether s is a valid marker name. Anything else
// between double braces is treated as literal text, which keeps source
// code that happens to contain braces intact.
func isMarkerName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

// lex splits template text into a flat token stream. It never fails:
// malformed markers become literal tokens.
func lex(text string) []token {
	var tokens []token

	for len(text) > 0 {
		open := strings.Index(text, markerOpen)
		if open < 0 {
			tokens = append(tokens, token{kind: tokenLiteral, text: text})
			break
		}
		if open > 0 {
			tokens = append(tokens, token{kind: tokenLiteral, text: text[:open]})
			text = text[open:]
		}

		end := strings.Index(text[len(markerOpen):], markerClose)
		if end < 0 {
			// Unterminated marker: the rest is literal.
			tokens = append(tokens, token{kind: tokenLiteral, text: text})
			break
		}

		inner := text[len(markerOpen) : len(markerOpen)+end]
		raw := text[:len(markerOpen)+end+len(markerClose)]
		text = text[len(raw):]

		switch {
		case strings.HasPrefix(inner, "#") && isMarkerName(inner[1:]):
			tokens = append(tokens, token{kind: tokenSectionOpen, name: inner[1:], text: raw})
		case strings.HasPrefix(inner, "/") && isMarkerName(inner[1:]):
			tokens = append(tokens, token{kind: tokenSectionClose, name: inner[1:], text: raw})
		case isMarkerName(inner):
			tokens = append(tokens, token{kind: tokenVariable, name: inner, text: raw})
		default:
			tokens = append(tokens, token{kind: tokenLiteral, text: raw})
		}
	}

	return tokens
}
