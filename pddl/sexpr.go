package pddl

import "strings"

// SExpr is a node in the concrete syntax tree: either an atom (a leaf
// carrying text) or a list of children. Grounding and effect application
// re-parse serialized sub-expressions back into this shape.
type SExpr struct {
	IsAtom   bool
	Atom     string
	Children []SExpr
	Line     int
}

// Tagged reports whether e is a list whose first child is the atom tag —
// the dispatch test used throughout the AST builder for recognizing forms
// like (define ...) or (:action ...).
func Tagged(e SExpr, tag string) bool {
	return !e.IsAtom && len(e.Children) > 0 && e.Children[0].IsAtom && e.Children[0].Atom == tag
}

// ParseSExpr recursively reads one S-expression from lex.
func ParseSExpr(lex *Lexer) (SExpr, error) {
	tok := lex.Next()
	if tok.Text == "" {
		return SExpr{}, lex.errorf(tok.Line, "unexpected end of file")
	}
	if tok.Text == ")" {
		return SExpr{}, lex.errorf(tok.Line, "unexpected ')'")
	}

	if tok.Text == "(" {
		node := SExpr{IsAtom: false, Line: tok.Line}
		for {
			p := lex.Peek()
			if p.Text == "" {
				return SExpr{}, lex.errorf(p.Line, "unclosed '('")
			}
			if p.Text == ")" {
				lex.Next()
				break
			}
			child, err := ParseSExpr(lex)
			if err != nil {
				return SExpr{}, err
			}
			node.Children = append(node.Children, child)
		}
		return node, nil
	}

	return SExpr{IsAtom: true, Atom: tok.Text, Line: tok.Line}, nil
}

// ParseSExprString reads a single S-expression from a string, labelling
// lexer errors with source. It is the entry point the grounder and effect
// applier use to recover structure from a serialized sub-expression.
func ParseSExprString(src, source string) (SExpr, error) {
	lex := NewLexer(src, source)
	return ParseSExpr(lex)
}

// String serializes an SExpr back to source text. parse(serialize(e))
// always yields a node that serializes identically to e.
func (e SExpr) String() string {
	if e.IsAtom {
		return e.Atom
	}
	parts := make([]string, len(e.Children))
	for i, c := range e.Children {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}
