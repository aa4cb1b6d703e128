package pddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSExpr(t *testing.T) {
	t.Run("parses a nested list", func(t *testing.T) {
		lex := NewLexer("(and (on a b) (not (clear b)))", "test")
		e, err := ParseSExpr(lex)
		require.NoError(t, err)
		assert.False(t, e.IsAtom)
		assert.Equal(t, "and", e.Children[0].Atom)
		assert.Equal(t, "(on a b)", e.Children[1].String())
		assert.True(t, Tagged(e.Children[2], "not"))
	})

	t.Run("round-trips through String", func(t *testing.T) {
		src := "(increase (money ?a) 10)"
		lex := NewLexer(src, "test")
		e, err := ParseSExpr(lex)
		require.NoError(t, err)
		assert.Equal(t, src, e.String())
	})

	t.Run("errors on unclosed paren", func(t *testing.T) {
		lex := NewLexer("(foo bar", "test")
		_, err := ParseSExpr(lex)
		require.Error(t, err)
		var lexErr *LexError
		assert.ErrorAs(t, err, &lexErr)
	})

	t.Run("errors on unmatched close paren", func(t *testing.T) {
		lex := NewLexer(")", "test")
		_, err := ParseSExpr(lex)
		require.Error(t, err)
	})
}

func TestTagged(t *testing.T) {
	t.Run("true for matching list head", func(t *testing.T) {
		e, err := ParseSExprString("(and a b)", "test")
		require.NoError(t, err)
		assert.True(t, Tagged(e, "and"))
		assert.False(t, Tagged(e, "or"))
	})

	t.Run("false for atoms", func(t *testing.T) {
		e, err := ParseSExprString("and", "test")
		require.NoError(t, err)
		assert.False(t, Tagged(e, "and"))
	})
}
