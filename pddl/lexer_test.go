package pddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer_Next(t *testing.T) {
	t.Run("splits parens and atoms", func(t *testing.T) {
		lex := NewLexer("(foo ?a bar)", "test")
		var got []string
		for {
			tok := lex.Next()
			if tok.Text == "" {
				break
			}
			got = append(got, tok.Text)
		}
		assert.Equal(t, []string{"(", "foo", "?a", "bar", ")"}, got)
	})

	t.Run("skips comments to end of line", func(t *testing.T) {
		lex := NewLexer("(foo ; a comment\nbar)", "test")
		var got []string
		for {
			tok := lex.Next()
			if tok.Text == "" {
				break
			}
			got = append(got, tok.Text)
		}
		assert.Equal(t, []string{"(", "foo", "bar", ")"}, got)
	})

	t.Run("tracks line numbers across newlines", func(t *testing.T) {
		lex := NewLexer("(foo\nbar\nbaz)", "test")
		lex.Next() // (
		lex.Next() // foo
		bar := lex.Next()
		baz := lex.Next()
		assert.Equal(t, 2, bar.Line)
		assert.Equal(t, 3, baz.Line)
	})

	t.Run("Peek does not advance", func(t *testing.T) {
		lex := NewLexer("(foo)", "test")
		first := lex.Peek()
		second := lex.Next()
		assert.Equal(t, first, second)
	})

	t.Run("empty text at end of file", func(t *testing.T) {
		lex := NewLexer("", "test")
		tok := lex.Next()
		assert.Equal(t, "", tok.Text)
	})
}
