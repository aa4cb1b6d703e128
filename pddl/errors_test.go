package pddl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Run("LexError renders source:line: msg", func(t *testing.T) {
		err := &LexError{Source: "domain.pddl", Line: 3, Msg: "unclosed '('"}
		assert.Equal(t, "domain.pddl:3: unclosed '('", err.Error())
	})

	t.Run("BuildError renders source:line: msg", func(t *testing.T) {
		err := &BuildError{Source: "domain.pddl", Line: 1, Msg: "expected (define ...)"}
		assert.Equal(t, "domain.pddl:1: expected (define ...)", err.Error())
	})

	t.Run("EvalError names the unevaluable expression", func(t *testing.T) {
		err := &EvalError{Expr: "(unknown foo)"}
		assert.Equal(t, "cannot evaluate expression: (unknown foo)", err.Error())
	})

	t.Run("LoadError unwraps to the underlying OS error", func(t *testing.T) {
		inner := errors.New("no such file")
		err := &LoadError{Path: "missing.pddl", Err: inner}
		assert.ErrorIs(t, err, inner)
	})
}
