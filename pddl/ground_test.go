package pddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGround(t *testing.T) {
	t.Run("zero-parameter action grounds to exactly one", func(t *testing.T) {
		d := &Domain{Actions: []Action{{Name: "noop"}}}
		p := &Problem{Objects: []string{"a", "b"}}
		ground := Ground(d, p)
		require.Len(t, ground, 1)
		assert.Equal(t, "noop()", ground[0].String())
	})

	t.Run("n-parameter action grounds to the cartesian product", func(t *testing.T) {
		d, err := ParseDomain(moveDomainSrc, "test")
		require.NoError(t, err)
		p := &Problem{Objects: []string{"a", "b"}}
		ground := Ground(d, p)
		require.Len(t, ground, 4)

		names := make(map[string]bool)
		for _, g := range ground {
			names[g.String()] = true
		}
		assert.True(t, names["move(a,b)"])
		assert.True(t, names["move(b,a)"])
		assert.True(t, names["move(a,a)"])
		assert.True(t, names["move(b,b)"])
	})

	t.Run("substitution produces no remaining variables", func(t *testing.T) {
		d, err := ParseDomain(moveDomainSrc, "test")
		require.NoError(t, err)
		p := &Problem{Objects: []string{"a", "b"}}
		for _, g := range Ground(d, p) {
			for _, pre := range g.Preconditions {
				for _, arg := range pre.Args {
					assert.False(t, arg.IsVariable)
				}
			}
			for _, eff := range g.Effects {
				for _, arg := range eff.Predicate.Args {
					assert.False(t, arg.IsVariable)
				}
			}
		}
	})
}

func TestSubstitute_TokenSafety(t *testing.T) {
	t.Run("replaces a variable at a token boundary", func(t *testing.T) {
		binding := map[string]string{"?a": "alice"}
		assert.Equal(t, "(money alice)", substitute("(money ?a)", binding))
	})

	t.Run("does not replace a variable that is a substring of a longer name", func(t *testing.T) {
		binding := map[string]string{"?a": "alice"}
		assert.Equal(t, "(money ?ab)", substitute("(money ?ab)", binding))
	})
}

func TestBuildInitialState(t *testing.T) {
	t.Run("converts an (= (fn args) N) fact into a fluent", func(t *testing.T) {
		src := `(define (problem p)
		  (:domain d)
		  (:objects alice)
		  (:init (= (money alice) 0))
		  (:goal (done)))`
		p, err := ParseProblem(src, "test")
		require.NoError(t, err)

		ws := BuildInitialState(p)
		assert.Equal(t, 0, ws.GetFluent("money(alice)"))
		assert.True(t, ws.HasFluent("money(alice)"))
		assert.False(t, ws.Holds("=", []string{"(money alice)", "0"}))
	})

	t.Run("passes ordinary facts through unchanged", func(t *testing.T) {
		src := `(define (problem p)
		  (:domain d)
		  (:objects a)
		  (:init (at a))
		  (:goal (done)))`
		p, err := ParseProblem(src, "test")
		require.NoError(t, err)

		ws := BuildInitialState(p)
		assert.True(t, ws.Holds("at", []string{"a"}))
	})
}
