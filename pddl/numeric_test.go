package pddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	cases := []struct {
		in    string
		want  int
		wantOk bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-7", -7, true},
		{"", 0, false},
		{"-", 0, false},
		{"alice", 0, false},
		{"4a", 0, false},
	}
	for _, c := range cases {
		n, ok := parseInt(c.in)
		assert.Equal(t, c.wantOk, ok, "input %q", c.in)
		if ok {
			assert.Equal(t, c.want, n, "input %q", c.in)
		}
	}
}

func TestFluentKey(t *testing.T) {
	assert.Equal(t, "money(alice)", fluentKey("money", []string{"alice"}))
	assert.Equal(t, "distance(a,b)", fluentKey("distance", []string{"a", "b"}))
	assert.Equal(t, "x()", fluentKey("x", nil))
}

func TestSplitCall(t *testing.T) {
	t.Run("splits a serialized call", func(t *testing.T) {
		name, args, ok := splitCall("(distance a b)", "test")
		require.True(t, ok)
		assert.Equal(t, "distance", name)
		assert.Equal(t, []string{"a", "b"}, args)
	})

	t.Run("rejects an atom", func(t *testing.T) {
		_, _, ok := splitCall("alice", "test")
		assert.False(t, ok)
	})
}

func TestEvalNumericTolerant(t *testing.T) {
	ws := NewWorldState()
	ws.SetFluent("money(alice)", 100)

	t.Run("literal", func(t *testing.T) {
		assert.Equal(t, 42, evalNumericTolerant(ws, "42"))
	})
	t.Run("known fluent", func(t *testing.T) {
		assert.Equal(t, 100, evalNumericTolerant(ws, "(money alice)"))
	})
	t.Run("unknown fluent defaults to zero", func(t *testing.T) {
		assert.Equal(t, 0, evalNumericTolerant(ws, "(money bob)"))
	})
	t.Run("malformed expression defaults to zero", func(t *testing.T) {
		assert.Equal(t, 0, evalNumericTolerant(ws, "not-a-number"))
	})
}

func TestEvalNumericStrict(t *testing.T) {
	ws := NewWorldState()
	ws.SetFluent("money(alice)", 100)

	t.Run("literal", func(t *testing.T) {
		n, err := evalNumericStrict(ws, "42")
		require.NoError(t, err)
		assert.Equal(t, 42, n)
	})
	t.Run("known fluent", func(t *testing.T) {
		n, err := evalNumericStrict(ws, "(money alice)")
		require.NoError(t, err)
		assert.Equal(t, 100, n)
	})
	t.Run("malformed expression is a hard error", func(t *testing.T) {
		_, err := evalNumericStrict(ws, "not-a-number")
		require.Error(t, err)
		var evalErr *EvalError
		assert.ErrorAs(t, err, &evalErr)
	})
}
