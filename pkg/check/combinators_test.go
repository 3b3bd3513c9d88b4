package check_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/typecheck/pkg/check"
)

func TestOptional(t *testing.T) {
	var nilMap map[string]any
	var nilPtr *string

	t.Run("Nullish Always Passes", func(t *testing.T) {
		for _, c := range []check.Checker{check.Number, check.String, check.Literal("x"), check.Array(check.Number)} {
			opt := check.Optional(c)
			assert.True(t, opt.Check(nil), c.String())
			assert.True(t, opt.Check(check.Undefined), c.String())
			assert.True(t, opt.Check(nilPtr), c.String())
		}
	})

	t.Run("Otherwise Defers To Operand", func(t *testing.T) {
		values := []any{0, "", "x", false, 1.5, math.NaN(), []any{}, nilMap, map[string]any{"a": 1}}
		for _, c := range []check.Checker{check.Number, check.String, check.Boolean, check.StrDict(check.Number)} {
			opt := check.Optional(c)
			for _, v := range values {
				assert.Equal(t, c.Check(v), opt.Check(v), "%s on %#v", c, v)
			}
		}
	})

	t.Run("Literal Operand", func(t *testing.T) {
		opt := check.Optional(check.L(3))
		assert.True(t, opt.Check(3))
		assert.True(t, opt.Check(nil))
		assert.False(t, opt.Check(4))
	})

	t.Run("Marks Optional", func(t *testing.T) {
		assert.True(t, check.Optional(check.String).IsOptional())
		assert.False(t, check.String.IsOptional())
		assert.False(t, check.Union(check.Optional(check.String)).IsOptional())
	})
}

func TestUnion(t *testing.T) {
	t.Run("Literals", func(t *testing.T) {
		typ := check.Union(check.L("literal1"), check.L(17), check.L(true))

		assert.True(t, typ.Check("literal1"))
		assert.True(t, typ.Check(17))
		assert.True(t, typ.Check(true))
		assert.False(t, typ.Check(false))
		assert.False(t, typ.Check(16))
		assert.False(t, typ.Check(""))
		assert.False(t, typ.Check([]any{16}))
	})

	t.Run("Mixed Operands", func(t *testing.T) {
		typ := check.Union(check.String, check.L(0))
		assert.True(t, typ.Check("anything"))
		assert.True(t, typ.Check(0))
		assert.False(t, typ.Check(1))
	})

	t.Run("Empty Rejects Everything", func(t *testing.T) {
		typ := check.Union()
		for _, v := range []any{nil, check.Undefined, 0, "", true, []any{}, map[string]any{}} {
			assert.False(t, typ.Check(v))
		}
	})

	t.Run("Short Circuits In Order", func(t *testing.T) {
		var calls []string
		probe := func(name string, result bool) check.Checker {
			return check.Func(name, func(any) bool {
				calls = append(calls, name)
				return result
			})
		}
		typ := check.Union(probe("a", false), probe("b", true), probe("c", true))
		assert.True(t, typ.Check(1))
		assert.Equal(t, []string{"a", "b"}, calls)
	})

	t.Run("Later Slice Mutation Has No Effect", func(t *testing.T) {
		ops := []check.Operand{check.L(1)}
		typ := check.Union(ops...)
		ops[0] = check.L(2)
		assert.True(t, typ.Check(1))
		assert.False(t, typ.Check(2))
	})

	t.Run("Nil Operand Never Matches", func(t *testing.T) {
		typ := check.Union(nil, check.L(1))
		assert.True(t, typ.Check(1))
		assert.False(t, typ.Check(nil))
	})
}

func TestIntersection(t *testing.T) {
	t.Run("Value Restriction Plus Structural Check", func(t *testing.T) {
		typ := check.Intersection(check.Union(check.L("literal1"), check.L(17), check.L(true)), check.Number)
		assert.True(t, typ.Check(17))
		assert.True(t, typ.Check(17.0))
		assert.False(t, typ.Check("literal1"))
		assert.False(t, typ.Check(true))
		assert.False(t, typ.Check(16))
	})

	t.Run("Literal Operands", func(t *testing.T) {
		assert.True(t, check.Intersection(check.L(1), check.Number).Check(1))
		assert.False(t, check.Intersection(check.L(1), check.L(2)).Check(1))
	})

	t.Run("Empty Accepts Everything", func(t *testing.T) {
		typ := check.Intersection()
		for _, v := range []any{nil, check.Undefined, 0, "", true, []any{}, map[string]any{}} {
			assert.True(t, typ.Check(v))
		}
	})

	t.Run("Short Circuits On First Rejection", func(t *testing.T) {
		calls := 0
		counted := check.Func("counted", func(any) bool {
			calls++
			return true
		})
		typ := check.Intersection(check.String, counted)
		assert.False(t, typ.Check(1))
		assert.Equal(t, 0, calls)
		assert.True(t, typ.Check("s"))
		assert.Equal(t, 1, calls)
	})
}

func TestCombinatorsArePure(t *testing.T) {
	build := func() check.Checker {
		return check.Array(check.Dict(check.Fields{
			"kind": check.Union(check.L("a"), check.L("b")),
			"n":    check.Optional(check.Number),
		}))
	}
	first, second := build(), build()

	values := []any{
		[]any{},
		[]any{map[string]any{"kind": "a"}},
		[]any{map[string]any{"kind": "c"}},
		[]any{map[string]any{"kind": "b", "n": "1"}},
		map[string]any{"kind": "a"},
		nil,
	}
	for _, v := range values {
		got := first.Check(v)
		assert.Equal(t, got, second.Check(v))
		assert.Equal(t, got, first.Check(v), "repeated checks must agree")
	}
	assert.Equal(t, first.String(), second.String())
}
