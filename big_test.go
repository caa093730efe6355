package shunt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessellane/shunt"
)

// TestContextEval verifies that the arbitrary-precision path agrees with
// float64 on exact cases.
func TestContextEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"num", "1", 1},
		{"precedence", "2+3*4", 14},
		{"paren", "(2+3)*4", 20},
		{"pow-right", "2^3^2", 512},
		{"sub-left", "8-3-2", 3},
		{"div", "7/2", 3.5},
		{"unary", "3*-2", -6},
		{"comma", "1,5+1,5", 3},
	}
	ctx := shunt.NewContext(shunt.Prec(64))
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := shunt.Parse(strings.NewReader(c.src))
			require.NoError(t, err)
			r := ctx.Eval(e)
			require.NoError(t, ctx.Err())
			require.NotNil(t, r)
			if q := ctx.Result(); r.Cmp(q) != 0 {
				t.Errorf("different results: Eval returned %g, Result returned %g", r, q)
			}
			f, _ := r.Float64()
			assert.InDelta(t, c.want, f, 1e-12)
		})
	}
}

func TestContextErrors(t *testing.T) {
	ctx := shunt.NewContext()
	t.Run("division-by-zero", func(t *testing.T) {
		e, err := shunt.Parse(strings.NewReader("1/0"))
		require.NoError(t, err)
		assert.Nil(t, ctx.Eval(e))
		var derr *shunt.DivideByZeroError
		require.ErrorAs(t, ctx.Err(), &derr)
		assert.Nil(t, ctx.Result())
	})
	t.Run("negative-base", func(t *testing.T) {
		// big.Float has no NaN, so this is an error here, unlike Eval.
		e, err := shunt.Parse(strings.NewReader("(-2)^0.5"))
		require.NoError(t, err)
		assert.Nil(t, ctx.Eval(e))
		var derr *shunt.DomainError
		require.ErrorAs(t, ctx.Err(), &derr)
		assert.Equal(t, "^", derr.Op)
	})
	t.Run("not-enough-operands", func(t *testing.T) {
		e, err := shunt.Parse(strings.NewReader("1+"))
		require.NoError(t, err)
		assert.Nil(t, ctx.Eval(e))
		var oerr *shunt.OperandError
		require.ErrorAs(t, ctx.Err(), &oerr)
	})
	t.Run("too-many-operands", func(t *testing.T) {
		e, err := shunt.Parse(strings.NewReader("1 2"))
		require.NoError(t, err)
		assert.Nil(t, ctx.Eval(e))
		var xerr *shunt.ExtraOperandError
		require.ErrorAs(t, ctx.Err(), &xerr)
	})
	t.Run("recovers", func(t *testing.T) {
		// A failed evaluation must not poison the context.
		e, err := shunt.Parse(strings.NewReader("2+2"))
		require.NoError(t, err)
		r := ctx.Eval(e)
		require.NoError(t, ctx.Err())
		require.NotNil(t, r)
		f, _ := r.Float64()
		assert.Equal(t, float64(4), f)
	})
}

func TestContextPrec(t *testing.T) {
	ctx := shunt.NewContext(shunt.Prec(128))
	assert.Equal(t, uint(128), ctx.Prec())
	clone := ctx.Clone(shunt.Prec(32))
	assert.Equal(t, uint(32), clone.Prec())
	assert.Equal(t, uint(128), ctx.Prec())

	e, err := shunt.Parse(strings.NewReader("1/3"))
	require.NoError(t, err)
	r := ctx.Eval(e)
	require.NotNil(t, r)
	assert.Equal(t, uint(128), r.Prec())
	r = clone.Eval(e)
	require.NotNil(t, r)
	assert.Equal(t, uint(32), r.Prec())
}

func TestContextResultSurvivesReuse(t *testing.T) {
	ctx := shunt.NewContext()
	e, err := shunt.Parse(strings.NewReader("2*3"))
	require.NoError(t, err)
	first := ctx.Eval(e)
	require.NotNil(t, first)

	e2, err := shunt.Parse(strings.NewReader("10-3"))
	require.NoError(t, err)
	second := ctx.Eval(e2)
	require.NotNil(t, second)

	f, _ := first.Float64()
	assert.Equal(t, float64(6), f)
	g, _ := second.Float64()
	assert.Equal(t, float64(7), g)
}
