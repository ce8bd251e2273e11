package ahcalc_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahurst/ahcalc"
)

func TestEvalString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"num", "4", 4},
		{"float", "2.5", 2.5},
		{"add", "2+3", 5},
		{"sub", "2-3", -1},
		{"mul", "2*3", 6},
		{"div", "6/4", 1.5},
		{"pow", "2^10", 1024},
		{"pow-star", "2**10", 1024},
		{"fact", "5!", 120},
		{"fact-zero", "0!", 1},
		{"fact-one", "1!", 1},
		{"fact-fact", "3!!", 720},
		{"precedence", "2+3*4", 14},
		{"grouping", "(2+3)*4", 20},
		{"square-brackets", "[2+3]*4", 20},
		{"mixed-brackets", "[2*(3+4)]+1", 15},
		{"neg-start", "-5+6", 1},
		{"neg-after-op", "5*-6", -30},
		{"neg-group", "-(1+2)", -3},
		{"implied-left", "2(3+4)", 14},
		{"implied-right", "(2+3)4", 20},
		{"implied-both", "(2+3)(4+5)", 45},
		{"pow-left-assoc", "2^3^2", 64},
		{"left-sub", "1-2-3", -4},
		{"left-div", "8/4/2", 1},
		{"commas", "1, 000 + 2", 1002},
		{"nested", "((1+2)*(3+4))^2", 441},
		{"fact-of-group", "(2+1)!", 6},
		{"everything", "2[3+4]! - 5^2", 10055},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ahcalc.EvalString(c.src)
			require.NoError(t, err, "evaluating %q", c.src)
			assert.Equal(t, c.want, got, "result of %q", c.src)
		})
	}
}

func TestEvalStringEquivalent(t *testing.T) {
	// Whitespace and commas are cosmetic.
	pairs := [][2]string{
		{"1, 000 + 2", "1000+2"},
		{" 2 * ( 3 + 4 ) ", "2*(3+4)"},
		{"2(3+4)", "2*(3+4)"},
	}
	for _, p := range pairs {
		a, err := ahcalc.EvalString(p[0])
		require.NoError(t, err, "evaluating %q", p[0])
		b, err := ahcalc.EvalString(p[1])
		require.NoError(t, err, "evaluating %q", p[1])
		assert.Equal(t, b, a, "%q and %q should agree", p[0], p[1])
	}
}

func TestEvalErrors(t *testing.T) {
	t.Run("domain", func(t *testing.T) {
		for _, src := range []string{"(-1)!", "(0-1)!", "2.5!", "1/0", "0/0", "(-1)^0.5"} {
			_, err := ahcalc.EvalString(src)
			var de *ahcalc.DomainError
			assert.ErrorAs(t, err, &de, "evaluating %q", src)
		}
	})
	t.Run("overflow", func(t *testing.T) {
		for _, src := range []string{"200!", "10^1000", "2^2048", "10^308*10^308"} {
			_, err := ahcalc.EvalString(src)
			var oe *ahcalc.OverflowError
			assert.ErrorAs(t, err, &oe, "evaluating %q", src)
		}
	})
	t.Run("no-partial-result", func(t *testing.T) {
		// Failing inputs return the zero value, never a partial result.
		for _, src := range []string{"2+", "2@3", "(2+3", "200!"} {
			got, err := ahcalc.EvalString(src)
			require.Error(t, err, "evaluating %q", src)
			assert.Zero(t, got, "result of failing %q", src)
		}
	})
}

// An Expr is immutable after parsing; concurrent evaluations agree.
func TestEvalConcurrent(t *testing.T) {
	e, err := ahcalc.Parse("(2+3)(4+5) - 6!/10")
	require.NoError(t, err)
	want, err := e.Eval()
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := e.Eval()
				if err != nil || got != want {
					t.Errorf("concurrent eval: want %g, got %g (err %v)", want, got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestEvalFinite(t *testing.T) {
	// Anything that evaluates successfully is a finite number.
	for _, src := range []string{"170!", "2^1023", "1/3", "0.1+0.2"} {
		got, err := ahcalc.EvalString(src)
		require.NoError(t, err, "evaluating %q", src)
		assert.False(t, math.IsNaN(got) || math.IsInf(got, 0), "non-finite result for %q: %g", src, got)
	}
}
