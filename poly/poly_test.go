package poly

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Fabian5150/zk-snark-system/field"
)

var p79 = big.NewInt(79)

func fromInt64s(vs []int64, p *big.Int) Polynomial {
	coeffs := make([]field.Element, len(vs))
	for i, v := range vs {
		coeffs[i] = field.FromInt64(v, p)
	}
	return New(coeffs, p)
}

var elementCmp = cmp.Comparer(func(a, b field.Element) bool { return a.Equal(b) })

func TestNewTrimsLeadingZeros(t *testing.T) {
	poly := fromInt64s([]int64{0, 0, 3, 1}, p79)
	if got := poly.Degree(); got != 1 {
		t.Errorf("degree = %d, want 1", got)
	}
	if fromInt64s([]int64{0, 0}, p79).Degree() != -1 {
		t.Errorf("all-zero coefficients must collapse to the zero polynomial")
	}
}

func TestEvalHorner(t *testing.T) {
	// 2x^2 + 3x + 5 at x=4: 32 + 12 + 5 = 49
	poly := fromInt64s([]int64{2, 3, 5}, p79)
	if got := poly.Eval(field.FromInt64(4, p79)); got.BigInt().Int64() != 49 {
		t.Errorf("eval = %v, want 49", got)
	}
}

func TestDescendingPadding(t *testing.T) {
	poly := fromInt64s([]int64{3, 1}, p79)
	got, err := poly.Descending(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []field.Element{
		field.Zero(p79), field.Zero(p79),
		field.FromInt64(3, p79), field.FromInt64(1, p79),
	}
	if diff := cmp.Diff(want, got, elementCmp); diff != "" {
		t.Errorf("Descending(4) mismatch (-want +got):\n%s", diff)
	}
	if _, err := poly.Descending(1); err == nil {
		t.Errorf("Descending below the degree must fail, not truncate")
	}
}

func TestVanishingRootsAndDegree(t *testing.T) {
	points := []field.Element{
		field.FromInt64(1, p79), field.FromInt64(2, p79),
		field.FromInt64(3, p79), field.FromInt64(4, p79),
	}
	van := Vanishing(points, p79)
	if got := van.Degree(); got != 4 {
		t.Errorf("deg(t) = %d, want 4", got)
	}
	for _, pt := range points {
		if !van.Eval(pt).IsZero() {
			t.Errorf("t(%v) != 0", pt)
		}
	}
	if van.Eval(field.FromInt64(5, p79)).IsZero() {
		t.Errorf("t(5) = 0, want nonzero")
	}
}

func TestLagrangeHitsPoints(t *testing.T) {
	xs := []field.Element{
		field.FromInt64(1, p79), field.FromInt64(2, p79), field.FromInt64(3, p79),
	}
	ys := []field.Element{
		field.FromInt64(10, p79), field.FromInt64(0, p79), field.FromInt64(74, p79),
	}
	poly, err := Lagrange(xs, ys, p79)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if poly.Degree() >= len(xs) {
		t.Errorf("deg = %d, want < %d", poly.Degree(), len(xs))
	}
	for i := range xs {
		if got := poly.Eval(xs[i]); !got.Equal(ys[i]) {
			t.Errorf("poly(%v) = %v, want %v", xs[i], got, ys[i])
		}
	}
	if _, err := Lagrange(xs, ys[:2], p79); err == nil {
		t.Errorf("mismatched point counts must fail")
	}
}

func genPoly() gopter.Gen {
	return gen.SliceOf(gen.Int64Range(0, 78)).Map(func(vs []int64) Polynomial {
		return fromInt64s(vs, p79)
	})
}

func genNonZeroPoly() gopter.Gen {
	return genPoly().SuchThat(func(p Polynomial) bool { return !p.IsZero() })
}

func TestAlgebraProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("a*b evaluates pointwise", prop.ForAll(
		func(a, b Polynomial, x int64) bool {
			at := field.FromInt64(x, p79)
			return a.Mul(b).Eval(at).Equal(a.Eval(at).Mul(b.Eval(at)))
		},
		genPoly(), genPoly(), gen.Int64Range(0, 78),
	))

	properties.Property("a+b evaluates pointwise", prop.ForAll(
		func(a, b Polynomial, x int64) bool {
			at := field.FromInt64(x, p79)
			return a.Add(b).Eval(at).Equal(a.Eval(at).Add(b.Eval(at)))
		},
		genPoly(), genPoly(), gen.Int64Range(0, 78),
	))

	properties.Property("division law: a = q*b + r with deg(r) < deg(b)", prop.ForAll(
		func(a, b Polynomial) bool {
			q, r, err := a.DivMod(b)
			if err != nil {
				return false
			}
			if !r.IsZero() && r.Degree() >= b.Degree() {
				return false
			}
			return q.Mul(b).Add(r).Sub(a).IsZero()
		},
		genPoly(), genNonZeroPoly(),
	))

	properties.Property("exact division round-trips", prop.ForAll(
		func(a, b Polynomial) bool {
			q, r, err := a.Mul(b).DivMod(b)
			if err != nil || !r.IsZero() {
				return false
			}
			return q.Sub(a).IsZero()
		},
		genPoly(), genNonZeroPoly(),
	))

	properties.TestingRun(t)
}

func TestDivModByZeroFails(t *testing.T) {
	if _, _, err := fromInt64s([]int64{1, 2}, p79).DivMod(Zero(p79)); err == nil {
		t.Errorf("division by the zero polynomial must fail")
	}
}
