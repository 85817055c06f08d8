package qap

import (
	"errors"
	"math/big"
	"testing"

	"github.com/Fabian5150/zk-snark-system/field"
	"github.com/Fabian5150/zk-snark-system/r1cs"
	"github.com/Fabian5150/zk-snark-system/testutils"
)

func reduceWitness(w []*big.Int, p *big.Int) []field.Element {
	out := make([]field.Element, len(w))
	for i, v := range w {
		out[i] = field.New(v, p)
	}
	return out
}

func TestBuildShapes(t *testing.T) {
	p := big.NewInt(79)
	cs := testutils.ExampleR1CS(p)
	q, err := Build(cs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.NumConstraints != 4 || q.NumWires != 7 {
		t.Fatalf("got n=%d m=%d, want n=4 m=7", q.NumConstraints, q.NumWires)
	}
	if got := q.T.Degree(); got != 4 {
		t.Errorf("deg(t) = %d, want 4", got)
	}
	for j := 0; j < q.NumWires; j++ {
		for name, pj := range map[string]int{
			"u": q.U[j].Degree(), "v": q.V[j].Degree(), "w": q.W[j].Degree(),
		} {
			if pj >= q.NumConstraints {
				t.Errorf("deg(%s_%d) = %d, want < %d", name, j, pj, q.NumConstraints)
			}
		}
	}
}

func TestBuildRejectsBadShape(t *testing.T) {
	p := big.NewInt(79)
	cs := testutils.ExampleR1CS(p)
	cs.R = cs.R[:3]
	if _, err := Build(cs); !errors.Is(err, r1cs.ErrBadShape) {
		t.Errorf("got %v, want ErrBadShape", err)
	}
}

// The interpolated polynomials must hit the matrix entries at the constraint
// points 1..n exactly.
func TestInterpolationMatchesMatrices(t *testing.T) {
	p := big.NewInt(79)
	cs := testutils.ExampleR1CS(p)
	q, err := Build(cs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l, r, o := cs.Reduced()
	for i := 0; i < q.NumConstraints; i++ {
		x := field.FromInt64(int64(i+1), p)
		for j := 0; j < q.NumWires; j++ {
			if got := q.U[j].Eval(x); !got.Equal(l[i][j]) {
				t.Errorf("u_%d(%d) = %v, want %v", j, i+1, got, l[i][j])
			}
			if got := q.V[j].Eval(x); !got.Equal(r[i][j]) {
				t.Errorf("v_%d(%d) = %v, want %v", j, i+1, got, r[i][j])
			}
			if got := q.W[j].Eval(x); !got.Equal(o[i][j]) {
				t.Errorf("w_%d(%d) = %v, want %v", j, i+1, got, o[i][j])
			}
		}
	}
}

// QAP validity: for a satisfying witness, t(x) divides L(x)*R(x) - O(x)
// with zero remainder and the quotient degree is at most n-2.
func TestVanishingDividesForSatisfyingWitness(t *testing.T) {
	for _, p := range []*big.Int{big.NewInt(79), testutils.BN254Order} {
		cs := testutils.ExampleR1CS(p)
		q, err := Build(cs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		a := reduceWitness(testutils.ExampleWitness(4, -2, p), p)
		if !cs.Satisfied(a) {
			t.Fatalf("fixture witness must satisfy the R1CS over %v", p)
		}

		left := Combine(q.U, a, p)
		right := Combine(q.V, a, p)
		out := Combine(q.W, a, p)
		num := left.Mul(right).Sub(out)

		h, rem, err := num.DivMod(q.T)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rem.IsZero() {
			t.Errorf("remainder %v, want zero polynomial", rem)
		}
		if h.Degree() > q.NumConstraints-2 {
			t.Errorf("deg(h) = %d, want <= %d", h.Degree(), q.NumConstraints-2)
		}
		if !h.Mul(q.T).Add(out).Sub(left.Mul(right)).IsZero() {
			t.Errorf("h*t + O != L*R")
		}
	}
}

func TestVanishingDoesNotDivideForBadWitness(t *testing.T) {
	p := big.NewInt(79)
	cs := testutils.ExampleR1CS(p)
	q, err := Build(cs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := make([]field.Element, q.NumWires)
	for i := range bad {
		bad[i] = field.FromInt64(2, p)
	}
	num := Combine(q.U, bad, p).Mul(Combine(q.V, bad, p)).Sub(Combine(q.W, bad, p))
	_, rem, err := num.DivMod(q.T)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rem.IsZero() {
		t.Errorf("all-2s witness must leave a nonzero remainder")
	}
}
