package field

import (
	"math/big"
	"testing"
)

func TestReduceNegative(t *testing.T) {
	p := big.NewInt(79)
	e := New(big.NewInt(-5), p)
	want := big.NewInt(74)
	if e.BigInt().Cmp(want) != 0 {
		t.Errorf("New(-5, 79) = %v, want %v", e.BigInt(), want)
	}
}

func TestArithmetic(t *testing.T) {
	p := big.NewInt(79)
	a := FromInt64(50, p)
	b := FromInt64(60, p)

	if got := a.Add(b).BigInt().Int64(); got != 31 {
		t.Errorf("50+60 mod 79 = %d, want 31", got)
	}
	if got := a.Sub(b).BigInt().Int64(); got != 69 {
		t.Errorf("50-60 mod 79 = %d, want 69", got)
	}
	if got := a.Mul(b).BigInt().Int64(); got != 3000%79 {
		t.Errorf("50*60 mod 79 = %d, want %d", got, 3000%79)
	}
}

func TestInverse(t *testing.T) {
	p := big.NewInt(79)
	a := FromInt64(7, p)
	inv := a.Inverse()
	if !a.Mul(inv).Equal(One(p)) {
		t.Errorf("7 * inverse(7) != 1 mod 79, got %v", a.Mul(inv))
	}
}

func TestInverseOfZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on inverse of zero")
		}
	}()
	Zero(big.NewInt(79)).Inverse()
}

func TestEqualAcrossFieldsIsFalse(t *testing.T) {
	a := FromInt64(1, big.NewInt(79))
	b := FromInt64(1, big.NewInt(97))
	if a.Equal(b) {
		t.Errorf("elements from different fields must not compare equal")
	}
}
