// Package field implements modular arithmetic over a runtime-chosen prime.
// Unlike gnark-crypto's per-curve fr.Element, which is generated code for
// one fixed modulus, the QAP and setup math in this module runs against
// both a tiny hand-checkable prime and BN254's scalar field order, so the
// modulus is a value, not a type parameter.
package field

import "math/big"

// Element is a residue mod P, always kept reduced into [0, P).
type Element struct {
	v *big.Int
	p *big.Int
}

// New reduces v into [0, p) and returns the resulting Element.
func New(v *big.Int, p *big.Int) Element {
	return Element{v: reduce(v, p), p: p}
}

// FromInt64 is a convenience constructor for small literal values.
func FromInt64(v int64, p *big.Int) Element {
	return New(big.NewInt(v), p)
}

// Zero returns the additive identity mod p.
func Zero(p *big.Int) Element {
	return Element{v: big.NewInt(0), p: p}
}

// One returns the multiplicative identity mod p.
func One(p *big.Int) Element {
	return Element{v: big.NewInt(1), p: p}
}

// reduce maps v into [0, p) via ((v mod p) + p) mod p, so negative inputs
// land on their canonical residue.
func reduce(v, p *big.Int) *big.Int {
	r := new(big.Int).Mod(v, p)
	if r.Sign() < 0 {
		r.Add(r, p)
	}
	return r
}

// Modulus returns the prime this element is reduced against.
func (e Element) Modulus() *big.Int {
	return e.p
}

// BigInt returns the element's canonical representative in [0, p).
func (e Element) BigInt() *big.Int {
	return new(big.Int).Set(e.v)
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.v.Sign() == 0
}

func (e Element) sameField(o Element) {
	if e.p.Cmp(o.p) != 0 {
		panic("field: operands belong to different prime fields")
	}
}

// Add returns e + o mod p.
func (e Element) Add(o Element) Element {
	e.sameField(o)
	return New(new(big.Int).Add(e.v, o.v), e.p)
}

// Sub returns e - o mod p.
func (e Element) Sub(o Element) Element {
	e.sameField(o)
	return New(new(big.Int).Sub(e.v, o.v), e.p)
}

// Mul returns e * o mod p.
func (e Element) Mul(o Element) Element {
	e.sameField(o)
	return New(new(big.Int).Mul(e.v, o.v), e.p)
}

// Neg returns -e mod p.
func (e Element) Neg() Element {
	return New(new(big.Int).Neg(e.v), e.p)
}

// Inverse returns the multiplicative inverse of e mod p.
// Panics if e is zero (the field's only non-invertible element).
func (e Element) Inverse() Element {
	if e.IsZero() {
		panic("field: inverse of zero")
	}
	inv := new(big.Int).ModInverse(e.v, e.p)
	return Element{v: inv, p: e.p}
}

// Equal reports whether e and o hold the same residue mod the same prime.
func (e Element) Equal(o Element) bool {
	return e.p.Cmp(o.p) == 0 && e.v.Cmp(o.v) == 0
}

// String renders the element's canonical representative.
func (e Element) String() string {
	return e.v.String()
}
