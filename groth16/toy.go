package groth16

import (
	"fmt"
	"math/big"
)

// toyG1, toyG2 and toyGT are residues mod the group order: a toy "group
// element" is simply the discrete log of the point it stands in for.
type (
	toyG1 struct{ v *big.Int }
	toyG2 struct{ v *big.Int }
	toyGT struct{ v *big.Int }
)

// Toy is a debug backend over an arbitrary small prime: both source groups
// are the additive group Z_p, and e(a, b) := a*b mod p stands in for the
// pairing, which makes every bilinearity identity hold exactly while every
// discrete log is trivially readable. It exists so the full
// Setup/Prove/Verify pipeline can run over a hand-checkable modulus like
// p=79 in tests. It has no cryptographic properties whatsoever and must
// never back anything but tests.
type Toy struct {
	p *big.Int
}

// NewToy returns a Toy backend whose groups have prime order p.
func NewToy(p *big.Int) Toy {
	return Toy{p: new(big.Int).Set(p)}
}

func (t Toy) Order() *big.Int {
	return new(big.Int).Set(t.p)
}

func (t Toy) reduce(v *big.Int) *big.Int {
	r := new(big.Int).Mod(v, t.p)
	if r.Sign() < 0 {
		r.Add(r, t.p)
	}
	return r
}

func (t Toy) G1Generator() G1 { return toyG1{big.NewInt(1)} }
func (t Toy) G1Identity() G1  { return toyG1{big.NewInt(0)} }

func (t Toy) G1Add(a, b G1) G1 {
	return toyG1{t.reduce(new(big.Int).Add(a.(toyG1).v, b.(toyG1).v))}
}

func (t Toy) G1Neg(a G1) G1 {
	return toyG1{t.reduce(new(big.Int).Neg(a.(toyG1).v))}
}

func (t Toy) G1ScalarMul(a G1, k *big.Int) G1 {
	return toyG1{t.reduce(new(big.Int).Mul(a.(toyG1).v, k))}
}

func (t Toy) G1Equal(a, b G1) bool {
	return a.(toyG1).v.Cmp(b.(toyG1).v) == 0
}

func (t Toy) G2Generator() G2 { return toyG2{big.NewInt(1)} }
func (t Toy) G2Identity() G2  { return toyG2{big.NewInt(0)} }

func (t Toy) G2Add(a, b G2) G2 {
	return toyG2{t.reduce(new(big.Int).Add(a.(toyG2).v, b.(toyG2).v))}
}

func (t Toy) G2ScalarMul(a G2, k *big.Int) G2 {
	return toyG2{t.reduce(new(big.Int).Mul(a.(toyG2).v, k))}
}

func (t Toy) G2Equal(a, b G2) bool {
	return a.(toyG2).v.Cmp(b.(toyG2).v) == 0
}

func (t Toy) Pair(a G1, b G2) (GT, error) {
	return toyGT{t.reduce(new(big.Int).Mul(a.(toyG1).v, b.(toyG2).v))}, nil
}

func (t Toy) GTEqual(a, b GT) bool {
	return a.(toyGT).v.Cmp(b.(toyGT).v) == 0
}

func (t Toy) PairingCheck(g1s []G1, g2s []G2) (bool, error) {
	if len(g1s) != len(g2s) {
		return false, fmt.Errorf("groth16: pairing check with %d G1 and %d G2 points",
			len(g1s), len(g2s))
	}
	acc := big.NewInt(0)
	for i := range g1s {
		acc.Add(acc, new(big.Int).Mul(g1s[i].(toyG1).v, g2s[i].(toyG2).v))
	}
	return t.reduce(acc).Sign() == 0, nil
}
