// Package groth16 implements the setup, prover and verifier of a
// simplified Groth16 zkSNARK: no gamma/delta split of the witness and no
// r/s blinding factors, so proofs are succinct and sound for a
// knowledgeable verifier but NOT zero-knowledge. See the Verify doc comment
// before considering production use.
package groth16

import (
	"fmt"
	"math/big"

	bn254 "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// G1, G2 and GT are opaque group-element handles; each Backend works with
// its own concrete types behind them and type-switches at the boundary, the
// way gnark's multi-curve backends switch on proof types.
type (
	G1 any
	G2 any
	GT any
)

// Backend is a pair of cyclic source groups with a bilinear pairing into a
// target group, everything Setup, Prove and Verify need from the curve.
// Implementations must be safe for concurrent use: the prover accumulates
// A, B and C from separate goroutines.
type Backend interface {
	// Order returns the prime order of the groups, which is also the
	// scalar field modulus for all polynomial arithmetic.
	Order() *big.Int

	G1Generator() G1
	G1Identity() G1
	G1Add(a, b G1) G1
	G1Neg(a G1) G1
	G1ScalarMul(a G1, k *big.Int) G1
	G1Equal(a, b G1) bool

	G2Generator() G2
	G2Identity() G2
	G2Add(a, b G2) G2
	G2ScalarMul(a G2, k *big.Int) G2
	G2Equal(a, b G2) bool

	// Pair computes e(a, b) in the target group.
	Pair(a G1, b G2) (GT, error)
	GTEqual(a, b GT) bool

	// PairingCheck reports whether the product of pairings
	// e(g1s[0], g2s[0]) * ... * e(g1s[k], g2s[k]) is the identity in GT.
	PairingCheck(g1s []G1, g2s []G2) (bool, error)
}

// BN254 is the production backend, backed by gnark-crypto's bn254 package.
// G1 elements are bn254.G1Affine, G2 elements bn254.G2Affine, GT elements
// bn254.GT, and Order is the BN254 scalar field modulus r.
type BN254 struct{}

func (BN254) Order() *big.Int {
	return fr.Modulus()
}

func (BN254) G1Generator() G1 {
	_, _, g1, _ := bn254.Generators()
	return g1
}

func (BN254) G1Identity() G1 {
	return bn254.G1Affine{} // the zero value is the point at infinity
}

func (BN254) G1Add(a, b G1) G1 {
	pa, pb := a.(bn254.G1Affine), b.(bn254.G1Affine)
	var acc bn254.G1Jac
	acc.FromAffine(&pa)
	acc.AddMixed(&pb)
	var out bn254.G1Affine
	out.FromJacobian(&acc)
	return out
}

func (BN254) G1Neg(a G1) G1 {
	pa := a.(bn254.G1Affine)
	var out bn254.G1Affine
	out.Neg(&pa)
	return out
}

func (BN254) G1ScalarMul(a G1, k *big.Int) G1 {
	pa := a.(bn254.G1Affine)
	var out bn254.G1Affine
	out.ScalarMultiplication(&pa, k)
	return out
}

func (BN254) G1Equal(a, b G1) bool {
	pa, pb := a.(bn254.G1Affine), b.(bn254.G1Affine)
	return pa.Equal(&pb)
}

func (BN254) G2Generator() G2 {
	_, _, _, g2 := bn254.Generators()
	return g2
}

func (BN254) G2Identity() G2 {
	return bn254.G2Affine{}
}

func (BN254) G2Add(a, b G2) G2 {
	pa, pb := a.(bn254.G2Affine), b.(bn254.G2Affine)
	var acc bn254.G2Jac
	acc.FromAffine(&pa)
	acc.AddMixed(&pb)
	var out bn254.G2Affine
	out.FromJacobian(&acc)
	return out
}

func (BN254) G2ScalarMul(a G2, k *big.Int) G2 {
	pa := a.(bn254.G2Affine)
	var out bn254.G2Affine
	out.ScalarMultiplication(&pa, k)
	return out
}

func (BN254) G2Equal(a, b G2) bool {
	pa, pb := a.(bn254.G2Affine), b.(bn254.G2Affine)
	return pa.Equal(&pb)
}

func (BN254) Pair(a G1, b G2) (GT, error) {
	pa, pb := a.(bn254.G1Affine), b.(bn254.G2Affine)
	gt, err := bn254.Pair([]bn254.G1Affine{pa}, []bn254.G2Affine{pb})
	if err != nil {
		return nil, fmt.Errorf("groth16: pairing: %w", err)
	}
	return gt, nil
}

func (BN254) GTEqual(a, b GT) bool {
	ga, gb := a.(bn254.GT), b.(bn254.GT)
	return ga.Equal(&gb)
}

func (BN254) PairingCheck(g1s []G1, g2s []G2) (bool, error) {
	if len(g1s) != len(g2s) {
		return false, fmt.Errorf("groth16: pairing check with %d G1 and %d G2 points",
			len(g1s), len(g2s))
	}
	as := make([]bn254.G1Affine, len(g1s))
	bs := make([]bn254.G2Affine, len(g2s))
	for i := range g1s {
		as[i] = g1s[i].(bn254.G1Affine)
		bs[i] = g2s[i].(bn254.G2Affine)
	}
	ok, err := bn254.PairingCheck(as, bs)
	if err != nil {
		return false, fmt.Errorf("groth16: pairing check: %w", err)
	}
	return ok, nil
}
