// Package qap turns a Rank-1 Constraint System into a Quadratic Arithmetic
// Program: one interpolated polynomial per matrix column, evaluated at the
// constraint points 1..n, plus the vanishing polynomial t(x) over those
// points. A witness a satisfies the R1CS exactly when t(x) divides
// L(x)*R(x) - O(x), with L(x) = sum a_j*u_j(x) and so on.
package qap

import (
	"fmt"
	"math/big"

	"github.com/Fabian5150/zk-snark-system/field"
	"github.com/Fabian5150/zk-snark-system/poly"
	"github.com/Fabian5150/zk-snark-system/r1cs"
)

// QAP is the polynomial form of an R1CS. U, V, W each hold one polynomial
// per wire, of degree < NumConstraints; T has degree NumConstraints.
type QAP struct {
	U, V, W []poly.Polynomial
	T       poly.Polynomial

	NumConstraints int // n
	NumWires       int // m
	P              *big.Int
}

// Build reduces the constraint system into F_p and interpolates each column
// of L, R, O at the points 1..n.
func Build(cs *r1cs.R1CS) (*QAP, error) {
	if err := cs.Validate(); err != nil {
		return nil, fmt.Errorf("qap: %w", err)
	}
	n := cs.NumConstraints()
	m := cs.NumWires()
	p := cs.P

	xs := make([]field.Element, n)
	for i := range xs {
		xs[i] = field.FromInt64(int64(i+1), p)
	}

	l, r, o := cs.Reduced()
	u, err := interpolateColumns(l, xs, p)
	if err != nil {
		return nil, err
	}
	v, err := interpolateColumns(r, xs, p)
	if err != nil {
		return nil, err
	}
	w, err := interpolateColumns(o, xs, p)
	if err != nil {
		return nil, err
	}

	return &QAP{
		U:              u,
		V:              v,
		W:              w,
		T:              poly.Vanishing(xs, p),
		NumConstraints: n,
		NumWires:       m,
		P:              p,
	}, nil
}

// interpolateColumns produces, for each column j, the unique polynomial of
// degree < n with poly(xs[i]) = matrix[i][j].
func interpolateColumns(matrix [][]field.Element, xs []field.Element, p *big.Int) (
	[]poly.Polynomial, error) {

	m := len(matrix[0])
	out := make([]poly.Polynomial, m)
	ys := make([]field.Element, len(xs))
	for j := 0; j < m; j++ {
		for i := range xs {
			ys[i] = matrix[i][j]
		}
		pj, err := poly.Lagrange(xs, ys, p)
		if err != nil {
			return nil, fmt.Errorf("qap: interpolating column %d: %w", j, err)
		}
		out[j] = pj
	}
	return out, nil
}

// Combine forms the witness combination polynomial sum a_j * polys[j].
func Combine(polys []poly.Polynomial, a []field.Element, p *big.Int) poly.Polynomial {
	acc := poly.Zero(p)
	for j, pj := range polys {
		if a[j].IsZero() {
			continue
		}
		acc = acc.Add(pj.Scale(a[j]))
	}
	return acc
}
