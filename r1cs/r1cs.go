// Package r1cs holds a Rank-1 Constraint System as three raw integer
// matrices. The system is the module's input boundary: circuit authoring is
// the caller's business, entries may be arbitrary (including negative)
// integers, and reduction into the field happens here, once, before any
// polynomial work.
package r1cs

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/Fabian5150/zk-snark-system/field"
)

// ErrBadShape is returned when the L, R, O matrices disagree on row or
// column counts, or a matrix is empty.
var ErrBadShape = errors.New("r1cs: L, R, O shape mismatch")

// R1CS is a constraint system (L_i · a)(R_i · a) = O_i · a over the prime P.
// Matrix entries are raw integers, reduced into [0, P) on demand.
type R1CS struct {
	L, R, O [][]*big.Int
	P       *big.Int
}

// New validates the matrix shapes and returns the system. Entries are kept
// as given; use Reduced for the field-element view.
func New(L, R, O [][]*big.Int, p *big.Int) (*R1CS, error) {
	cs := &R1CS{L: L, R: R, O: O, P: p}
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	return cs, nil
}

// NumConstraints returns n, the number of rows.
func (cs *R1CS) NumConstraints() int {
	return len(cs.L)
}

// NumWires returns m, the witness length.
func (cs *R1CS) NumWires() int {
	if len(cs.L) == 0 {
		return 0
	}
	return len(cs.L[0])
}

// Validate checks that L, R, O are non-empty and share the same n x m shape.
func (cs *R1CS) Validate() error {
	n := len(cs.L)
	if n == 0 || len(cs.R) != n || len(cs.O) != n {
		return fmt.Errorf("%w: %d, %d, %d rows", ErrBadShape,
			len(cs.L), len(cs.R), len(cs.O))
	}
	m := len(cs.L[0])
	if m == 0 {
		return fmt.Errorf("%w: empty rows", ErrBadShape)
	}
	for i := 0; i < n; i++ {
		if len(cs.L[i]) != m || len(cs.R[i]) != m || len(cs.O[i]) != m {
			return fmt.Errorf("%w: row %d has %d, %d, %d columns, want %d",
				ErrBadShape, i, len(cs.L[i]), len(cs.R[i]), len(cs.O[i]), m)
		}
	}
	return nil
}

// Reduced returns the three matrices with every entry reduced into [0, P).
func (cs *R1CS) Reduced() (l, r, o [][]field.Element) {
	return reduceMatrix(cs.L, cs.P), reduceMatrix(cs.R, cs.P), reduceMatrix(cs.O, cs.P)
}

func reduceMatrix(m [][]*big.Int, p *big.Int) [][]field.Element {
	out := make([][]field.Element, len(m))
	for i, row := range m {
		out[i] = make([]field.Element, len(row))
		for j, v := range row {
			out[i][j] = field.New(v, p)
		}
	}
	return out
}

// Satisfied reports whether witness a satisfies every constraint:
// (L_i · a)(R_i · a) = O_i · a in F_P for all rows i.
func (cs *R1CS) Satisfied(a []field.Element) bool {
	if len(a) != cs.NumWires() {
		return false
	}
	l, r, o := cs.Reduced()
	for i := 0; i < cs.NumConstraints(); i++ {
		la := dot(l[i], a, cs.P)
		ra := dot(r[i], a, cs.P)
		oa := dot(o[i], a, cs.P)
		if !la.Mul(ra).Equal(oa) {
			return false
		}
	}
	return true
}

func dot(row, a []field.Element, p *big.Int) field.Element {
	acc := field.Zero(p)
	for j := range row {
		acc = acc.Add(row[j].Mul(a[j]))
	}
	return acc
}
