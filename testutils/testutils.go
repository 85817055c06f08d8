// Package testutils provides the shared test fixture used across the
// module's test suites: the circuit z = x^4 - 5*y^2*x^2 with intermediate
// wires v1 = x^2, v2 = v1^2, v3 = -5*y^2 and witness ordering
// [1, z, x, y, v1, v2, v3] (4 constraints, 7 wires).
package testutils

import (
	"math/big"

	"github.com/Fabian5150/zk-snark-system/field"
	"github.com/Fabian5150/zk-snark-system/r1cs"
)

// BN254Order is the scalar field order r of BN254, the production prime.
var BN254Order, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// ExampleR1CS builds the fixture constraint system over p. With minusFive
// and minusOne spelled as p-5 and p-1, the matrices are:
//
//	L = [[0,0,1,0,0,0,0], [0,0,0,0,1,0,0], [0,0,0,p-5,0,0,0], [0,0,0,0,0,0,1]]
//	R = [[0,0,1,0,0,0,0], [0,0,0,0,1,0,0], [0,0,0,  1,0,0,0], [0,0,0,0,1,0,0]]
//	O = [[0,0,0,0,1,0,0], [0,0,0,0,0,1,0], [0,0,0,  0,0,0,1], [0,1,0,0,0,p-1,0]]
func ExampleR1CS(p *big.Int) *r1cs.R1CS {
	minusFive := new(big.Int).Sub(p, big.NewInt(5))
	minusOne := new(big.Int).Sub(p, big.NewInt(1))
	cs, err := r1cs.New(
		rows(
			[]int64{0, 0, 1, 0, 0, 0, 0},
			[]int64{0, 0, 0, 0, 1, 0, 0},
			[]int64{0, 0, 0, 0, 0, 0, 0},
			[]int64{0, 0, 0, 0, 0, 0, 1},
		),
		rows(
			[]int64{0, 0, 1, 0, 0, 0, 0},
			[]int64{0, 0, 0, 0, 1, 0, 0},
			[]int64{0, 0, 0, 1, 0, 0, 0},
			[]int64{0, 0, 0, 0, 1, 0, 0},
		),
		rows(
			[]int64{0, 0, 0, 0, 1, 0, 0},
			[]int64{0, 0, 0, 0, 0, 1, 0},
			[]int64{0, 0, 0, 0, 0, 0, 1},
			[]int64{0, 1, 0, 0, 0, 0, 0},
		),
		p,
	)
	if err != nil {
		panic(err)
	}
	cs.L[2][3] = minusFive
	cs.O[3][5] = minusOne
	return cs
}

// ExampleWitness derives the full satisfying witness [1, z, x, y, v1, v2, v3]
// from the circuit inputs x and y, with every entry reduced mod p.
func ExampleWitness(x, y int64, p *big.Int) []*big.Int {
	fx := field.FromInt64(x, p)
	fy := field.FromInt64(y, p)
	v1 := fx.Mul(fx)
	v2 := v1.Mul(v1)
	v3 := fy.Mul(fy).Mul(field.FromInt64(-5, p))
	z := v2.Add(v3.Mul(v1))
	return []*big.Int{
		big.NewInt(1), z.BigInt(), fx.BigInt(), fy.BigInt(),
		v1.BigInt(), v2.BigInt(), v3.BigInt(),
	}
}

func rows(rs ...[]int64) [][]*big.Int {
	out := make([][]*big.Int, len(rs))
	for i, r := range rs {
		out[i] = make([]*big.Int, len(r))
		for j, v := range r {
			out[i][j] = big.NewInt(v)
		}
	}
	return out
}
