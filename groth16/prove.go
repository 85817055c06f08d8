package groth16

import (
	"fmt"
	"math/big"
	"time"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/Fabian5150/zk-snark-system/field"
	"github.com/Fabian5150/zk-snark-system/internal/logger"
	"github.com/Fabian5150/zk-snark-system/poly"
	"github.com/Fabian5150/zk-snark-system/qap"
)

// Proof is a Groth16 proof: two G1 points and one G2 point.
type Proof struct {
	A G1
	B G2
	C G1
}

// Prove generates a proof that witness satisfies the constraint system
// behind q, under the CRS produced by RunSetup for the same q and backend.
// The witness is consumed read-only and may contain unreduced integers;
// every scalar is reduced mod the field order before touching the groups.
//
// It fails fast with ErrInvalidWitness before any group operation when the
// witness does not satisfy the system.
func Prove(b Backend, crs *CRS, q *qap.QAP, witness []*big.Int) (*Proof, error) {
	n, m, p := q.NumConstraints, q.NumWires, q.P
	if len(witness) != m {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBadWitnessLength, len(witness), m)
	}
	log := logger.Logger().With().Int("n", n).Int("m", m).Logger()
	start := time.Now()

	a := make([]field.Element, m)
	zeroes := bitset.New(uint(m))
	for j, v := range witness {
		a[j] = field.New(v, p)
		if a[j].IsZero() {
			zeroes.Set(uint(j))
		}
	}

	left := qap.Combine(q.U, a, p)
	right := qap.Combine(q.V, a, p)
	out := qap.Combine(q.W, a, p)

	h, rem, err := left.Mul(right).Sub(out).DivMod(q.T)
	if err != nil {
		return nil, fmt.Errorf("groth16: dividing by vanishing polynomial: %w", err)
	}
	if !rem.IsZero() {
		return nil, ErrInvalidWitness
	}
	log.Debug().Dur("took", time.Since(start)).Int("degH", h.Degree()).Msg("quotient done")

	// A, B and C accumulate independently; the errgroup is observably
	// equivalent to running the three blocks in sequence.
	proof := &Proof{}
	var g errgroup.Group

	g.Go(func() error {
		sum, err := msmG1(b, crs.G1SRS, left, n)
		if err != nil {
			return err
		}
		proof.A = b.G1Add(crs.AlphaG1, sum)
		return nil
	})

	g.Go(func() error {
		coeffs, err := right.Descending(n)
		if err != nil {
			return fmt.Errorf("groth16: %w", err)
		}
		acc := b.G2Identity()
		for k, c := range coeffs {
			if c.IsZero() {
				continue
			}
			acc = b.G2Add(acc, b.G2ScalarMul(crs.G2SRS[k], c.BigInt()))
		}
		proof.B = b.G2Add(crs.BetaG2, acc)
		return nil
	})

	g.Go(func() error {
		acc := b.G1Identity()
		for j := 0; j < m; j++ {
			if zeroes.Test(uint(j)) {
				continue
			}
			acc = b.G1Add(acc, b.G1ScalarMul(crs.Psis[j], a[j].BigInt()))
		}
		hTerm, err := msmG1(b, crs.TTauSRS, h, n-1)
		if err != nil {
			return err
		}
		proof.C = b.G1Add(acc, hTerm)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug().Dur("took", time.Since(start)).Msg("prover done")
	return proof, nil
}

// msmG1 computes the inner product of pol's descending-order coefficient
// vector, left-padded to length, against the SRS points.
func msmG1(b Backend, srs []G1, pol poly.Polynomial, length int) (G1, error) {
	coeffs, err := pol.Descending(length)
	if err != nil {
		return nil, fmt.Errorf("groth16: %w", err)
	}
	acc := b.G1Identity()
	for k, c := range coeffs {
		if c.IsZero() {
			continue
		}
		acc = b.G1Add(acc, b.G1ScalarMul(srs[k], c.BigInt()))
	}
	return acc, nil
}
