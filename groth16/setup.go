package groth16

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/Fabian5150/zk-snark-system/field"
	"github.com/Fabian5150/zk-snark-system/internal/logger"
	"github.com/Fabian5150/zk-snark-system/qap"
)

// CRS is the common reference string for one circuit. It is pure data:
// produced once by RunSetup, immutable thereafter, shareable across any
// number of concurrent provers.
//
// Ordering is contractual. G1SRS[k] is [tau^(n-1-k)]_1 for k in 0..n-1
// (highest power first, so G1SRS lines up pairwise with a descending-order
// coefficient vector left-padded to length n); G2SRS mirrors it in G2;
// TTauSRS[k] is [tau^(n-2-k) * t(tau)]_1 for k in 0..n-2. Psis[j] is
// [alpha*v_j(tau) + beta*u_j(tau) + w_j(tau)]_1.
type CRS struct {
	AlphaG1 G1
	BetaG1  G1
	BetaG2  G2
	G1SRS   []G1
	G2SRS   []G2
	TTauSRS []G1
	Psis    []G1
}

// Toxic holds the setup's secret scalars. Knowledge of any of them after
// setup breaks soundness, so they live only inside a WithToxicWaste scope
// and are overwritten when it exits.
type Toxic struct {
	Tau, Alpha, Beta *big.Int
}

// Zeroize overwrites the scalars in place.
func (t *Toxic) Zeroize() {
	for _, s := range []*big.Int{t.Tau, t.Alpha, t.Beta} {
		if s != nil {
			s.SetInt64(0)
		}
	}
	t.Tau, t.Alpha, t.Beta = nil, nil, nil
}

// maxSampleRetries bounds resampling when the RNG returns zero before
// surfacing ErrBadRNG.
const maxSampleRetries = 32

// sampleScalar draws a uniform scalar from [1, order) via rng, resampling
// on zero.
func sampleScalar(order *big.Int, rng io.Reader) (*big.Int, error) {
	for i := 0; i < maxSampleRetries; i++ {
		s, err := rand.Int(rng, order)
		if err != nil {
			return nil, fmt.Errorf("groth16: sampling scalar: %w", err)
		}
		if s.Sign() != 0 {
			return s, nil
		}
	}
	return nil, ErrBadRNG
}

// WithToxicWaste samples fresh toxic scalars from rng (crypto/rand.Reader
// if nil), runs fn with them, and zeroizes them on every exit path,
// including a panic inside fn.
func WithToxicWaste(order *big.Int, rng io.Reader, fn func(*Toxic) error) error {
	if rng == nil {
		rng = rand.Reader
	}
	toxic := &Toxic{}
	defer toxic.Zeroize()

	var err error
	if toxic.Tau, err = sampleScalar(order, rng); err != nil {
		return err
	}
	if toxic.Alpha, err = sampleScalar(order, rng); err != nil {
		return err
	}
	if toxic.Beta, err = sampleScalar(order, rng); err != nil {
		return err
	}
	return fn(toxic)
}

// SetupOpts tunes RunSetup. The zero value (or a nil pointer) means a
// random setup from crypto/rand.
type SetupOpts struct {
	// Toxic supplies fixed tau, alpha, beta for deterministic setups, used
	// by the test suite. Callers providing these own their lifecycle;
	// nothing is zeroized.
	Toxic *Toxic

	// Rand overrides the random source for sampling. Ignored when Toxic is
	// set.
	Rand io.Reader
}

// RunSetup derives the CRS for the given QAP over the backend's groups. It
// is a pure function of (q, toxic scalars); callers decide whether and how
// to cache the result.
func RunSetup(q *qap.QAP, b Backend, opts *SetupOpts) (*CRS, error) {
	if opts == nil {
		opts = &SetupOpts{}
	}
	if q.P.Cmp(b.Order()) != 0 {
		return nil, fmt.Errorf("groth16: QAP field %v does not match group order %v",
			q.P, b.Order())
	}
	if opts.Toxic != nil {
		return deriveCRS(q, b, opts.Toxic)
	}
	var crs *CRS
	err := WithToxicWaste(b.Order(), opts.Rand, func(t *Toxic) error {
		var err error
		crs, err = deriveCRS(q, b, t)
		return err
	})
	return crs, err
}

// deriveCRS computes every CRS component from the toxic scalars. Every
// tau-dependent output is a scalar multiple of a group generator; tau itself
// is not stored in the returned CRS.
func deriveCRS(q *qap.QAP, b Backend, toxic *Toxic) (*CRS, error) {
	n, m, p := q.NumConstraints, q.NumWires, q.P
	log := logger.Logger().With().
		Int("n", n).Int("m", m).Str("backend", fmt.Sprintf("%T", b)).Logger()
	start := time.Now()

	tau := field.New(toxic.Tau, p)
	alpha := field.New(toxic.Alpha, p)
	beta := field.New(toxic.Beta, p)
	if tau.IsZero() || alpha.IsZero() || beta.IsZero() {
		return nil, fmt.Errorf("%w: toxic scalar reduces to zero", ErrBadRNG)
	}

	g1, g2 := b.G1Generator(), b.G2Generator()
	crs := &CRS{
		AlphaG1: b.G1ScalarMul(g1, alpha.BigInt()),
		BetaG1:  b.G1ScalarMul(g1, beta.BigInt()),
		BetaG2:  b.G2ScalarMul(g2, beta.BigInt()),
		G1SRS:   make([]G1, n),
		G2SRS:   make([]G2, n),
		TTauSRS: make([]G1, n-1),
		Psis:    make([]G1, m),
	}

	// srs[k] = [tau^(n-1-k)] in each group, highest power first
	pow := field.One(p)
	for k := n - 1; k >= 0; k-- {
		crs.G1SRS[k] = b.G1ScalarMul(g1, pow.BigInt())
		crs.G2SRS[k] = b.G2ScalarMul(g2, pow.BigInt())
		pow = pow.Mul(tau)
	}
	log.Debug().Dur("took", time.Since(start)).Msg("srs powers done")

	// TTauSRS[k] = [tau^(n-2-k) * t(tau)], length n-1 since deg(h) <= n-2
	tAtTau := q.T.Eval(tau)
	pow = tAtTau
	for k := n - 2; k >= 0; k-- {
		crs.TTauSRS[k] = b.G1ScalarMul(g1, pow.BigInt())
		pow = pow.Mul(tau)
	}

	for j := 0; j < m; j++ {
		psi := alpha.Mul(q.V[j].Eval(tau)).
			Add(beta.Mul(q.U[j].Eval(tau))).
			Add(q.W[j].Eval(tau))
		crs.Psis[j] = b.G1ScalarMul(g1, psi.BigInt())
	}
	log.Debug().Dur("took", time.Since(start)).Msg("setup done")

	return crs, nil
}
