// Package poly implements dense univariate polynomials over field.Element.
// Coefficients are stored in descending-power order (leading coefficient
// first, constant term last); that ordering is the wire contract between
// the QAP builder, the setup and the prover.
package poly

import (
	"fmt"
	"math/big"

	"github.com/Fabian5150/zk-snark-system/field"
)

// Polynomial is a dense coefficient vector, highest degree first. The zero
// polynomial is represented as an empty slice.
type Polynomial struct {
	// Coeffs[0] is the leading (highest-degree) coefficient.
	Coeffs []field.Element
	P      *big.Int
}

// New builds a Polynomial from coefficients already in descending-power
// order, trimming leading zero coefficients so Degree() is canonical.
func New(coeffs []field.Element, p *big.Int) Polynomial {
	i := 0
	for i < len(coeffs) && coeffs[i].IsZero() {
		i++
	}
	trimmed := make([]field.Element, len(coeffs)-i)
	copy(trimmed, coeffs[i:])
	return Polynomial{Coeffs: trimmed, P: p}
}

// Zero returns the additive-identity polynomial over p.
func Zero(p *big.Int) Polynomial {
	return Polynomial{Coeffs: nil, P: p}
}

// One returns the constant polynomial 1 over p.
func One(p *big.Int) Polynomial {
	return New([]field.Element{field.One(p)}, p)
}

// Degree returns the polynomial's degree; the zero polynomial has degree -1.
func (poly Polynomial) Degree() int {
	return len(poly.Coeffs) - 1
}

// IsZero reports whether poly is the zero polynomial.
func (poly Polynomial) IsZero() bool {
	return len(poly.Coeffs) == 0
}

// coeffAt returns the coefficient of x^k, zero if out of range.
func (poly Polynomial) coeffAt(k int) field.Element {
	idx := poly.Degree() - k
	if idx < 0 || idx >= len(poly.Coeffs) {
		return field.Zero(poly.P)
	}
	return poly.Coeffs[idx]
}

// Descending returns poly's coefficients in descending-power order,
// left-padded with zeros to exactly length n. Every call site that feeds
// an SRS inner product goes through here, never through an ad-hoc slice
// operation, so the "descending order, left padded to SRS length" contract
// lives in exactly one place.
func (poly Polynomial) Descending(n int) ([]field.Element, error) {
	if poly.Degree()+1 > n {
		return nil, fmt.Errorf("poly: degree %d exceeds requested length %d", poly.Degree(), n)
	}
	out := make([]field.Element, n)
	pad := n - len(poly.Coeffs)
	for i := range out {
		if i < pad {
			out[i] = field.Zero(poly.P)
		} else {
			out[i] = poly.Coeffs[i-pad]
		}
	}
	return out, nil
}

// Add returns poly + other.
func (poly Polynomial) Add(other Polynomial) Polynomial {
	n := len(poly.Coeffs)
	if len(other.Coeffs) > n {
		n = len(other.Coeffs)
	}
	out := make([]field.Element, n)
	for i := 0; i < n; i++ {
		out[i] = poly.coeffAt(n - 1 - i).Add(other.coeffAt(n - 1 - i))
	}
	return New(out, poly.P)
}

// Sub returns poly - other.
func (poly Polynomial) Sub(other Polynomial) Polynomial {
	return poly.Add(other.Scale(field.FromInt64(-1, poly.P)))
}

// Scale returns c*poly.
func (poly Polynomial) Scale(c field.Element) Polynomial {
	out := make([]field.Element, len(poly.Coeffs))
	for i, coeff := range poly.Coeffs {
		out[i] = coeff.Mul(c)
	}
	return New(out, poly.P)
}

// Mul returns poly * other via schoolbook convolution.
func (poly Polynomial) Mul(other Polynomial) Polynomial {
	if poly.IsZero() || other.IsZero() {
		return Zero(poly.P)
	}
	deg := poly.Degree() + other.Degree()
	out := make([]field.Element, deg+1)
	for i := range out {
		out[i] = field.Zero(poly.P)
	}
	for i, a := range poly.Coeffs {
		if a.IsZero() {
			continue
		}
		ai := poly.Degree() - i
		for j, b := range other.Coeffs {
			bj := other.Degree() - j
			k := ai + bj
			out[deg-k] = out[deg-k].Add(a.Mul(b))
		}
	}
	return New(out, poly.P)
}

// Eval evaluates poly at x via Horner's rule over the descending-order
// representation.
func (poly Polynomial) Eval(x field.Element) field.Element {
	acc := field.Zero(poly.P)
	for _, c := range poly.Coeffs {
		acc = acc.Mul(x).Add(c)
	}
	return acc
}

// DivMod performs polynomial long division: poly = q*divisor + r, with
// deg(r) < deg(divisor). Returns an error if divisor is zero.
func (poly Polynomial) DivMod(divisor Polynomial) (q, r Polynomial, err error) {
	if divisor.IsZero() {
		return Polynomial{}, Polynomial{}, fmt.Errorf("poly: division by zero polynomial")
	}
	divDeg := divisor.Degree()
	leadInv := divisor.Coeffs[0].Inverse()

	rem := New(append([]field.Element(nil), poly.Coeffs...), poly.P)
	quotient := Zero(poly.P)

	for !rem.IsZero() && rem.Degree() >= divDeg {
		shift := rem.Degree() - divDeg
		factor := rem.Coeffs[0].Mul(leadInv)

		// term = factor * x^shift, expressed as a descending-order
		// polynomial of degree shift with a single nonzero coefficient.
		termCoeffs := make([]field.Element, shift+1)
		for i := range termCoeffs {
			termCoeffs[i] = field.Zero(poly.P)
		}
		termCoeffs[0] = factor
		term := New(termCoeffs, poly.P)

		quotient = quotient.Add(term)
		rem = rem.Sub(term.Mul(divisor))
	}
	return quotient, rem, nil
}

// Lagrange interpolates the unique polynomial of degree < len(xs) passing
// through the given (x, y) pairs.
func Lagrange(xs, ys []field.Element, p *big.Int) (Polynomial, error) {
	if len(xs) != len(ys) {
		return Polynomial{}, fmt.Errorf("poly: mismatched interpolation point counts: %d xs, %d ys", len(xs), len(ys))
	}
	result := Zero(p)
	for i := range xs {
		term := One(p)
		denom := field.One(p)
		for j := range xs {
			if i == j {
				continue
			}
			// (x - xs[j])
			factor := New([]field.Element{field.One(p), xs[j].Neg()}, p)
			term = term.Mul(factor)
			denom = denom.Mul(xs[i].Sub(xs[j]))
		}
		term = term.Scale(ys[i].Mul(denom.Inverse()))
		result = result.Add(term)
	}
	return result, nil
}

// Vanishing builds t(x) = prod(x - pt) for pt in points, by iterative
// multiplication starting from the constant polynomial 1.
func Vanishing(points []field.Element, p *big.Int) Polynomial {
	t := One(p)
	for _, pt := range points {
		factor := New([]field.Element{field.One(p), pt.Neg()}, p)
		t = t.Mul(factor)
	}
	return t
}
