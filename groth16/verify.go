package groth16

// Verify checks the simplified Groth16 pairing equation
//
//	e(A, B) == e([alpha]_1, [beta]_2) * e(C, G_2)
//
// in the target group. It is total: an ill-formed proof is simply invalid,
// never an error.
//
// This is the textbook equation without the gamma/delta public-input split
// and without the r/s blinding factors, so it provides succinctness and
// soundness but no zero-knowledge and no public-input binding. Promoting to
// full Groth16 is a structural change left to a fork that needs it.
func Verify(b Backend, proof *Proof, alphaG1 G1, betaG2 G2) bool {
	if proof == nil || proof.A == nil || proof.B == nil || proof.C == nil {
		return false
	}
	// e(-A, B) * e(alpha, beta) * e(C, g2) == 1  <=>  the equation above
	ok, err := b.PairingCheck(
		[]G1{b.G1Neg(proof.A), alphaG1, proof.C},
		[]G2{proof.B, betaG2, b.G2Generator()},
	)
	return err == nil && ok
}
