package groth16

import "errors"

var (
	// ErrBadWitnessLength is returned by Prove when the witness length does
	// not match the QAP's wire count.
	ErrBadWitnessLength = errors.New("groth16: witness length does not match wire count")

	// ErrInvalidWitness is returned by Prove when (L*R - O) is not divisible
	// by the vanishing polynomial, i.e. the witness does not satisfy the
	// constraint system. Proof construction is aborted before any group work.
	ErrInvalidWitness = errors.New("groth16: witness does not satisfy the constraint system")

	// ErrBadRNG is returned by setup when the random source keeps producing
	// zero scalars.
	ErrBadRNG = errors.New("groth16: random source produced zero scalar")
)
