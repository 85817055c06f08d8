// Package zksnark wires the module's pieces into one pipeline: an R1CS goes
// in, a QAP and CRS come out of Compile, and the result proves and verifies
// witnesses. Callers who need finer control use the qap and groth16
// packages directly.
package zksnark

import (
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/Fabian5150/zk-snark-system/groth16"
	"github.com/Fabian5150/zk-snark-system/qap"
	"github.com/Fabian5150/zk-snark-system/r1cs"
)

// CompiledSystem is a constraint system with its QAP and the CRS produced
// for it. The CRS is immutable after Compile; any number of Prove calls may
// share one CompiledSystem.
type CompiledSystem struct {
	QAP     *qap.QAP
	CRS     *groth16.CRS
	Backend groth16.Backend
}

// VerifiedProof is a proof together with the witness it was generated from,
// produced after checking that it verifies.
type VerifiedProof struct {
	Proof   *groth16.Proof
	Witness []*big.Int
}

// Compile builds the QAP for cs and runs the trusted setup over the given
// backend. Pass nil opts for a random production setup; tests pass fixed
// toxic scalars through opts.
func Compile(cs *r1cs.R1CS, backend groth16.Backend, opts *groth16.SetupOpts) (
	*CompiledSystem, error) {
	q, err := qap.Build(cs)
	if err != nil {
		return nil, fmt.Errorf("error building QAP: %w", err)
	}
	crs, err := groth16.RunSetup(q, backend, opts)
	if err != nil {
		return nil, fmt.Errorf("error running setup: %w", err)
	}
	return &CompiledSystem{QAP: q, CRS: crs, Backend: backend}, nil
}

// Prove generates a proof for the witness under the compiled system's CRS.
func (cs *CompiledSystem) Prove(witness []*big.Int) (*groth16.Proof, error) {
	return groth16.Prove(cs.Backend, cs.CRS, cs.QAP, witness)
}

// Verify generates a proof from the witness and checks it, returning the
// proof and witness bundled together on success.
func (cs *CompiledSystem) Verify(witness []*big.Int) (*VerifiedProof, error) {
	proof, err := cs.Prove(witness)
	if err != nil {
		return nil, fmt.Errorf("error creating proof: %w", err)
	}
	if !groth16.Verify(cs.Backend, proof, cs.CRS.AlphaG1, cs.CRS.BetaG2) {
		return nil, fmt.Errorf("proof failed verification under its own CRS")
	}
	return &VerifiedProof{Proof: proof, Witness: witness}, nil
}

// ExportCRS writes the compiled system's CRS to a file as a binary blob.
func (cs *CompiledSystem) ExportCRS(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()
	return cs.WriteCRS(file)
}

// WriteCRS writes the CRS as a binary blob that UnmarshalCRS can read back.
func (cs *CompiledSystem) WriteCRS(w io.Writer) error {
	data, err := groth16.MarshalCRS(cs.CRS)
	if err != nil {
		return fmt.Errorf("error marshaling CRS: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("error writing CRS: %w", err)
	}
	return nil
}

// ExportProof writes the proof to a file as a binary blob.
func (vp *VerifiedProof) ExportProof(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating proof file: %w", err)
	}
	defer file.Close()
	return vp.WriteProof(file)
}

// WriteProof writes the proof as a binary blob that UnmarshalProof can read
// back.
func (vp *VerifiedProof) WriteProof(w io.Writer) error {
	data, err := groth16.MarshalProof(vp.Proof)
	if err != nil {
		return fmt.Errorf("error marshaling proof: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("error writing proof: %w", err)
	}
	return nil
}
