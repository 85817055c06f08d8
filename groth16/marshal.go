package groth16

import (
	"fmt"
	"math/big"

	bn254 "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/fxamacker/cbor/v2"
)

// crsBlob and proofBlob are the wire shapes for CRS and Proof persistence.
// Group elements are encoded in their backend's canonical compressed form,
// and slice ordering mirrors the in-memory ordering exactly, so a
// deserialized CRS feeds the prover's inner products unchanged.
type crsBlob struct {
	AlphaG1 []byte   `cbor:"1,keyasint"`
	BetaG1  []byte   `cbor:"2,keyasint"`
	BetaG2  []byte   `cbor:"3,keyasint"`
	G1SRS   [][]byte `cbor:"4,keyasint"`
	G2SRS   [][]byte `cbor:"5,keyasint"`
	TTauSRS [][]byte `cbor:"6,keyasint"`
	Psis    [][]byte `cbor:"7,keyasint"`
}

type proofBlob struct {
	A []byte `cbor:"1,keyasint"`
	B []byte `cbor:"2,keyasint"`
	C []byte `cbor:"3,keyasint"`
}

// MarshalCRS encodes a CRS as a CBOR blob.
func MarshalCRS(crs *CRS) ([]byte, error) {
	blob := crsBlob{}
	var err error
	if blob.AlphaG1, err = g1Bytes(crs.AlphaG1); err != nil {
		return nil, err
	}
	if blob.BetaG1, err = g1Bytes(crs.BetaG1); err != nil {
		return nil, err
	}
	if blob.BetaG2, err = g2Bytes(crs.BetaG2); err != nil {
		return nil, err
	}
	for _, group := range []struct {
		dst *[][]byte
		src []G1
	}{
		{&blob.G1SRS, crs.G1SRS},
		{&blob.TTauSRS, crs.TTauSRS},
		{&blob.Psis, crs.Psis},
	} {
		*group.dst = make([][]byte, len(group.src))
		for i, e := range group.src {
			if (*group.dst)[i], err = g1Bytes(e); err != nil {
				return nil, err
			}
		}
	}
	blob.G2SRS = make([][]byte, len(crs.G2SRS))
	for i, e := range crs.G2SRS {
		if blob.G2SRS[i], err = g2Bytes(e); err != nil {
			return nil, err
		}
	}
	return cbor.Marshal(blob)
}

// UnmarshalCRS decodes a CRS blob produced by MarshalCRS. The backend must
// be the one the CRS was generated with.
func UnmarshalCRS(b Backend, data []byte) (*CRS, error) {
	var blob crsBlob
	if err := cbor.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("groth16: decoding CRS: %w", err)
	}
	crs := &CRS{
		G1SRS:   make([]G1, len(blob.G1SRS)),
		G2SRS:   make([]G2, len(blob.G2SRS)),
		TTauSRS: make([]G1, len(blob.TTauSRS)),
		Psis:    make([]G1, len(blob.Psis)),
	}
	var err error
	if crs.AlphaG1, err = g1FromBytes(b, blob.AlphaG1); err != nil {
		return nil, err
	}
	if crs.BetaG1, err = g1FromBytes(b, blob.BetaG1); err != nil {
		return nil, err
	}
	if crs.BetaG2, err = g2FromBytes(b, blob.BetaG2); err != nil {
		return nil, err
	}
	for i, raw := range blob.G1SRS {
		if crs.G1SRS[i], err = g1FromBytes(b, raw); err != nil {
			return nil, err
		}
	}
	for i, raw := range blob.G2SRS {
		if crs.G2SRS[i], err = g2FromBytes(b, raw); err != nil {
			return nil, err
		}
	}
	for i, raw := range blob.TTauSRS {
		if crs.TTauSRS[i], err = g1FromBytes(b, raw); err != nil {
			return nil, err
		}
	}
	for i, raw := range blob.Psis {
		if crs.Psis[i], err = g1FromBytes(b, raw); err != nil {
			return nil, err
		}
	}
	return crs, nil
}

// MarshalProof encodes a proof as a CBOR blob.
func MarshalProof(proof *Proof) ([]byte, error) {
	blob := proofBlob{}
	var err error
	if blob.A, err = g1Bytes(proof.A); err != nil {
		return nil, err
	}
	if blob.B, err = g2Bytes(proof.B); err != nil {
		return nil, err
	}
	if blob.C, err = g1Bytes(proof.C); err != nil {
		return nil, err
	}
	return cbor.Marshal(blob)
}

// UnmarshalProof decodes a proof blob produced by MarshalProof.
func UnmarshalProof(b Backend, data []byte) (*Proof, error) {
	var blob proofBlob
	if err := cbor.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("groth16: decoding proof: %w", err)
	}
	proof := &Proof{}
	var err error
	if proof.A, err = g1FromBytes(b, blob.A); err != nil {
		return nil, err
	}
	if proof.B, err = g2FromBytes(b, blob.B); err != nil {
		return nil, err
	}
	if proof.C, err = g1FromBytes(b, blob.C); err != nil {
		return nil, err
	}
	return proof, nil
}

func g1Bytes(e G1) ([]byte, error) {
	switch point := e.(type) {
	case bn254.G1Affine:
		raw := point.Bytes()
		return raw[:], nil
	case toyG1:
		return point.v.Bytes(), nil
	default:
		return nil, fmt.Errorf("groth16: unrecognized G1 element type %T", e)
	}
}

func g2Bytes(e G2) ([]byte, error) {
	switch point := e.(type) {
	case bn254.G2Affine:
		raw := point.Bytes()
		return raw[:], nil
	case toyG2:
		return point.v.Bytes(), nil
	default:
		return nil, fmt.Errorf("groth16: unrecognized G2 element type %T", e)
	}
}

func g1FromBytes(b Backend, data []byte) (G1, error) {
	switch b.(type) {
	case BN254:
		var point bn254.G1Affine
		if _, err := point.SetBytes(data); err != nil {
			return nil, fmt.Errorf("groth16: decoding G1 point: %w", err)
		}
		return point, nil
	case Toy:
		return toyG1{new(big.Int).SetBytes(data)}, nil
	default:
		return nil, fmt.Errorf("groth16: unrecognized backend type %T", b)
	}
}

func g2FromBytes(b Backend, data []byte) (G2, error) {
	switch b.(type) {
	case BN254:
		var point bn254.G2Affine
		if _, err := point.SetBytes(data); err != nil {
			return nil, fmt.Errorf("groth16: decoding G2 point: %w", err)
		}
		return point, nil
	case Toy:
		return toyG2{new(big.Int).SetBytes(data)}, nil
	default:
		return nil, fmt.Errorf("groth16: unrecognized backend type %T", b)
	}
}
