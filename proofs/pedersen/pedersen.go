package pedersen

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/zkledger/rollup/proofs/notes"
)

// Encrypt Hashes N ordered inputs into a single curve point over the
// purpose's generator range. The input count must equal the registered
// arity; a purpose registered for another mode is rejected, pairing the
// wrong gadget with an index defeats the domain separation.
func Encrypt(p notes.Purpose, inputs []fr.Element) (bn254.G1Affine, error) {
	return hashWithMode(p, notes.HashModeEncrypt, inputs)
}

// Compress Like Encrypt but reduces the output to a single field element
func Compress(p notes.Purpose, inputs []fr.Element) (fr.Element, error) {
	var out fr.Element

	pt, err := hashWithMode(p, notes.HashModeCompress, inputs)
	if err != nil {
		return out, err
	}

	buf := pt.X.Bytes()
	out.SetBytes(buf[:])
	return out, nil
}

// CompressToPoint Keeps the full curve point, for consumers that feed it
// into further point arithmetic
func CompressToPoint(p notes.Purpose, inputs []fr.Element) (bn254.G1Affine, error) {
	return hashWithMode(p, notes.HashModeCompressToPoint, inputs)
}

func hashWithMode(p notes.Purpose, mode notes.HashMode, inputs []fr.Element) (bn254.G1Affine, error) {
	var out bn254.G1Affine

	e, ok := notes.Lookup(p)
	if !ok {
		return out, fmt.Errorf("pedersen: unknown purpose %s", p)
	}
	if e.Mode != mode {
		return out, fmt.Errorf("pedersen: %s is registered for %s, not %s", p, e.Mode, mode)
	}
	if uint32(len(inputs)) != e.Arity {
		return out, fmt.Errorf("pedersen: %s takes %d inputs, got %d", p, e.Arity, len(inputs))
	}

	if _, err := out.MultiExp(Range(e), inputs, ecc.MultiExpConfig{}); err != nil {
		return out, err
	}
	return out, nil
}
