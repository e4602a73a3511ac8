// Package pedersen derives the indexed generator sequence the note
// registries point into, and implements the hash modes consuming it.
package pedersen

import (
	"encoding/binary"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/floatdrop/lru"
	"github.com/zkledger/rollup/proofs/notes"
	"github.com/zkledger/rollup/utils"
)

const logPrefix = "PEDERSEN"

// generatorSeedLabel domain separates generator seeds from every other
// keccak use in the system
const generatorSeedLabel = "rollup_note_generator"

var hashToCurveDomain = []byte("rollup-notes-pedersen-generators-v1")

// Generator An independent, publicly fixed curve point. Generators at
// distinct indices have unknown discrete log relations to each other, which
// is what makes the index registry an effective domain separator.
type Generator struct {
	Point bn254.G1Affine
	Index notes.GeneratorIndex
}

// precomputedGeneratorCount covers every registered range plus the reserved
// gap, so registry consumers never take the derivation slow path
const precomputedGeneratorCount = 64

var precomputedGenerators [precomputedGeneratorCount]Generator

var (
	tailLock  sync.Mutex
	tailCache = lru.New[notes.GeneratorIndex, *Generator](128)
)

//nolint:gochecknoinits
func init() {
	for i := range precomputedGenerators {
		precomputedGenerators[i] = deriveGenerator(notes.GeneratorIndex(i))
	}
}

// deriveGenerator seed = Keccak256(label || be32(index)), mapped to the
// curve under a fixed hash-to-curve domain. Deterministic: prover and
// verifier rebuild the exact same sequence from the index alone.
func deriveGenerator(i notes.GeneratorIndex) Generator {
	var ib [4]byte
	binary.BigEndian.PutUint32(ib[:], uint32(i))
	seed := Keccak256Var([]byte(generatorSeedLabel), ib[:])

	p, err := bn254.HashToG1(seed.Slice(), hashToCurveDomain)
	if err != nil {
		utils.Panicf("generator %d derivation failed: %s", i, err)
	}
	return Generator{Point: p, Index: i}
}

// At The generator at a given index. Indices under the precompute horizon
// are served from the fixed table; the tail is derived on demand and kept in
// an LRU cache.
func At(i notes.GeneratorIndex) *Generator {
	if i < precomputedGeneratorCount {
		return &precomputedGenerators[i]
	}

	tailLock.Lock()
	defer tailLock.Unlock()

	if g := tailCache.Get(i); g != nil {
		return *g
	}

	g := deriveGenerator(i)
	tailCache.Set(i, &g)
	utils.Debugf(logPrefix, "derived generator %d past precompute horizon", i)
	return &g
}

// Range The Arity generators owned by a registry entry, in index order
func Range(e notes.Entry) []bn254.G1Affine {
	out := make([]bn254.G1Affine, e.Arity)
	for k := range out {
		out[k] = At(e.Index + notes.GeneratorIndex(k)).Point
	}
	return out
}
