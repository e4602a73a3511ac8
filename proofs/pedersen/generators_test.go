package pedersen

import (
	"testing"

	"github.com/zkledger/rollup/proofs/notes"
	"github.com/zkledger/rollup/types"
)

func TestKeccakVector(t *testing.T) {
	// keccak-256 of the empty input, fixed forever
	expected := types.MustHashFromString("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")

	if h := Keccak256(""); h != expected {
		t.Fatalf("got %s, expected %s", h, expected)
	}
	if h := Keccak256Var([]byte{}); h != expected {
		t.Fatalf("got %s, expected %s", h, expected)
	}
}

func TestGeneratorsWellFormed(t *testing.T) {
	seen := make(map[string]notes.GeneratorIndex)

	for i := notes.GeneratorIndex(0); i < precomputedGeneratorCount; i++ {
		g := At(i)
		if g.Index != i {
			t.Fatalf("generator %d claims index %d", i, g.Index)
		}
		if g.Point.IsInfinity() {
			t.Fatalf("generator %d is the identity", i)
		}
		if !g.Point.IsOnCurve() {
			t.Fatalf("generator %d not on curve", i)
		}
		if !g.Point.IsInSubGroup() {
			t.Fatalf("generator %d not in the prime order subgroup", i)
		}

		key := g.Point.X.String() + "," + g.Point.Y.String()
		if prev, ok := seen[key]; ok {
			t.Fatalf("generators %d and %d coincide", prev, i)
		}
		seen[key] = i
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	for _, i := range []notes.GeneratorIndex{0, 4, 47, precomputedGeneratorCount, precomputedGeneratorCount + 13} {
		a := At(i).Point
		b := At(i).Point
		if !a.Equal(&b) {
			t.Fatalf("generator %d differs across reads", i)
		}

		if c := deriveGenerator(i).Point; !a.Equal(&c) {
			t.Fatalf("generator %d differs from fresh derivation", i)
		}
	}
}

func TestRangeMatchesRegistry(t *testing.T) {
	e := notes.MustLookup(notes.AccountNoteHashInputs)

	points := Range(e)
	if uint32(len(points)) != e.Arity {
		t.Fatalf("got %d generators, expected %d", len(points), e.Arity)
	}
	for k := range points {
		expected := At(e.Index + notes.GeneratorIndex(k)).Point
		if !points[k].Equal(&expected) {
			t.Fatalf("generator %d of range mismatches", k)
		}
	}
}
