package notes_test

import (
	"fmt"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/zkledger/rollup/proofs/notes"
	"github.com/zkledger/rollup/utils"
)

func assertNoError(t *testing.T, err error, msgAndArgs ...any) {
	if err != nil {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sunexpected err: %s", message, err)
	}
}

func assertError(t *testing.T, err error, msgAndArgs ...any) {
	if err == nil {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sexpected err", message)
	}
}

func assertEqual(t *testing.T, actual, expected any, msgAndArgs ...any) {
	if actual != expected {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sactual: %v expected: %v", message, actual, expected)
	}
}

func TestBridgeCallData(t *testing.T) {
	sample := notes.BridgeCallData{
		Address:        common.HexToAddress("0x6d77bb8f9a1bd31de0b99cbd57943e60f6e365ff"),
		NumOutputNotes: 2,
		InputAssetID:   1,
		OutputAAssetID: 7,
		OutputBAssetID: 3,
	}

	spec.Run(t, "Pack", func(t *testing.T, when spec.G, it spec.S) {
		it("round trips", func() {
			packed, err := sample.Pack()
			assertNoError(t, err)

			got, err := notes.UnpackBridgeCallData(packed)
			assertNoError(t, err)
			assertEqual(t, got, sample)
		})

		it("round trips at component maximums", func() {
			full := notes.BridgeCallData{
				Address:        common.HexToAddress("0xffffffffffffffffffffffffffffffffffffffff"),
				NumOutputNotes: 3,
				InputAssetID:   1<<32 - 1,
				OutputAAssetID: 1<<32 - 1,
				OutputBAssetID: 1<<26 - 1,
			}

			packed, err := full.Pack()
			assertNoError(t, err)

			got, err := notes.UnpackBridgeCallData(packed)
			assertNoError(t, err)
			assertEqual(t, got, full)
		})

		it("round trips the zero value", func() {
			packed, err := notes.BridgeCallData{}.Pack()
			assertNoError(t, err)

			got, err := notes.UnpackBridgeCallData(packed)
			assertNoError(t, err)
			assertEqual(t, got, notes.BridgeCallData{})
		})

		it("rejects an oversized num output notes", func() {
			b := sample
			b.NumOutputNotes = 4

			_, err := b.Pack()
			assertError(t, err, "2-bit field")
		})

		it("rejects an oversized output B asset id", func() {
			b := sample
			b.OutputBAssetID = 1 << 26

			_, err := b.Pack()
			assertError(t, err, "26-bit field")
		})

		it("keeps the full 32-bit output A asset id", func() {
			b := sample
			b.OutputAAssetID = 1<<32 - 1

			_, err := b.Pack()
			assertNoError(t, err)
		})
	}, spec.Report(report.Terminal{}))

	spec.Run(t, "Unpack", func(t *testing.T, when spec.G, it spec.S) {
		it("rejects bits past the packed width", func() {
			// 2^252 is representable in the field but out of layout
			var e fr.Element
			var buf [32]byte
			buf[0] = 0x10
			e.SetBytes(buf[:])

			_, err := notes.UnpackBridgeCallData(e)
			assertError(t, err)
		})
	}, spec.Report(report.Terminal{}))
}

func TestBridgeCallDataJSON(t *testing.T) {
	sample := notes.BridgeCallData{
		Address:        common.HexToAddress("0x6d77bb8f9a1bd31de0b99cbd57943e60f6e365ff"),
		NumOutputNotes: 1,
		InputAssetID:   2,
		OutputAAssetID: 3,
		OutputBAssetID: 4,
	}

	buf, err := utils.MarshalJSON(sample)
	assertNoError(t, err)

	var got notes.BridgeCallData
	assertNoError(t, utils.UnmarshalJSON(buf, &got))
	assertEqual(t, got, sample)
}

func FuzzBridgeCallDataRoundTrip(f *testing.F) {
	f.Add([]byte{0x01}, uint8(0), uint32(0), uint32(0), uint32(0))
	f.Add([]byte{0xff, 0xee, 0xdd}, uint8(3), uint32(1<<32-1), uint32(42), uint32(1<<26-1))

	f.Fuzz(func(t *testing.T, addr []byte, numOutputNotes uint8, inputAsset, outputAAsset, outputBAsset uint32) {
		b := notes.BridgeCallData{
			Address:        common.BytesToAddress(addr),
			NumOutputNotes: numOutputNotes & 0x3,
			InputAssetID:   inputAsset,
			OutputAAssetID: outputAAsset,
			OutputBAssetID: outputBAsset & (1<<26 - 1),
		}

		packed, err := b.Pack()
		if err != nil {
			t.Fatal(err)
		}

		got, err := notes.UnpackBridgeCallData(packed)
		if err != nil {
			t.Fatal(err)
		}
		if got != b {
			t.Fatalf("round trip mismatch: have %s, want %s", got, b)
		}
	})
}
