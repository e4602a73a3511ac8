package notes

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Bit offsets of the bridge call data components, least significant first.
// Offsets and widths together are the packed layout every producer and
// consumer must agree on bit for bit.
const (
	bridgeAddressShift        = 0
	bridgeNumOutputNotesShift = bridgeAddressShift + DefiBridgeAddressBitLength
	bridgeInputAssetIDShift   = bridgeNumOutputNotesShift + DefiBridgeNumOutputNotesBitLength
	bridgeOutputAAssetIDShift = bridgeInputAssetIDShift + DefiBridgeInputAssetIDBitLength
	bridgeOutputBAssetIDShift = bridgeOutputAAssetIDShift + DefiBridgeOutputAAssetIDBitLength

	// BridgeCallDataBitLength Total packed width, fits one field element
	BridgeCallDataBitLength = bridgeOutputBAssetIDShift + DefiBridgeOutputBAssetIDBitLength
)

// BridgeCallData The external protocol call encoded inside claim and DeFi
// interaction notes: which bridge to call, with which assets, and how many
// output notes the interaction produces.
//
// NumOutputNotes is a two bit field; the legal range (0-2) is enforced by
// the consuming circuit, not by the packing.
type BridgeCallData struct {
	Address        common.Address `json:"address"`
	NumOutputNotes uint8          `json:"num_output_notes"`
	InputAssetID   uint32         `json:"input_asset_id"`
	OutputAAssetID uint32         `json:"output_a_asset_id"`
	OutputBAssetID uint32         `json:"output_b_asset_id"`
}

// Pack Encodes the call data into a single field element. Every component
// is width checked through the field width registry first; an oversized
// component is an error, never a truncation.
func (b BridgeCallData) Pack() (fr.Element, error) {
	var out fr.Element

	addr := new(uint256.Int).SetBytes(b.Address.Bytes())
	if err := DefiBridgeAddressWidth.Check(addr); err != nil {
		return out, err
	}
	if err := DefiBridgeNumOutputNotesWidth.CheckUint64(uint64(b.NumOutputNotes)); err != nil {
		return out, err
	}
	if err := DefiBridgeInputAssetIDWidth.CheckUint64(uint64(b.InputAssetID)); err != nil {
		return out, err
	}
	if err := DefiBridgeOutputAAssetIDWidth.CheckUint64(uint64(b.OutputAAssetID)); err != nil {
		return out, err
	}
	if err := DefiBridgeOutputBAssetIDWidth.CheckUint64(uint64(b.OutputBAssetID)); err != nil {
		return out, err
	}

	packed := addr
	packed.Or(packed, bridgeComponent(uint64(b.NumOutputNotes), bridgeNumOutputNotesShift))
	packed.Or(packed, bridgeComponent(uint64(b.InputAssetID), bridgeInputAssetIDShift))
	packed.Or(packed, bridgeComponent(uint64(b.OutputAAssetID), bridgeOutputAAssetIDShift))
	packed.Or(packed, bridgeComponent(uint64(b.OutputBAssetID), bridgeOutputBAssetIDShift))

	buf := packed.Bytes32()
	out.SetBytes(buf[:])
	return out, nil
}

// UnpackBridgeCallData Exact inverse of Pack. Rejects field elements with
// bits set at or above the packed width.
func UnpackBridgeCallData(e fr.Element) (BridgeCallData, error) {
	var b BridgeCallData

	buf := e.Bytes()
	packed := new(uint256.Int).SetBytes(buf[:])
	if packed.BitLen() > BridgeCallDataBitLength {
		return b, errors.New("bridge call data: bits set past packed width")
	}

	addr := bridgeExtract(packed, bridgeAddressShift, DefiBridgeAddressBitLength)
	b.Address = common.BytesToAddress(addr.Bytes())
	b.NumOutputNotes = uint8(bridgeExtract(packed, bridgeNumOutputNotesShift, DefiBridgeNumOutputNotesBitLength).Uint64())
	b.InputAssetID = uint32(bridgeExtract(packed, bridgeInputAssetIDShift, DefiBridgeInputAssetIDBitLength).Uint64())
	b.OutputAAssetID = uint32(bridgeExtract(packed, bridgeOutputAAssetIDShift, DefiBridgeOutputAAssetIDBitLength).Uint64())
	b.OutputBAssetID = uint32(bridgeExtract(packed, bridgeOutputBAssetIDShift, DefiBridgeOutputBAssetIDBitLength).Uint64())

	return b, nil
}

func (b BridgeCallData) String() string {
	return fmt.Sprintf("bridge[%s notes=%d in=%d outA=%d outB=%d]",
		b.Address, b.NumOutputNotes, b.InputAssetID, b.OutputAAssetID, b.OutputBAssetID)
}

func bridgeComponent(v uint64, shift uint) *uint256.Int {
	return new(uint256.Int).Lsh(uint256.NewInt(v), shift)
}

func bridgeExtract(packed *uint256.Int, shift uint, bits uint32) *uint256.Int {
	mask := new(uint256.Int).Lsh(uint256.NewInt(1), uint(bits))
	mask.SubUint64(mask, 1)
	return mask.And(mask, new(uint256.Int).Rsh(packed, shift))
}
