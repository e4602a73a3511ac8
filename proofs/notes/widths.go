package notes

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/holiman/uint256"
	"github.com/zkledger/rollup/utils"
)

// Bit lengths of width-constrained note fields. All units are bits.
//
// These are part of the packed layout of every historical commitment; a
// change here is a hard fork, not a patch. In particular the output B asset
// id is intentionally narrower than the other asset ids so that the bridge
// call data fits a single field element. Do not unify.
const (
	NoteValueBitLength = 252

	DefiBridgeAddressBitLength        = 160
	DefiBridgeNumOutputNotesBitLength = 2
	DefiBridgeInputAssetIDBitLength   = 32
	DefiBridgeOutputAAssetIDBitLength = 32
	DefiBridgeOutputBAssetIDBitLength = 26
)

// ScalarFieldBitLength Bit length of the proving system's scalar field.
// Every width above must stay strictly under it so field arithmetic has
// headroom and packed layouts cannot wrap.
var ScalarFieldBitLength = ecc.BN254.ScalarField().BitLen()

// FieldWidth A named field purpose with a declared bit length. All range
// checks on width-constrained values go through this one type so producers
// cannot drift apart on bounds.
type FieldWidth uint8

const (
	NoteValueWidth = FieldWidth(iota)
	DefiBridgeAddressWidth
	DefiBridgeNumOutputNotesWidth
	DefiBridgeInputAssetIDWidth
	DefiBridgeOutputAAssetIDWidth
	DefiBridgeOutputBAssetIDWidth
)

var fieldWidths = [...]struct {
	name string
	bits uint32
}{
	NoteValueWidth:                {"note_value", NoteValueBitLength},
	DefiBridgeAddressWidth:        {"defi_bridge_address", DefiBridgeAddressBitLength},
	DefiBridgeNumOutputNotesWidth: {"defi_bridge_num_output_notes", DefiBridgeNumOutputNotesBitLength},
	DefiBridgeInputAssetIDWidth:   {"defi_bridge_input_asset_id", DefiBridgeInputAssetIDBitLength},
	DefiBridgeOutputAAssetIDWidth: {"defi_bridge_output_a_asset_id", DefiBridgeOutputAAssetIDBitLength},
	DefiBridgeOutputBAssetIDWidth: {"defi_bridge_output_b_asset_id", DefiBridgeOutputBAssetIDBitLength},
}

//nolint:gochecknoinits
func init() {
	for _, w := range fieldWidths {
		if int(w.bits) >= ScalarFieldBitLength {
			utils.Panicf("field width registry: %s is %d bits, field only has %d", w.name, w.bits, ScalarFieldBitLength)
		}
	}
}

func (w FieldWidth) String() string {
	if int(w) < len(fieldWidths) {
		return fieldWidths[w].name
	}
	return fmt.Sprintf("field_width(%d)", uint8(w))
}

// Bits The declared bit length of this field purpose
func (w FieldWidth) Bits() uint32 {
	return fieldWidths[w].bits
}

// Check Rejects any value that needs more bits than this field is allotted.
// Values are never truncated: an oversized value is the caller constructing
// an invalid note or record, and smuggling the extra bits into an adjacent
// field is exactly the failure this check exists to stop.
func (w FieldWidth) Check(v *uint256.Int) error {
	if v.BitLen() > int(w.Bits()) {
		return fmt.Errorf("%s needs %d bits, only %d allotted", w, v.BitLen(), w.Bits())
	}
	return nil
}

func (w FieldWidth) CheckUint64(v uint64) error {
	return w.Check(uint256.NewInt(v))
}
