// Package notes defines the generator index and field width registries of
// the rollup's confidential note system. Everything here is immutable,
// process-wide configuration baked into every historical commitment.
package notes

import (
	"fmt"
	"slices"

	"github.com/dolthub/swiss"
	"github.com/zkledger/rollup/utils"
)

// GeneratorIndex A starting position in the global, append-only sequence of
// independent curve generators. Each purpose owns [Index, Index+Arity).
type GeneratorIndex uint32

// HashMode The shape of the gadget a generator range is meant to be consumed
// by. The registry records it so callers can be checked against the grouping
// they were assigned; it does not select the gadget itself.
type HashMode uint8

const (
	// HashModeEncrypt N ordered inputs hashed into a single curve point
	HashModeEncrypt = HashMode(iota)
	// HashModeCompress output reduced to a single field element
	HashModeCompress
	// HashModeCompressToPoint output kept as a full curve point
	HashModeCompressToPoint
)

func (m HashMode) String() string {
	switch m {
	case HashModeEncrypt:
		return "encrypt"
	case HashModeCompress:
		return "compress"
	case HashModeCompressToPoint:
		return "compress_to_point"
	default:
		return "unknown"
	}
}

// Purpose Symbolic tag bound one-to-one to a generator index range.
// Purposes are immutable once published: proofs generated under one binding
// are unverifiable under another.
type Purpose uint8

const (
	JoinSplitNullifierHashInputs = Purpose(iota)
	AccountNoteHashInputs
	AccountAliasIDNullifier
	AccountGibberishNullifier
	JoinSplitNoteOwner
	JoinSplitClaimNotePartialState
	JoinSplitNoteValue
	JoinSplitNoteSecret
	JoinSplitNoteAssetID
	JoinSplitNoteNonce
	JoinSplitNullifierAccountPrivateKey
	JoinSplitClaimNoteValue
	JoinSplitClaimNoteBridgeID
	JoinSplitClaimNoteDefiInteractionNonce
	DefiInteractionNoteTotalInputValue
	DefiInteractionNoteBridgeID
	DefiInteractionNoteTotalOutputAValue
	DefiInteractionNoteTotalOutputBValue
	DefiInteractionNoteInteractionNonce
	DefiInteractionNoteInteractionResult
)

var purposeNames = [...]string{
	JoinSplitNullifierHashInputs:           "join_split_nullifier_hash_inputs",
	AccountNoteHashInputs:                  "account_note_hash_inputs",
	AccountAliasIDNullifier:                "account_alias_id_nullifier",
	AccountGibberishNullifier:              "account_gibberish_nullifier",
	JoinSplitNoteOwner:                     "join_split_note_owner",
	JoinSplitClaimNotePartialState:         "join_split_claim_note_partial_state",
	JoinSplitNoteValue:                     "join_split_note_value",
	JoinSplitNoteSecret:                    "join_split_note_secret",
	JoinSplitNoteAssetID:                   "join_split_note_asset_id",
	JoinSplitNoteNonce:                     "join_split_note_nonce",
	JoinSplitNullifierAccountPrivateKey:    "join_split_nullifier_account_private_key",
	JoinSplitClaimNoteValue:                "join_split_claim_note_value",
	JoinSplitClaimNoteBridgeID:             "join_split_claim_note_bridge_id",
	JoinSplitClaimNoteDefiInteractionNonce: "join_split_claim_note_defi_interaction_nonce",
	DefiInteractionNoteTotalInputValue:     "defi_interaction_note_total_input_value",
	DefiInteractionNoteBridgeID:            "defi_interaction_note_bridge_id",
	DefiInteractionNoteTotalOutputAValue:   "defi_interaction_note_total_output_a_value",
	DefiInteractionNoteTotalOutputBValue:   "defi_interaction_note_total_output_b_value",
	DefiInteractionNoteInteractionNonce:    "defi_interaction_note_interaction_nonce",
	DefiInteractionNoteInteractionResult:   "defi_interaction_note_interaction_result",
}

func (p Purpose) String() string {
	if int(p) < len(purposeNames) {
		return purposeNames[p]
	}
	return fmt.Sprintf("purpose(%d)", uint8(p))
}

// Entry A single registry binding. Index and Arity are part of every
// historical commitment computed against them and must never change.
type Entry struct {
	Purpose Purpose        `json:"purpose"`
	Index   GeneratorIndex `json:"index"`
	Arity   uint32         `json:"arity"`
	Mode    HashMode       `json:"mode"`
}

// End One past the last generator index owned by this entry
func (e Entry) End() GeneratorIndex {
	return e.Index + GeneratorIndex(e.Arity)
}

// generatorTable The closed enumeration of purpose bindings. Numbering
// matches the deployed protocol; indices 17-33 are a reserved gap kept for
// future note constructs so existing purposes never get renumbered.
var generatorTable = []Entry{
	{JoinSplitNullifierHashInputs, 0, 4, HashModeEncrypt},
	{AccountNoteHashInputs, 4, 3, HashModeEncrypt},
	{AccountAliasIDNullifier, 7, 4, HashModeCompress},
	{AccountGibberishNullifier, 11, 2, HashModeCompress},
	{JoinSplitNoteOwner, 13, 2, HashModeCompressToPoint},
	{JoinSplitClaimNotePartialState, 15, 2, HashModeCompressToPoint},

	// 17-33 reserved

	{JoinSplitNoteValue, 34, 1, HashModeEncrypt},
	{JoinSplitNoteSecret, 35, 1, HashModeEncrypt},
	{JoinSplitNoteAssetID, 36, 1, HashModeEncrypt},
	{JoinSplitNoteNonce, 37, 1, HashModeEncrypt},
	{JoinSplitNullifierAccountPrivateKey, 38, 1, HashModeEncrypt},
	{JoinSplitClaimNoteValue, 39, 1, HashModeEncrypt},
	{JoinSplitClaimNoteBridgeID, 40, 1, HashModeEncrypt},
	{JoinSplitClaimNoteDefiInteractionNonce, 41, 1, HashModeEncrypt},
	{DefiInteractionNoteTotalInputValue, 42, 1, HashModeEncrypt},
	{DefiInteractionNoteBridgeID, 43, 1, HashModeEncrypt},
	{DefiInteractionNoteTotalOutputAValue, 44, 1, HashModeEncrypt},
	{DefiInteractionNoteTotalOutputBValue, 45, 1, HashModeEncrypt},
	{DefiInteractionNoteInteractionNonce, 46, 1, HashModeEncrypt},
	{DefiInteractionNoteInteractionResult, 47, 1, HashModeEncrypt},
}

var generatorIndex *swiss.Map[Purpose, Entry]

//nolint:gochecknoinits
func init() {
	if err := CheckRanges(generatorTable); err != nil {
		utils.Panicf("generator index registry: %s", err)
	}

	generatorIndex = swiss.NewMap[Purpose, Entry](uint32(len(generatorTable)))
	for _, e := range generatorTable {
		generatorIndex.Put(e.Purpose, e)
	}
}

// CheckRanges Verifies that every entry has at least one generator and that
// no two entries claim an overlapping generator range. Overlap here is the
// single bug class the registry exists to prevent: two semantically distinct
// statements hashing to the same value.
func CheckRanges(entries []Entry) error {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int {
		if a.Index != b.Index {
			if a.Index < b.Index {
				return -1
			}
			return 1
		}
		return 0
	})

	seen := make(map[Purpose]struct{}, len(sorted))
	for i, e := range sorted {
		if e.Arity == 0 {
			return fmt.Errorf("%s has zero arity", e.Purpose)
		}
		if _, ok := seen[e.Purpose]; ok {
			return fmt.Errorf("%s recorded twice", e.Purpose)
		}
		seen[e.Purpose] = struct{}{}

		if i > 0 {
			prev := sorted[i-1]
			if e.Index < prev.End() {
				return fmt.Errorf("%s [%d,%d) overlaps %s [%d,%d)",
					e.Purpose, e.Index, e.End(), prev.Purpose, prev.Index, prev.End())
			}
		}
	}
	return nil
}

// Lookup Returns the generator index binding for a purpose
func Lookup(p Purpose) (Entry, bool) {
	return generatorIndex.Get(p)
}

// MustLookup Lookup for purposes known to be registered
func MustLookup(p Purpose) Entry {
	e, ok := Lookup(p)
	if !ok {
		utils.Panicf("generator index registry: no entry for %s", p)
	}
	return e
}

// Entries The full table sorted by index. Callers get a copy; the registry
// itself is immutable after init.
func Entries() []Entry {
	return slices.Clone(generatorTable)
}

// MaxIndex One past the highest generator index any purpose owns. New
// purposes take indices from here (or from a deliberately reserved gap),
// never by renumbering an existing entry.
func MaxIndex() (end GeneratorIndex) {
	for _, e := range generatorTable {
		if e.End() > end {
			end = e.End()
		}
	}
	return end
}
