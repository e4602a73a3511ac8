package pedersen

import (
	"github.com/zkledger/rollup/types"
	"github.com/zkledger/rollup/utils"
	"golang.org/x/crypto/sha3"
)

func Keccak256Var[T ~string | ~[]byte](data ...T) (result types.Hash) {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		_, _ = utils.WriteNoEscape(h, []byte(b))
	}
	_ = utils.SumNoEscape(h, result[:0])

	return
}

func Keccak256[T ~string | ~[]byte](data T) (result types.Hash) {
	h := sha3.NewLegacyKeccak256()
	_, _ = utils.WriteNoEscape(h, []byte(data))
	_ = utils.SumNoEscape(h, result[:0])

	return
}
