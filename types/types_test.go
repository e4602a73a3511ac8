package types

import (
	"testing"

	"github.com/zkledger/rollup/utils"
)

func TestHashJSON(t *testing.T) {
	h := MustHashFromString("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")

	buf, err := utils.MarshalJSON(h)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != `"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"` {
		t.Fatalf("unexpected encoding %s", buf)
	}

	var got Hash
	if err = utils.UnmarshalJSON(buf, &got); err != nil {
		t.Fatal(err)
	}
	if got != h {
		t.Fatalf("got %s, expected %s", got, h)
	}
}

func TestHashFromString(t *testing.T) {
	if _, err := HashFromString("abcd"); err == nil {
		t.Fatal("expected size error")
	}
	if _, err := HashFromString("zz"); err == nil {
		t.Fatal("expected decode error")
	}

	if h := HashFromBytes([]byte{1, 2, 3}); h != ZeroHash {
		t.Fatal("short input must yield the zero hash")
	}
}
