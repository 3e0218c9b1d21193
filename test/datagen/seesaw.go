package datagen

import (
	"crypto/rand"

	"github.com/vechain/seesaw/seesaw"
)

func RandBytes32() (b seesaw.Bytes32) {
	rand.Read(b[:])
	return
}

// RandAddress yields a keyed identity, never a derived cell address.
func RandAddress() (a seesaw.Address) {
	rand.Read(a[:])
	a[0] &^= 0x80
	return
}

// RandCellAddress yields an address in the derived-cell space.
func RandCellAddress() (a seesaw.Address) {
	rand.Read(a[:])
	a[0] |= 0x80
	return
}

func RandBytes(n int) []byte {
	b := make([]byte, n)
	rand.Read(b)
	return b
}
