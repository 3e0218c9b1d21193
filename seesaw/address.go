// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package seesaw

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

const (
	// AddressLength length of address in bytes.
	AddressLength = 32

	// cellSpaceBit marks the derived-cell half of the address space.
	// Keyed identities are minted with the bit cleared, so a derived cell
	// address can never be claimed by an external signer.
	cellSpaceBit = 0x80
)

// cellDomain separates cell derivation preimages from every other use of
// the hash function.
var cellDomain = []byte("seesaw.cell")

// Address identity of an account or storage cell.
type Address [32]byte

// String implements the stringer interface
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Bytes returns byte slice form of address.
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero returns if address has all zero bytes.
func (a Address) IsZero() bool {
	return a == Address{}
}

// IsDerived returns whether the address lies in the reserved cell space.
func (a Address) IsDerived() bool {
	return a[0]&cellSpaceBit != 0
}

// MarshalJSON implements json.Marshaler.
func (a *Address) MarshalJSON() ([]byte, error) {
	if a == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Address) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err != nil {
		return err
	}
	parsed, err := ParseAddress(hex)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAddress convert string presented address into Address type.
func ParseAddress(s string) (Address, error) {
	if len(s) == AddressLength*2 {
	} else if len(s) == AddressLength*2+2 {
		if strings.ToLower(s[:2]) != "0x" {
			return Address{}, errors.New("invalid prefix")
		}
		s = s[2:]
	} else {
		return Address{}, errors.New("invalid length")
	}

	var addr Address
	if _, err := hex.Decode(addr[:], []byte(s)); err != nil {
		return Address{}, err
	}
	return addr, nil
}

// MustParseAddress convert string presented address into Address type, panic on error.
func MustParseAddress(s string) Address {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// BytesToAddress converts bytes slice into address.
// If b is larger than address length, b will be cropped (from the left).
// If b is smaller than address length, b will be extended (from the left).
func BytesToAddress(b []byte) Address {
	var addr Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(addr[AddressLength-len(b):], b)
	return addr
}

// DeriveCellAddress derives the address of a program-owned storage cell from
// a namespace and seed components. The derivation is deterministic and
// repeatable: the returned disambiguator is the first trial byte whose digest
// falls in the reserved cell space, and re-deriving with the same inputs
// always yields the same (address, disambiguator) pair.
func DeriveCellAddress(namespace string, seeds ...[]byte) (Address, uint8, error) {
	for d := 0; d <= 255; d++ {
		data, _ := rlp.EncodeToBytes([]interface{}{cellDomain, namespace, seeds, uint64(d)})
		h := Blake2b(data)
		if h[0]&cellSpaceBit != 0 {
			return Address(h), uint8(d), nil
		}
	}
	// 256 misses of an unbiased bit.
	return Address{}, 0, errors.New("cell address space exhausted")
}
