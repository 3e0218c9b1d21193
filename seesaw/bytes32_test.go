// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package seesaw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBytes32(t *testing.T) {
	hexed := "00000000000000000000000000000000000000000000000000006d6173746572"

	b32, err := ParseBytes32(hexed)
	assert.Nil(t, err)
	assert.Equal(t, "0x"+hexed, b32.String())

	b32, err = ParseBytes32("0x" + hexed)
	assert.Nil(t, err)
	assert.Equal(t, "0x"+hexed, b32.String())

	_, err = ParseBytes32("abc")
	assert.Error(t, err)

	assert.Panics(t, func() { MustParseBytes32("short") })
}

func TestBytes32(t *testing.T) {
	assert.True(t, Bytes32{}.IsZero())

	b32 := BytesToBytes32([]byte{1})
	assert.False(t, b32.IsZero())
	assert.Equal(t, byte(1), b32[31])
	assert.Equal(t, 32, len(b32.Bytes()))

	cropped := BytesToBytes32(append(make([]byte, 33), 0xbb))
	assert.Equal(t, byte(0xbb), cropped[31])
}
