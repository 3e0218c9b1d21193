// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package seesaw

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlake2b(t *testing.T) {
	single := Blake2b([]byte("data"))
	multi := Blake2b([]byte("da"), []byte("ta"))
	assert.Equal(t, single, multi)

	assert.NotEqual(t, single, Blake2b([]byte("other")))
}

func TestBlake2bFn(t *testing.T) {
	h := Blake2bFn(func(w io.Writer) {
		w.Write([]byte("custom writer"))
	})
	assert.Equal(t, Blake2b([]byte("custom writer")), h)
}

func TestKeccak256(t *testing.T) {
	single := Keccak256([]byte("data"))
	multi := Keccak256([]byte("da"), []byte("ta"))
	assert.Equal(t, single, multi)

	assert.NotEqual(t, single, Keccak256([]byte("other")))
}
