// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/seesaw/lvldb"
	"github.com/vechain/seesaw/seesaw"
	"github.com/vechain/seesaw/state"
)

func TestRentSchedule(t *testing.T) {
	rs := DefaultRentSchedule()
	assert.Equal(t, rs.BaseFloor, rs.MinimumBalance(0))
	assert.Equal(t, rs.BaseFloor+rs.PerByteCost*159, rs.MinimumBalance(159))

	zero := RentSchedule{}
	assert.Equal(t, uint64(0), zero.MinimumBalance(1024))

	sat := RentSchedule{BaseFloor: 1, PerByteCost: math.MaxUint64}
	assert.Equal(t, uint64(math.MaxUint64), sat.MinimumBalance(2))
}

func TestLoadRentSchedule(t *testing.T) {
	rs, err := LoadRentSchedule(strings.NewReader("baseFloor: 100\nperByteCost: 7\n"))
	require.NoError(t, err)
	assert.Equal(t, RentSchedule{BaseFloor: 100, PerByteCost: 7}, rs)

	_, err = LoadRentSchedule(strings.NewReader("baseFloor: [broken"))
	assert.Error(t, err)
}

func TestEnvironment(t *testing.T) {
	store, err := lvldb.NewMem()
	require.NoError(t, err)
	defer store.Close()

	origin := seesaw.BytesToAddress([]byte("origin"))
	other := seesaw.BytesToAddress([]byte("other"))

	env := New(
		state.New(store),
		RentSchedule{BaseFloor: 10, PerByteCost: 2},
		&EpochContext{Number: 42},
		&TransactionContext{Origin: origin},
	)

	assert.Equal(t, uint64(42), env.Epoch())
	assert.Equal(t, origin, env.Origin())
	assert.Equal(t, uint64(10), env.MinimumBalance(0))
	assert.Equal(t, uint64(18), env.MinimumBalance(4))
	assert.NotNil(t, env.State())

	assert.NoError(t, env.VerifySigner(origin))
	assert.True(t, errors.Is(env.VerifySigner(other), ErrNotSigner))
}
