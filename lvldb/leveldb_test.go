// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lvldb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelDB(t *testing.T) {
	var (
		key        = []byte("123")
		value      = []byte("456")
		invalidKey = []byte("abc")
	)

	persisted, err := New(filepath.Join(t.TempDir(), "db"), Options{16, 16})
	require.NoError(t, err)
	defer persisted.Close()

	mem, err := NewMem()
	require.NoError(t, err)
	defer mem.Close()

	for _, db := range []*LevelDB{persisted, mem} {
		assert.Nil(t, db.Put(key, value))

		got, err := db.Get(key)
		assert.Nil(t, err)
		assert.Equal(t, value, got)

		has, err := db.Has(key)
		assert.Nil(t, err)
		assert.True(t, has)

		has, err = db.Has(invalidKey)
		assert.Nil(t, err)
		assert.False(t, has)

		assert.Nil(t, db.Delete(key))

		_, err = db.Get(key)
		assert.True(t, db.IsNotFound(err))
	}
}

func TestLevelDBBatch(t *testing.T) {
	var (
		key   = []byte("123")
		value = []byte("456")
	)

	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	batch := db.NewBatch()
	assert.Nil(t, batch.Put(key, value))
	assert.Equal(t, 1, batch.Len())
	assert.Nil(t, batch.Write())

	got, err := db.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, value, got)

	batch = batch.NewBatch()
	assert.Nil(t, batch.Delete(key))
	assert.Nil(t, batch.Write())

	_, err = db.Get(key)
	assert.True(t, db.IsNotFound(err))
}
