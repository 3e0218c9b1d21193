// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"sort"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/vechain/seesaw/kv"
	"github.com/vechain/seesaw/seesaw"
)

// Stage abstracts the changes ready to be committed.
type Stage struct {
	batch kv.Batch
}

// Stage computes the diff against the committed state and stages it for
// commit. The state instance should be discarded once the stage is committed.
func (s *State) Stage() (*Stage, error) {
	dirty := make([]seesaw.Address, 0, len(s.live))
	for addr, obj := range s.live {
		base := s.baseline[addr]
		if obj.destroyed || !obj.data.equal(&base) {
			dirty = append(dirty, addr)
		}
	}
	sort.Slice(dirty, func(i, j int) bool {
		return bytes.Compare(dirty[i][:], dirty[j][:]) < 0
	})

	batch := s.store.NewBatch()
	for _, addr := range dirty {
		obj := s.live[addr]
		if obj.destroyed || obj.data.isEmpty() {
			if err := batch.Delete(cellKey(addr)); err != nil {
				return nil, &Error{err}
			}
			continue
		}
		enc, err := rlp.EncodeToBytes(&obj.data)
		if err != nil {
			return nil, &Error{err}
		}
		if err := batch.Put(cellKey(addr), enc); err != nil {
			return nil, &Error{err}
		}
	}
	return &Stage{batch: batch}, nil
}

// Commit commits the staged changes to the backing store.
func (s *Stage) Commit() error {
	if err := s.batch.Write(); err != nil {
		return errors.Wrap(err, "commit state")
	}
	return nil
}
