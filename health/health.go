// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package health reports whether a node keeps sealing epochs.
package health

import (
	"sync"
	"time"
)

type EpochSealing struct {
	Epoch    *uint64    `json:"epoch"`
	SealedAt *time.Time `json:"sealedAt"`
}

type Status struct {
	Healthy      bool          `json:"healthy"`
	EpochSealing *EpochSealing `json:"epochSealing"`
}

// Health watches the sealing heartbeat. The node reports every sealed
// epoch; the status turns unhealthy when the reports stop.
type Health struct {
	lock                sync.RWMutex
	lastEpoch           *uint64
	lastSealed          time.Time
	maxTimeBetweenSeals time.Duration
}

func New(maxTimeBetweenSeals time.Duration) *Health {
	return &Health{
		maxTimeBetweenSeals: maxTimeBetweenSeals,
	}
}

// NewSealedEpoch records that the given epoch was just sealed.
func (h *Health) NewSealedEpoch(epoch uint64) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.lastEpoch = &epoch
	h.lastSealed = time.Now()
}

func (h *Health) Status() (*Status, error) {
	h.lock.RLock()
	defer h.lock.RUnlock()

	sealing := &EpochSealing{
		Epoch: h.lastEpoch,
	}
	if h.lastEpoch != nil {
		sealedAt := h.lastSealed
		sealing.SealedAt = &sealedAt
	}

	healthy := h.lastEpoch != nil && time.Since(h.lastSealed) <= h.maxTimeBetweenSeals

	return &Status{
		Healthy:      healthy,
		EpochSealing: sealing,
	}, nil
}
