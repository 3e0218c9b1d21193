// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// RentSchedule prices cell residency. A cell must keep at least
// MinimumBalance of its size on deposit to stay alive across epochs.
type RentSchedule struct {
	BaseFloor   uint64 `yaml:"baseFloor"`
	PerByteCost uint64 `yaml:"perByteCost"`
}

// DefaultRentSchedule returns the schedule used by the main network.
func DefaultRentSchedule() RentSchedule {
	return RentSchedule{
		BaseFloor:   890_880,
		PerByteCost: 6_960,
	}
}

// LoadRentSchedule reads a yaml-encoded schedule.
func LoadRentSchedule(r io.Reader) (RentSchedule, error) {
	var rs RentSchedule
	if err := yaml.NewDecoder(r).Decode(&rs); err != nil {
		return RentSchedule{}, errors.Wrap(err, "load rent schedule")
	}
	return rs, nil
}

// MinimumBalance returns the smallest deposit that keeps a cell of the
// given data size alive. Saturates instead of wrapping.
func (rs RentSchedule) MinimumBalance(size int) uint64 {
	if size <= 0 {
		return rs.BaseFloor
	}
	perByte, overflow := mulSat(rs.PerByteCost, uint64(size))
	if overflow {
		return math.MaxUint64
	}
	total := rs.BaseFloor + perByte
	if total < rs.BaseFloor {
		return math.MaxUint64
	}
	return total
}

func mulSat(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	p := a * b
	return p, p/a != b
}
