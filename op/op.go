// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package op defines the five contest operations as a closed set of typed
// payloads with a fixed-width wire form.
package op

import "github.com/vechain/seesaw/seesaw"

// Opcode tags an instruction on the wire.
type Opcode byte

const (
	OpCreate Opcode = iota
	OpDeposit
	OpFlush
	OpClaim
	OpClose
)

func (o Opcode) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpDeposit:
		return "deposit"
	case OpFlush:
		return "flush"
	case OpClaim:
		return "claim"
	case OpClose:
		return "close"
	default:
		return "unknown"
	}
}

// Instruction is the closed set of operation payloads. Only the five
// types in this package implement it, which makes dispatch by type switch
// exhaustive.
type Instruction interface {
	Opcode() Opcode
	isInstruction()
}

// Create opens a contest between AddressA and AddressB on Creator's
// behalf. Seed disambiguates multiple contests by the same creator.
type Create struct {
	AddressA         seesaw.Address
	AddressB         seesaw.Address
	Creator          seesaw.Address
	CreatorFeeBps    uint16
	ClaimerFeeBps    uint16
	InitialThreshold uint64
	MinIncreaseBps   uint16
	Seed             seesaw.Bytes32
}

// Deposit adds Amount to one escrow cell of the contest at Bucket.
type Deposit struct {
	Bucket seesaw.Address
	Cell   seesaw.Address
	Amount uint64
}

// Flush sweeps the escrow at Cell into the contest's pot.
type Flush struct {
	Bucket seesaw.Address
	Cell   seesaw.Address
}

// Claim settles the contest at Bucket.
type Claim struct {
	Bucket seesaw.Address
}

// Close cancels the contest at Bucket before any flip.
type Close struct {
	Bucket seesaw.Address
}

func (*Create) Opcode() Opcode  { return OpCreate }
func (*Deposit) Opcode() Opcode { return OpDeposit }
func (*Flush) Opcode() Opcode   { return OpFlush }
func (*Claim) Opcode() Opcode   { return OpClaim }
func (*Close) Opcode() Opcode   { return OpClose }

func (*Create) isInstruction()  {}
func (*Deposit) isInstruction() {}
func (*Flush) isInstruction()   {}
func (*Claim) isInstruction()   {}
func (*Close) isInstruction()   {}
