// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package op

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// payload widths, excluding the opcode byte
const (
	createPayloadSize  = 142
	depositPayloadSize = 72
	flushPayloadSize   = 64
	claimPayloadSize   = 32
	closePayloadSize   = 32
)

// EncodeInstruction renders instr as one opcode byte followed by its
// fixed-width little-endian payload.
func EncodeInstruction(instr Instruction) []byte {
	switch p := instr.(type) {
	case *Create:
		data := make([]byte, 1+createPayloadSize)
		data[0] = byte(OpCreate)
		copy(data[1:33], p.AddressA[:])
		copy(data[33:65], p.AddressB[:])
		copy(data[65:97], p.Creator[:])
		binary.LittleEndian.PutUint16(data[97:99], p.CreatorFeeBps)
		binary.LittleEndian.PutUint16(data[99:101], p.ClaimerFeeBps)
		binary.LittleEndian.PutUint64(data[101:109], p.InitialThreshold)
		binary.LittleEndian.PutUint16(data[109:111], p.MinIncreaseBps)
		copy(data[111:143], p.Seed[:])
		return data
	case *Deposit:
		data := make([]byte, 1+depositPayloadSize)
		data[0] = byte(OpDeposit)
		copy(data[1:33], p.Bucket[:])
		copy(data[33:65], p.Cell[:])
		binary.LittleEndian.PutUint64(data[65:73], p.Amount)
		return data
	case *Flush:
		data := make([]byte, 1+flushPayloadSize)
		data[0] = byte(OpFlush)
		copy(data[1:33], p.Bucket[:])
		copy(data[33:65], p.Cell[:])
		return data
	case *Claim:
		data := make([]byte, 1+claimPayloadSize)
		data[0] = byte(OpClaim)
		copy(data[1:33], p.Bucket[:])
		return data
	case *Close:
		data := make([]byte, 1+closePayloadSize)
		data[0] = byte(OpClose)
		copy(data[1:33], p.Bucket[:])
		return data
	default:
		// the interface is sealed; this is unreachable
		panic(errors.Errorf("encode: unknown instruction %T", instr))
	}
}

// DecodeInstruction parses the wire form produced by EncodeInstruction.
// Unknown opcodes and payloads of the wrong width are rejected.
func DecodeInstruction(data []byte) (Instruction, error) {
	if len(data) == 0 {
		return nil, errors.New("decode: empty instruction")
	}
	opcode, payload := Opcode(data[0]), data[1:]

	switch opcode {
	case OpCreate:
		if len(payload) != createPayloadSize {
			return nil, errors.Errorf("decode %v: payload length %d", opcode, len(payload))
		}
		p := &Create{
			CreatorFeeBps:    binary.LittleEndian.Uint16(payload[96:98]),
			ClaimerFeeBps:    binary.LittleEndian.Uint16(payload[98:100]),
			InitialThreshold: binary.LittleEndian.Uint64(payload[100:108]),
			MinIncreaseBps:   binary.LittleEndian.Uint16(payload[108:110]),
		}
		copy(p.AddressA[:], payload[0:32])
		copy(p.AddressB[:], payload[32:64])
		copy(p.Creator[:], payload[64:96])
		copy(p.Seed[:], payload[110:142])
		return p, nil
	case OpDeposit:
		if len(payload) != depositPayloadSize {
			return nil, errors.Errorf("decode %v: payload length %d", opcode, len(payload))
		}
		p := &Deposit{
			Amount: binary.LittleEndian.Uint64(payload[64:72]),
		}
		copy(p.Bucket[:], payload[0:32])
		copy(p.Cell[:], payload[32:64])
		return p, nil
	case OpFlush:
		if len(payload) != flushPayloadSize {
			return nil, errors.Errorf("decode %v: payload length %d", opcode, len(payload))
		}
		p := &Flush{}
		copy(p.Bucket[:], payload[0:32])
		copy(p.Cell[:], payload[32:64])
		return p, nil
	case OpClaim:
		if len(payload) != claimPayloadSize {
			return nil, errors.Errorf("decode %v: payload length %d", opcode, len(payload))
		}
		p := &Claim{}
		copy(p.Bucket[:], payload[0:32])
		return p, nil
	case OpClose:
		if len(payload) != closePayloadSize {
			return nil, errors.Errorf("decode %v: payload length %d", opcode, len(payload))
		}
		p := &Close{}
		copy(p.Bucket[:], payload[0:32])
		return p, nil
	default:
		return nil, errors.Errorf("decode: unknown opcode %d", data[0])
	}
}
