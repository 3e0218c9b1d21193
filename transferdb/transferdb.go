// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package transferdb persists the value movements a node replays out of
// settled epochs, queryable by epoch range, bucket and counterparty.
package transferdb

import (
	"context"
	"database/sql"
	"encoding/binary"

	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/vechain/seesaw/op"
	"github.com/vechain/seesaw/seesaw"
)

// TransferDB manages transfers.
type TransferDB struct {
	path          string
	db            *sql.DB
	driverVersion string
}

// New create or open transfer db at given path.
func New(path string) (transferDB *TransferDB, err error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if transferDB == nil {
			db.Close()
		}
	}()
	if _, err := db.Exec(transferTableSchema); err != nil {
		return nil, err
	}

	driverVer, _, _ := sqlite3.Version()
	return &TransferDB{
		path,
		db,
		driverVer,
	}, nil
}

// NewMem create a transfer db in ram.
func NewMem() (*TransferDB, error) {
	return New(":memory:")
}

// Close close the transfer db.
func (db *TransferDB) Close() {
	db.db.Close()
}

func (db *TransferDB) Path() string {
	return db.path
}

// Insert saves transfers, dropping everything recorded for the abandoned
// epochs first. All of it happens in one db transaction.
func (db *TransferDB) Insert(transfers []*Transfer, abandonedEpochs []uint64) error {
	if len(transfers) == 0 && len(abandonedEpochs) == 0 {
		return nil
	}
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	for _, epoch := range abandonedEpochs {
		if _, err := tx.Exec("DELETE FROM transfer WHERE epoch = ?;", epoch); err != nil {
			tx.Rollback()
			return err
		}
	}
	for _, trans := range transfers {
		if _, err := tx.Exec("INSERT OR REPLACE INTO transfer(epoch ,seq ,op ,bucket ,sender ,recipient ,amount) VALUES ( ?, ?, ?, ?, ?, ?, ?);",
			trans.Epoch,
			trans.Seq,
			uint8(trans.Op),
			trans.Bucket.Bytes(),
			trans.Sender.Bytes(),
			trans.Recipient.Bytes(),
			amountValue(trans.Amount),
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// Transfers query transfers, nil filter selects everything.
func (db *TransferDB) Transfers(ctx context.Context, filter *Filter) ([]*Transfer, error) {
	if filter == nil {
		return db.query(ctx, "SELECT * FROM transfer")
	}
	var args []interface{}
	stmt := "SELECT * FROM transfer WHERE 1"
	if filter.Range != nil {
		args = append(args, filter.Range.From)
		stmt += " AND epoch >= ? "
		if filter.Range.To >= filter.Range.From {
			args = append(args, filter.Range.To)
			stmt += " AND epoch <= ? "
		}
	}
	if filter.Bucket != nil {
		args = append(args, filter.Bucket.Bytes())
		stmt += " AND bucket = ? "
	}
	length := len(filter.CriteriaSet)
	if length > 0 {
		for i, criteria := range filter.CriteriaSet {
			if i == 0 {
				stmt += " AND (( 1 "
			} else {
				stmt += " OR ( 1 "
			}
			if criteria.Sender != nil {
				args = append(args, criteria.Sender.Bytes())
				stmt += " AND sender = ? "
			}
			if criteria.Recipient != nil {
				args = append(args, criteria.Recipient.Bytes())
				stmt += " AND recipient = ? "
			}
			if i == length-1 {
				stmt += " )) "
			} else {
				stmt += " ) "
			}
		}
	}
	if filter.Order == DESC {
		stmt += " ORDER BY epoch DESC,seq DESC "
	} else {
		stmt += " ORDER BY epoch ASC,seq ASC "
	}
	if filter.Options != nil {
		stmt += " limit ?, ? "
		args = append(args, filter.Options.Offset, filter.Options.Limit)
	}
	return db.query(ctx, stmt, args...)
}

// NewestEpoch returns the highest epoch any transfer was recorded in, or
// zero when the journal is empty.
func (db *TransferDB) NewestEpoch(ctx context.Context) (uint64, error) {
	row := db.db.QueryRowContext(ctx, "SELECT IFNULL(MAX(epoch), 0) FROM transfer")
	var epoch uint64
	if err := row.Scan(&epoch); err != nil {
		return 0, err
	}
	return epoch, nil
}

func (db *TransferDB) query(ctx context.Context, stmt string, args ...interface{}) ([]*Transfer, error) {
	rows, err := db.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []*Transfer
	for rows.Next() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		var (
			epoch     uint64
			seq       uint32
			opcode    uint8
			bucket    []byte
			sender    []byte
			recipient []byte
			amount    []byte
		)
		if err := rows.Scan(
			&epoch,
			&seq,
			&opcode,
			&bucket,
			&sender,
			&recipient,
			&amount,
		); err != nil {
			return nil, err
		}
		value, err := amountFromValue(amount)
		if err != nil {
			return nil, err
		}
		trans := &Transfer{
			Epoch:     epoch,
			Seq:       seq,
			Op:        op.Opcode(opcode),
			Bucket:    seesaw.BytesToAddress(bucket),
			Sender:    seesaw.BytesToAddress(sender),
			Recipient: seesaw.BytesToAddress(recipient),
			Amount:    value,
		}
		transfers = append(transfers, trans)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transfers, nil
}

// amountValue encodes amounts big-endian so blob comparison sorts them.
func amountValue(amount uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], amount)
	return b[:]
}

func amountFromValue(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, errors.Errorf("corrupt amount of %d bytes", len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}
