// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transferdb

// create a table for transfers
const transferTableSchema = `
create table if not exists transfer (
	epoch decimal(32,0),
	seq integer,
	op integer,
	bucket blob(32),
	sender blob(32),
	recipient blob(32),
	amount blob(8)
);

CREATE INDEX if not exists epochIndex on transfer(epoch);
CREATE INDEX if not exists bucketIndex on transfer(bucket);
CREATE INDEX if not exists senderIndex on transfer(sender);
CREATE INDEX if not exists recipientIndex on transfer(recipient);
`
