// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import "github.com/vechain/seesaw/metrics"

var (
	metricOpCount       = metrics.LazyLoadCounterVec("op_count", []string{"op", "outcome"})
	metricOpDuration    = metrics.LazyLoadHistogramVec("op_duration_ms", []string{"op"}, metrics.Bucket10s)
	metricTransferCount = metrics.LazyLoadCounter("transfer_count")
)
