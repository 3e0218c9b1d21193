// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bucket

import "github.com/vechain/seesaw/metrics"

var (
	metricActiveBuckets = metrics.LazyLoadGauge("active_buckets_gauge")
	metricFlushCount    = metrics.LazyLoadCounter("flush_count")
	metricSettledAmount = metrics.LazyLoadHistogram("settled_amount", metrics.BucketAmounts)
)
