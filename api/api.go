// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/vechain/seesaw/api/accounts"
	"github.com/vechain/seesaw/api/buckets"
	"github.com/vechain/seesaw/api/instructions"
	"github.com/vechain/seesaw/api/transfers"
	"github.com/vechain/seesaw/log"
	"github.com/vechain/seesaw/node"
	"github.com/vechain/seesaw/transferdb"
)

var logger = log.WithContext("pkg", "api")

type Options struct {
	AllowedOrigins  string
	EnableReqLogger bool
	EnableMetrics   bool
	LogsLimit       uint64
}

// New return api router
func New(nd *node.Node, journal *transferdb.TransferDB, opts Options) http.HandlerFunc {
	origins := strings.Split(strings.TrimSpace(opts.AllowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	router := mux.NewRouter()

	accounts.New(nd).
		Mount(router, "/accounts")
	buckets.New(nd).
		Mount(router, "/buckets")
	instructions.New(nd).
		Mount(router, "/instructions")
	if journal != nil {
		transfers.New(journal, opts.LogsLimit).
			Mount(router, "/logs/transfer")
	}

	if opts.EnableMetrics {
		router.Use(metricsHandler)
	}

	handler := handlers.CompressHandler(router)
	handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedHeaders([]string{"content-type"}),
	)(handler)

	if opts.EnableReqLogger {
		handler = RequestLoggerHandler(handler, logger)
	}

	return handler.ServeHTTP
}
