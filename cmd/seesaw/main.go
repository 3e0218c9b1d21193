// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"
	"time"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/seesaw/admin"
	"github.com/vechain/seesaw/api"
	"github.com/vechain/seesaw/cmd/seesaw/httpserver"
	"github.com/vechain/seesaw/log"
	"github.com/vechain/seesaw/lvldb"
	"github.com/vechain/seesaw/metrics"
	"github.com/vechain/seesaw/node"
	"github.com/vechain/seesaw/transferdb"
	"github.com/vechain/seesaw/xenv"
)

var (
	version   string
	gitCommit string
	gitTag    string

	logger = log.WithContext("pkg", "main")
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "Seesaw",
		Usage:     "Standalone node of the Seesaw contest ledger",
		Copyright: "2026 VeChain Foundation <https://vechain.org/>",
		Flags: []cli.Flag{
			dataDirFlag,
			apiAddrFlag,
			apiCorsFlag,
			apiLogsLimitFlag,
			enableAPILogsFlag,
			verbosityFlag,
			onDemandFlag,
			epochIntervalFlag,
			persistFlag,
			enableMetricsFlag,
			metricsAddrFlag,
			enableAdminFlag,
			adminAddrFlag,
		},
		Action: defaultAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	defer func() { logger.Info("exited") }()

	initLogger(ctx)

	var (
		store   *lvldb.LevelDB
		journal *transferdb.TransferDB
		dataDir string
	)
	if ctx.Bool(persistFlag.Name) {
		dataDir = makeDataDir(ctx)
		store = openMainDB(dataDir)
		journal = openJournal(dataDir)
	} else {
		dataDir = "Memory"
		store = openMemMainDB()
		journal = openMemJournal()
	}
	defer func() { logger.Info("closing ledger database..."); store.Close() }()
	defer func() { logger.Info("closing transfer journal..."); journal.Close() }()

	initLedger(store)

	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
		url, closeFunc, err := httpserver.StartMetricsServer(ctx.String(metricsAddrFlag.Name))
		if err != nil {
			return fmt.Errorf("unable to start metrics server - %w", err)
		}
		logger.Info("metrics server started", "url", url)
		defer closeFunc()
	}

	n := node.New(store, journal, xenv.DefaultRentSchedule(), node.Options{
		EpochDuration: time.Duration(ctx.Uint64(epochIntervalFlag.Name)) * time.Second,
		OnDemand:      ctx.Bool(onDemandFlag.Name),
		StartEpoch:    recoverStartEpoch(journal),
	})

	apiHandler := api.New(n, journal, api.Options{
		AllowedOrigins:  ctx.String(apiCorsFlag.Name),
		EnableReqLogger: ctx.Bool(enableAPILogsFlag.Name),
		EnableMetrics:   ctx.Bool(enableMetricsFlag.Name),
		LogsLimit:       ctx.Uint64(apiLogsLimitFlag.Name),
	})
	apiURL, apiClose := startAPIServer(ctx, apiHandler)
	defer func() { logger.Info("stopping API server..."); apiClose() }()

	if ctx.Bool(enableAdminFlag.Name) {
		url, closeFunc, err := admin.StartServer(ctx.String(adminAddrFlag.Name), n.Health())
		if err != nil {
			return fmt.Errorf("unable to start admin server - %w", err)
		}
		logger.Info("admin server started", "url", url)
		defer closeFunc()
	}

	printStartupMessage(dataDir, apiURL, n)

	return n.Run(handleExitSignal())
}
