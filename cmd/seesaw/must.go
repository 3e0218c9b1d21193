// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/seesaw/co"
	"github.com/vechain/seesaw/genesis"
	"github.com/vechain/seesaw/kv"
	"github.com/vechain/seesaw/log"
	"github.com/vechain/seesaw/lvldb"
	"github.com/vechain/seesaw/node"
	"github.com/vechain/seesaw/state"
	"github.com/vechain/seesaw/transferdb"
)

func fatal(args ...interface{}) {
	var w io.Writer
	if runtime.GOOS == "windows" {
		// The SameFile check below doesn't work on Windows.
		// stdout is unlikely to get redirected though, so just print there.
		w = os.Stdout
	} else {
		outf, _ := os.Stdout.Stat()
		errf, _ := os.Stderr.Stat()
		if outf != nil && errf != nil && os.SameFile(outf, errf) {
			w = os.Stderr
		} else {
			w = io.MultiWriter(os.Stdout, os.Stderr)
		}
	}
	fmt.Fprint(w, "Fatal: ")
	fmt.Fprintln(w, args...)
	os.Exit(1)
}

func initLogger(ctx *cli.Context) {
	switch ctx.Uint64(verbosityFlag.Name) {
	case 1:
		log.SetLevel(log.LevelError)
	case 2:
		log.SetLevel(log.LevelWarn)
	case 3:
		log.SetLevel(log.LevelInfo)
	case 4:
		log.SetLevel(log.LevelDebug)
	case 5:
		log.SetLevel(log.LevelTrace)
	default:
		fatal(fmt.Sprintf("invalid verbosity, use 1-5 with -%s", verbosityFlag.Name))
	}
}

// copy from go-ethereum
func defaultDataDir() string {
	// Try to place the data folder in the user's home dir
	if home := homeDir(); home != "" {
		if runtime.GOOS == "darwin" {
			return filepath.Join(home, "Library", "Application Support", "org.vechain.seesaw")
		} else if runtime.GOOS == "windows" {
			return filepath.Join(home, "AppData", "Roaming", "org.vechain.seesaw")
		} else {
			return filepath.Join(home, ".org.vechain.seesaw")
		}
	}
	// As we cannot guess a stable location, return empty and handle later
	return ""
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

func makeDataDir(ctx *cli.Context) string {
	dataDir := ctx.String(dataDirFlag.Name)
	if dataDir == "" {
		fatal(fmt.Sprintf("unable to infer default data dir, use -%s to specify", dataDirFlag.Name))
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		fatal(fmt.Sprintf("create data dir [%v]: %v", dataDir, err))
	}
	return dataDir
}

func openMainDB(dataDir string) *lvldb.LevelDB {
	dir := filepath.Join(dataDir, "main.db")
	db, err := lvldb.New(dir, lvldb.Options{
		CacheSize:              128,
		OpenFilesCacheCapacity: 64,
	})
	if err != nil {
		fatal(fmt.Sprintf("open ledger database [%v]: %v", dir, err))
	}
	return db
}

func openMemMainDB() *lvldb.LevelDB {
	db, err := lvldb.NewMem()
	if err != nil {
		fatal(fmt.Sprintf("open ledger database: %v", err))
	}
	return db
}

func openJournal(dataDir string) *transferdb.TransferDB {
	dir := filepath.Join(dataDir, "transfers.db")
	db, err := transferdb.New(dir)
	if err != nil {
		fatal(fmt.Sprintf("open transfer journal [%v]: %v", dir, err))
	}
	return db
}

func openMemJournal() *transferdb.TransferDB {
	db, err := transferdb.NewMem()
	if err != nil {
		fatal(fmt.Sprintf("open transfer journal: %v", err))
	}
	return db
}

// initLedger seals the devnet genesis into an empty store. A reopened
// store keeps whatever it has.
func initLedger(store kv.GetPutter) {
	st := state.New(store)
	exists, err := st.Exists(genesis.DevAccounts()[0])
	if err != nil {
		fatal(fmt.Sprintf("read ledger state: %v", err))
	}
	if exists {
		return
	}
	supply, err := genesis.NewDevnet().Build(store)
	if err != nil {
		fatal(fmt.Sprintf("build devnet genesis: %v", err))
	}
	logger.Info("devnet genesis sealed", "supply", supply, "accounts", len(genesis.DevAccounts()))
}

// recoverStartEpoch anchors the epoch numbering past everything the
// journal recorded in earlier runs.
func recoverStartEpoch(journal *transferdb.TransferDB) uint64 {
	newest, err := journal.NewestEpoch(context.Background())
	if err != nil {
		fatal(fmt.Sprintf("recover epoch from transfer journal: %v", err))
	}
	return newest + 1
}

func startAPIServer(ctx *cli.Context, handler http.Handler) (string, func()) {
	addr := ctx.String(apiAddrFlag.Name)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		fatal(fmt.Sprintf("listen API addr [%v]: %v", addr, err))
	}
	srv := &http.Server{Handler: handler}
	var goes co.Goes
	goes.Go(func() {
		srv.Serve(listener)
	})
	return "http://" + listener.Addr().String() + "/", func() {
		srv.Close()
		goes.Wait()
	}
}

func printStartupMessage(
	dataDir string,
	apiURL string,
	n *node.Node,
) {
	tableHead := `
┌────────────────────────────────────────────────────────────────────┬──────────────────────┐
│                              Address                               │        Balance       │`
	tableContent := `
├────────────────────────────────────────────────────────────────────┼──────────────────────┤
│ %v │ %20d │`
	tableEnd := `
└────────────────────────────────────────────────────────────────────┴──────────────────────┘`

	rent := n.Rent()

	info := fmt.Sprintf(`Starting %v
    Epoch       [ #%v ]
    Rent        [ floor %v + %v/byte ]
    Data dir    [ %v ]
    API portal  [ %v ]`,
		common.MakeName("Seesaw", fullVersion()),
		n.Epoch(),
		rent.BaseFloor, rent.PerByteCost,
		dataDir,
		apiURL)

	info += tableHead

	for _, a := range genesis.DevAccounts() {
		info += fmt.Sprintf(tableContent, a, genesis.DevAccountBalance)
	}
	info += tableEnd + "\r\n"

	fmt.Print(info)
}

func handleExitSignal() context.Context {
	exitSignalCtx, cancel := context.WithCancel(context.Background())

	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)

		sig := <-exitSignalCh
		logger.Info("exit signal received", "signal", sig)
		cancel()
	}()
	return exitSignalCtx
}
