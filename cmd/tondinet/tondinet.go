// Copyright (c) 2026 Hemi Labs, Inc.
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

// tondinet prints the network identity, default ports and indexer URL a
// Tondi bridge client would use.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/juju/loggo/v2"

	"github.com/hemilabs/tondi-bridge/bridge/esplora"
	"github.com/hemilabs/tondi-bridge/bridge/network"
	"github.com/hemilabs/tondi-bridge/config"
	"github.com/hemilabs/tondi-bridge/version"
)

const (
	daemonName      = "tondinet"
	defaultLogLevel = daemonName + "=INFO"
	defaultHost     = "localhost"
)

var (
	log     = loggo.GetLogger(daemonName)
	welcome = fmt.Sprintf("Tondi bridge network tool: v%v", version.String())

	cfg = struct {
		LogLevel string
		Network  network.Type
		Host     string
	}{}
	cm = config.CfgMap{
		"TONDINET_LOG_LEVEL": config.Config{
			Value:        &cfg.LogLevel,
			DefaultValue: defaultLogLevel,
			Help:         "loglevel for various packages; INFO, DEBUG and TRACE",
			Print:        config.PrintAll,
		},
		"TONDINET_NETWORK": config.Config{
			Value:        &cfg.Network,
			DefaultValue: network.Mainnet,
			Help:         "bridge network; mainnet, testnet, devnet or simnet",
			Print:        config.PrintAll,
			Parse:        config.ParseNetwork,
		},
		"TONDINET_HOST": config.Config{
			Value:        &cfg.Host,
			DefaultValue: defaultHost,
			Help:         "host used to build the default rpc addresses",
			Print:        config.PrintAll,
		},
	}
)

func init() {
	version.Component = daemonName
}

type networkInfo struct {
	Network         network.Type `json:"network"`
	BitcoinNet      string       `json:"bitcoin_net"`
	ChainParams     string       `json:"chain_params"`
	RPCPort         uint16       `json:"rpc_port"`
	BorshRPCPort    uint16       `json:"borsh_rpc_port"`
	JSONRPCPort     uint16       `json:"json_rpc_port"`
	RPCAddress      string       `json:"rpc_address"`
	BorshRPCAddress string       `json:"borsh_rpc_address"`
	JSONRPCAddress  string       `json:"json_rpc_address"`
	EsploraURL      string       `json:"esplora_url"`
}

func newNetworkInfo(n network.Type, host string) networkInfo {
	return networkInfo{
		Network:         n,
		BitcoinNet:      n.BitcoinNet().String(),
		ChainParams:     n.ChainParams().Name,
		RPCPort:         n.DefaultRPCPort(),
		BorshRPCPort:    n.DefaultBorshRPCPort(),
		JSONRPCPort:     n.DefaultJSONRPCPort(),
		RPCAddress:      n.DefaultRPCAddress(host),
		BorshRPCAddress: n.DefaultBorshRPCAddress(host),
		JSONRPCAddress:  n.DefaultJSONRPCAddress(host),
		EsploraURL:      esplora.URL(n),
	}
}

type addressInfo struct {
	Address string       `json:"address"`
	Network network.Type `json:"network"`
	Valid   bool         `json:"valid"`
	Error   string       `json:"error,omitempty"`
}

// checkAddress reports whether addr encodes an address for n.
func checkAddress(n network.Type, addr string) addressInfo {
	ai := addressInfo{Address: addr, Network: n}
	params := n.ChainParams()
	a, err := btcutil.DecodeAddress(addr, params)
	if err != nil {
		ai.Error = err.Error()
		return ai
	}
	if !a.IsForNet(params) {
		ai.Error = fmt.Sprintf("address is not for %v", params.Name)
		return ai
	}
	ai.Valid = true
	return ai
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

var errUsage = errors.New("usage")

func run(w io.Writer, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "list":
		infos := make([]networkInfo, 0, len(network.Types()))
		for n := range network.All() {
			infos = append(infos, newNetworkInfo(n, cfg.Host))
		}
		return writeJSON(w, infos)

	case "show":
		return writeJSON(w, newNetworkInfo(cfg.Network, cfg.Host))

	case "address":
		if len(args) != 2 {
			return errUsage
		}
		ai := checkAddress(cfg.Network, args[1])
		if !ai.Valid {
			log.Debugf("address %v rejected: %v", ai.Address, ai.Error)
		}
		return writeJSON(w, ai)
	}

	return fmt.Errorf("unknown command: %v", args[0])
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "%v\n", welcome)
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "\thelp (this help)\n")
	fmt.Fprintf(w, "\tlist (all networks)\n")
	fmt.Fprintf(w, "\tshow (configured network)\n")
	fmt.Fprintf(w, "\taddress <addr> (check address against configured network)\n")
	fmt.Fprintf(w, "Environment:\n")
	config.Help(w, cm)
}

func _main(args []string) error {
	// Parse configuration from environment
	if err := config.Parse(cm); err != nil {
		return err
	}

	if err := loggo.ConfigureLoggers(cfg.LogLevel); err != nil {
		return fmt.Errorf("configure loggers: %w", err)
	}
	log.Debugf("%v", version.BuildInfo())

	pc := config.PrintableConfig(cm)
	for k := range pc {
		log.Debugf("%v", pc[k])
	}

	return run(os.Stdout, args)
}

func main() {
	if len(os.Args) < 2 || os.Args[1] == "help" {
		usage(os.Stderr)
		os.Exit(1)
	}

	if err := _main(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			usage(os.Stderr)
			os.Exit(1)
		}
		var pe *network.ParseError
		if errors.As(err, &pe) {
			log.Errorf("unknown network %q, use one of %v",
				pe.Input, network.Types())
			os.Exit(1)
		}
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
