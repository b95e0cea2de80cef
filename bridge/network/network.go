// Copyright (c) 2026 Hemi Labs, Inc.
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

// Package network defines the networks a Tondi bridge client can target and
// maps them onto btcsuite network identities, default service ports and
// their textual form.
package network

import (
	"errors"
	"fmt"
	"iter"
	"net"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

// Type identifies a bridge network. Declaration order is the sort order.
type Type uint8

const (
	Mainnet Type = iota
	Testnet
	Devnet
	Simnet

	numTypes = iota
)

// ErrInvalidNetwork is matched by every *ParseError.
var ErrInvalidNetwork = errors.New("invalid network")

// ParseError is returned when text does not name a network.
type ParseError struct {
	Input string // rejected input, verbatim
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid network type: %q", e.Input)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidNetwork
}

var (
	names = [numTypes]string{
		Mainnet: "mainnet",
		Testnet: "testnet",
		Devnet:  "devnet",
		Simnet:  "simnet",
	}

	byName = map[string]Type{
		"mainnet": Mainnet,
		"testnet": Testnet,
		"simnet":  Simnet,
		"devnet":  Devnet,
	}

	// Devnet is a local regtest, Simnet is a shared signet.
	bitcoinNets = [numTypes]wire.BitcoinNet{
		Mainnet: wire.MainNet,
		Testnet: wire.TestNet3,
		Devnet:  wire.TestNet,
		Simnet:  wire.SigNet,
	}

	chainParams = [numTypes]*chaincfg.Params{
		Mainnet: &chaincfg.MainNetParams,
		Testnet: &chaincfg.TestNet3Params,
		Devnet:  &chaincfg.RegressionNetParams,
		Simnet:  &chaincfg.SigNetParams,
	}

	rpcPorts = [numTypes]uint16{
		Mainnet: 16110,
		Testnet: 16210,
		Simnet:  16510,
		Devnet:  16610,
	}

	borshRPCPorts = [numTypes]uint16{
		Mainnet: 17110,
		Testnet: 17210,
		Simnet:  17510,
		Devnet:  17610,
	}

	jsonRPCPorts = [numTypes]uint16{
		Mainnet: 18110,
		Testnet: 18210,
		Simnet:  18510,
		Devnet:  18610,
	}
)

// Valid reports whether t is one of the declared networks.
func (t Type) Valid() bool {
	return t < numTypes
}

// index clamps t into the tables. Out of range values are treated as
// Mainnet so that the lookups below stay total.
func (t Type) index() Type {
	if !t.Valid() {
		return Mainnet
	}
	return t
}

// String returns the canonical lowercase name, which Parse accepts.
func (t Type) String() string {
	if !t.Valid() {
		return "network(" + strconv.Itoa(int(t)) + ")"
	}
	return names[t]
}

// Compare returns -1, 0 or +1 depending on whether t sorts before, equal to
// or after u.
func (t Type) Compare(u Type) int {
	switch {
	case t < u:
		return -1
	case t > u:
		return 1
	}
	return 0
}

// Parse returns the network named by s. Matching is case insensitive and
// exact; surrounding whitespace is not stripped.
func Parse(s string) (Type, error) {
	if t, ok := byName[strings.ToLower(s)]; ok {
		return t, nil
	}
	return Mainnet, &ParseError{Input: s}
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("marshal %v: %w", t, ErrInvalidNetwork)
	}
	return []byte(names[t]), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	nt, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = nt
	return nil
}

// All yields every network in declaration order. The sequence may be
// ranged over any number of times.
func All() iter.Seq[Type] {
	return func(yield func(Type) bool) {
		for t := Type(0); t < numTypes; t++ {
			if !yield(t) {
				return
			}
		}
	}
}

// Types returns a new slice holding every network in declaration order.
func Types() []Type {
	ts := make([]Type, 0, numTypes)
	for t := range All() {
		ts = append(ts, t)
	}
	return ts
}

// BitcoinNet returns the btcsuite network magic used for address and script
// encoding on t.
func (t Type) BitcoinNet() wire.BitcoinNet {
	return bitcoinNets[t.index()]
}

// ChainParams returns the btcsuite chain parameters matching BitcoinNet.
// The returned pointer refers to the chaincfg globals and must not be
// modified.
func (t Type) ChainParams() *chaincfg.Params {
	return chainParams[t.index()]
}

// FromBitcoinNet maps a btcsuite network magic back to a bridge network.
//
// The mapping is lossy. Any magic that is not mainnet, testnet3, regtest or
// the default signet (simnet, testnet4, custom signets, ...) is reported as
// Mainnet instead of failing, so FromBitcoinNet(n).BitcoinNet() == n only
// holds for the four known magics. Callers that need to reject unknown
// networks must compare against BitcoinNet themselves.
func FromBitcoinNet(bn wire.BitcoinNet) Type {
	switch bn {
	case wire.MainNet:
		return Mainnet
	case wire.TestNet3:
		return Testnet
	case wire.TestNet:
		return Devnet
	case wire.SigNet:
		return Simnet
	default:
		// XXX unknown magics default to mainnet, revisit once the bridge
		// models more networks.
		return Mainnet
	}
}

// FromChainParams is FromBitcoinNet applied to params.Net. A nil params is
// reported as Mainnet.
func FromChainParams(params *chaincfg.Params) Type {
	if params == nil {
		return Mainnet
	}
	return FromBitcoinNet(params.Net)
}

// DefaultRPCPort returns the default RPC port for t.
func (t Type) DefaultRPCPort() uint16 {
	return rpcPorts[t.index()]
}

// DefaultBorshRPCPort returns the default port of the binary encoded
// (borsh) RPC transport for t.
func (t Type) DefaultBorshRPCPort() uint16 {
	return borshRPCPorts[t.index()]
}

// DefaultJSONRPCPort returns the default JSON-RPC port for t.
func (t Type) DefaultJSONRPCPort() uint16 {
	return jsonRPCPorts[t.index()]
}

func hostPort(host string, port uint16) string {
	return net.JoinHostPort(host, strconv.FormatUint(uint64(port), 10))
}

// DefaultRPCAddress joins host with DefaultRPCPort.
func (t Type) DefaultRPCAddress(host string) string {
	return hostPort(host, t.DefaultRPCPort())
}

// DefaultBorshRPCAddress joins host with DefaultBorshRPCPort.
func (t Type) DefaultBorshRPCAddress(host string) string {
	return hostPort(host, t.DefaultBorshRPCPort())
}

// DefaultJSONRPCAddress joins host with DefaultJSONRPCPort.
func (t Type) DefaultJSONRPCAddress(host string) string {
	return hostPort(host, t.DefaultJSONRPCPort())
}
