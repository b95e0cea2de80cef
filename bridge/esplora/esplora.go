// Copyright (c) 2026 Hemi Labs, Inc.
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

// Package esplora resolves the esplora indexer base URL for a bridge network.
package esplora

import (
	"fmt"
	"net/url"

	"github.com/hemilabs/tondi-bridge/bridge/network"
)

const (
	DevnetURL = "http://localhost:8094/devnet/api/"

	// NexusVMSimnetURL accepts non-standard transactions.
	NexusVMSimnetURL = "https://esplora.nexusvmnet.org"
)

// TODO: mainnet and testnet still point at the simnet indexer, give them
// their own URLs before a production deployment.
var urls = map[network.Type]string{
	network.Mainnet: NexusVMSimnetURL,
	network.Testnet: NexusVMSimnetURL,
	network.Devnet:  DevnetURL,
	network.Simnet:  NexusVMSimnetURL,
}

// URL returns the esplora base URL for n.
func URL(n network.Type) string {
	if u, ok := urls[n]; ok {
		return u
	}
	return NexusVMSimnetURL
}

// Endpoint returns the esplora URL for n with elem appended to the base path,
// e.g. Endpoint(network.Devnet, "blocks", "tip", "height").
func Endpoint(n network.Type, elem ...string) (string, error) {
	u, err := url.JoinPath(URL(n), elem...)
	if err != nil {
		return "", fmt.Errorf("esplora %v: %w", n, err)
	}
	return u, nil
}
