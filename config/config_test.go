// Copyright (c) 2024-2026 Hemi Labs, Inc.
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/hemilabs/tondi-bridge/bridge/network"
)

type MyConfig struct {
	IamString  string
	IamUint16  uint16
	IamInt32   int32
	IamBool    bool
	IamNetwork network.Type
}

func newCfgMap(cfg *MyConfig) CfgMap {
	return CfgMap{
		"STRING": Config{
			Value:        &cfg.IamString,
			DefaultValue: "default",
			Help:         "helpstring",
			Print:        PrintAll,
		},
		"UINT16": Config{
			Value:        &cfg.IamUint16,
			DefaultValue: uint16(1234),
			Help:         "helpuint16",
			Print:        PrintAll,
		},
		"INT32": Config{
			Value:        &cfg.IamInt32,
			DefaultValue: int32(4321),
			Help:         "helpint32",
			Print:        PrintSecret,
		},
		"BOOL": Config{
			Value:        &cfg.IamBool,
			DefaultValue: false,
			Help:         "helpbool",
			Print:        PrintNothing,
		},
		"NETWORK": Config{
			Value:        &cfg.IamNetwork,
			DefaultValue: network.Testnet,
			Help:         "helpnetwork",
			Print:        PrintAll,
			Parse:        ParseNetwork,
		},
	}
}

func TestConfigTypesDefault(t *testing.T) {
	var cfg MyConfig
	if err := Parse(newCfgMap(&cfg)); err != nil {
		t.Fatal(err)
	}
	want := MyConfig{
		IamString:  "default",
		IamUint16:  1234,
		IamInt32:   4321,
		IamNetwork: network.Testnet,
	}
	if diff := deep.Equal(cfg, want); len(diff) > 0 {
		t.Fatalf("unexpected diff: %v", diff)
	}
}

func TestConfigTypesRequired(t *testing.T) {
	var cfg MyConfig
	cmr := newCfgMap(&cfg)
	for k, v := range cmr {
		v.Required = true
		cmr[k] = v
	}
	if err := Parse(cmr); err == nil {
		t.Fatal("expected failure, got nil")
	}

	t.Setenv("STRING", "ENVSTRING")
	t.Setenv("UINT16", "31337")
	t.Setenv("INT32", "-31337")
	t.Setenv("BOOL", "true")
	t.Setenv("NETWORK", "DevNet")
	if err := Parse(cmr); err != nil {
		t.Fatal(err)
	}
	want := MyConfig{
		IamString:  "ENVSTRING",
		IamUint16:  31337,
		IamInt32:   -31337,
		IamBool:    true,
		IamNetwork: network.Devnet,
	}
	if diff := deep.Equal(cfg, want); len(diff) > 0 {
		t.Fatalf("unexpected diff: %v", diff)
	}
}

// A custom parser must not stop the remaining variables from being set.
func TestConfigParseHookContinues(t *testing.T) {
	var cfg MyConfig
	t.Setenv("NETWORK", "simnet")
	t.Setenv("STRING", "after")
	if err := Parse(newCfgMap(&cfg)); err != nil {
		t.Fatal(err)
	}
	if cfg.IamNetwork != network.Simnet || cfg.IamString != "after" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestConfigInvalidNetwork(t *testing.T) {
	var cfg MyConfig
	t.Setenv("NETWORK", "regtest")
	err := Parse(newCfgMap(&cfg))
	var pe *network.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if pe.Input != "regtest" {
		t.Fatalf("got input %q", pe.Input)
	}
	if !strings.Contains(err.Error(), "NETWORK") {
		t.Fatalf("error does not name variable: %v", err)
	}
}

func TestConfigOverflow(t *testing.T) {
	var cfg MyConfig
	t.Setenv("UINT16", "70000")
	if err := Parse(newCfgMap(&cfg)); err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestPrintableConfig(t *testing.T) {
	var cfg MyConfig
	cm := newCfgMap(&cfg)
	if err := Parse(cm); err != nil {
		t.Fatal(err)
	}
	Align = 0
	want := []string{
		"INT32  : ********",
		"NETWORK: testnet",
		"STRING : default",
		"UINT16 : 1234",
	}
	if diff := deep.Equal(PrintableConfig(cm), want); len(diff) > 0 {
		t.Fatalf("unexpected diff: %v", diff)
	}

	var b bytes.Buffer
	Help(&b, cm)
	if !strings.Contains(b.String(), "helpnetwork (default: testnet)") {
		t.Fatalf("unexpected help: %v", b.String())
	}
}
