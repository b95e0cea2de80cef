// Copyright (c) 2024-2026 Hemi Labs, Inc.
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

// Package config fills configuration values from environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/hemilabs/tondi-bridge/bridge/network"
)

type PrintMode int

const (
	PrintSecret PrintMode = iota
	PrintAll
	PrintNothing
)

var Align = 0 // Cleartext alignment, if not set it is autodetected

type Config struct {
	Value        any       // Pointer to the value
	DefaultValue any       // Default value if the variable is not set
	Help         string    // One line help
	Print        PrintMode // Print mode
	Required     bool      // If true, error out when unset
	Parse        func(envValue string) (any, error)
}

type CfgMap map[string]Config

// ParseNetwork is a Config.Parse hook for network.Type values. The returned
// error is the *network.ParseError from network.Parse.
func ParseNetwork(envValue string) (any, error) {
	return network.Parse(envValue)
}

func sortedKeys(c CfgMap) []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
		if Align < len(k) {
			Align = len(k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Parse sets every value in c from its environment variable or its default.
// Variables are processed in sorted order so the first reported error is
// stable.
func Parse(c CfgMap) error {
	for _, k := range sortedKeys(c) {
		if err := parse(k, c[k]); err != nil {
			return err
		}
	}
	return nil
}

func parse(k string, v Config) error {
	// Make sure v.Value is a pointer
	if reflect.TypeOf(v.Value).Kind() != reflect.Pointer {
		return fmt.Errorf("%v: value must be a pointer", k)
	}
	// Make sure we are pointing to the same type
	if reflect.TypeOf(v.Value).Elem() != reflect.TypeOf(v.DefaultValue) {
		return fmt.Errorf("%v: value not the same type as DefaultValue, "+
			"wanted %v got %v", k, reflect.TypeOf(v.Value).Elem(),
			reflect.TypeOf(v.DefaultValue))
	}

	value := reflect.ValueOf(v.Value).Elem()
	envValue := os.Getenv(k)
	if envValue == "" {
		if v.Required {
			return fmt.Errorf("%v: must be set", k)
		}
		value.Set(reflect.ValueOf(v.DefaultValue))
		return nil
	}

	if v.Parse != nil {
		val, err := v.Parse(envValue)
		if err != nil {
			return fmt.Errorf("invalid value for %v: %w", k, err)
		}
		if reflect.TypeOf(val) != value.Type() {
			return fmt.Errorf("%v: parse returned %T, wanted %v",
				k, val, value.Type())
		}
		value.Set(reflect.ValueOf(val))
		return nil
	}

	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:

		evTyped, err := strconv.ParseInt(envValue, 10, value.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer for %v: %w", k, err)
		}
		value.SetInt(evTyped)

	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64:

		evTyped, err := strconv.ParseUint(envValue, 10, value.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned for %v: %w", k, err)
		}
		value.SetUint(evTyped)

	case reflect.String:
		value.SetString(envValue)

	case reflect.Bool:
		val, err := strconv.ParseBool(envValue)
		if err != nil {
			return fmt.Errorf("invalid bool for %v: %w", k, err)
		}
		value.SetBool(val)

	case reflect.Slice:
		if value.Type().Elem().Kind() != reflect.String {
			return errors.New(k + ": only string slices are supported")
		}
		value.Set(reflect.AppendSlice(value,
			reflect.ValueOf(strings.Split(envValue, ","))))

	default:
		return fmt.Errorf("unsupported type for %v: %v", k, value.Kind())
	}

	return nil
}

func PrintableConfig(c CfgMap) []string {
	keys := sortedKeys(c)
	p := make([]string, 0, len(c))
	for _, key := range keys {
		switch c[key].Print {
		case PrintAll:
			val := reflect.ValueOf(c[key].Value).Elem()
			p = append(p, fmt.Sprintf("%-*s: %v", Align, key, val))
		case PrintSecret:
			p = append(p, fmt.Sprintf("%-*s: %v", Align, key, "********"))
		}
	}
	return p
}

func Help(w io.Writer, c CfgMap) {
	for _, key := range sortedKeys(c) {
		required := ""
		if c[key].Required {
			required = "(required) "
		}
		def := ""
		if c[key].DefaultValue != "" {
			def = fmt.Sprintf("(default: %v)", c[key].DefaultValue)
		}
		fmt.Fprintf(w, "\t%-*s: %v %v%v\n",
			Align, key, c[key].Help, required, def)
	}
}
