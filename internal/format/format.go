// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package format holds the single registry of output formats. Every layer that
// needs an extension, MIME type or display name for a format asks this package;
// nothing else declares the table.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// ID selects one of the supported output schemas.
type ID string

const (
	Wallet      ID = "wallet"
	Dat         ID = "dat"
	JSON        ID = "json"
	Electrum    ID = "electrum"
	Exodus      ID = "exodus"
	Mycelium    ID = "mycelium"
	Trezor      ID = "trezor"
	Ledger      ID = "ledger"
	MetaMask    ID = "metamask"
	Coinbase    ID = "coinbase"
	Binance     ID = "binance"
	TrustWallet ID = "trustwallet"
)

// Category groups formats for display.
type Category string

const (
	CategoryDesktop  Category = "desktop"
	CategoryGeneric  Category = "generic"
	CategoryMobile   Category = "mobile"
	CategoryHardware Category = "hardware"
	CategoryBrowser  Category = "browser"
)

const (
	MimeJSON   = "application/json"
	MimeBinary = "application/octet-stream"
)

// ErrUnknownFormat is returned by Parse for identifiers not in the registry.
var ErrUnknownFormat = errors.New("unknown format")

// Descriptor is the static metadata attached to a format.
type Descriptor struct {
	ID          ID
	Extension   string
	MimeType    string
	DisplayName string
	Category    Category
}

// Binary reports whether the format is written as an opaque byte stream.
func (d Descriptor) Binary() bool { return d.MimeType == MimeBinary }

// FileName joins a caller-chosen base name with the format extension.
func (d Descriptor) FileName(base string) string {
	return base + d.Extension
}

// registry is ordered; All returns it in this order.
var registry = []Descriptor{
	{Wallet, ".wallet", MimeJSON, "Electrum Wallet", CategoryDesktop},
	{Dat, ".dat", MimeBinary, "Wallet Database", CategoryDesktop},
	{JSON, ".json", MimeJSON, "JSON Wallet", CategoryGeneric},
	{Electrum, ".wallet", MimeJSON, "Electrum", CategoryDesktop},
	{Exodus, ".json", MimeJSON, "Exodus", CategoryDesktop},
	{Mycelium, ".json", MimeJSON, "Mycelium", CategoryMobile},
	{Trezor, ".json", MimeJSON, "Trezor", CategoryHardware},
	{Ledger, ".json", MimeJSON, "Ledger", CategoryHardware},
	{MetaMask, ".json", MimeJSON, "MetaMask", CategoryBrowser},
	{Coinbase, ".json", MimeJSON, "Coinbase Wallet", CategoryMobile},
	{Binance, ".json", MimeJSON, "Binance Chain Wallet", CategoryBrowser},
	{TrustWallet, ".json", MimeJSON, "Trust Wallet", CategoryMobile},
}

var byID = func() map[ID]Descriptor {
	m := make(map[ID]Descriptor, len(registry))
	for _, d := range registry {
		m[d.ID] = d
	}
	return m
}()

// All returns a copy of the registry in display order.
func All() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

// IDs returns every registered identifier in display order.
func IDs() []ID {
	out := make([]ID, 0, len(registry))
	for _, d := range registry {
		out = append(out, d.ID)
	}
	return out
}

// Lookup returns the descriptor for id.
func Lookup(id ID) (Descriptor, bool) {
	d, ok := byID[id]
	return d, ok
}

// MustLookup is Lookup for identifiers that are known to be registered.
// Unknown identifiers resolve to the wallet descriptor.
func MustLookup(id ID) Descriptor {
	if d, ok := byID[id]; ok {
		return d
	}
	return byID[Wallet]
}

// Parse resolves a user supplied name, case-insensitively.
func Parse(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := byID[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return id, nil
}

// ParseList resolves a list of names. The special name "all" expands to the
// whole registry. Duplicates are dropped, first occurrence wins.
func ParseList(names []string) ([]ID, error) {
	var out []ID
	seen := make(map[ID]bool)
	for _, n := range names {
		for _, part := range strings.Split(n, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			if strings.EqualFold(strings.TrimSpace(part), "all") {
				for _, id := range IDs() {
					if !seen[id] {
						seen[id] = true
						out = append(out, id)
					}
				}
				continue
			}
			id, err := Parse(part)
			if err != nil {
				return nil, err
			}
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out, nil
}
