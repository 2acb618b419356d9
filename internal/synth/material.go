// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package synth

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/toeirei/walletconv/internal/classify"
	"github.com/toeirei/walletconv/internal/model"
)

// Placeholder values stand in for material that would require derivation or
// encryption. They are literal and stable so that outputs are reproducible.
const (
	PlaceholderAddress        = "placeholder-ethereum-address"
	PlaceholderBitcoinAddress = "placeholder-bitcoin-address"
	PlaceholderXpub           = "placeholder-xpub"
	PlaceholderXprv           = "placeholder-xprv"
	PlaceholderCiphertext     = "placeholder-ciphertext"
	PlaceholderIV             = "placeholder-iv"
	PlaceholderSalt           = "placeholder-salt"
	PlaceholderMAC            = "placeholder-mac"
)

// Material is what both entry points reduce their input to before a format
// builder runs. Empty fields mean "not present in the input".
type Material struct {
	Tag         model.Tag
	Mnemonic    string
	PrivateKey  string
	ExtendedKey string
	Address     string
	// Raw is the trimmed secret, or the compact document for structured input.
	Raw string
}

var (
	mnemonicPaths    = []string{"mnemonic", "seedPhrase", "seed_phrase", "recovery_phrase", "seed", "master_seed", "keystore.seed"}
	privateKeyPaths  = []string{"privateKey", "private_key", "privkey", "wif"}
	extendedKeyPaths = []string{"xprv", "xpub", "extendedPrivateKey", "extended_key", "keystore.xprv", "keystore.xpub"}
)

func firstString(doc gjson.Result, paths []string) string {
	for _, p := range paths {
		if v := doc.Get(p); v.Type == gjson.String && strings.TrimSpace(v.Str) != "" {
			return strings.TrimSpace(v.Str)
		}
	}
	return ""
}

// materialFromDocument picks recognizable fields out of a JSON object.
func materialFromDocument(doc gjson.Result) Material {
	m := Material{
		Mnemonic:    firstString(doc, mnemonicPaths),
		PrivateKey:  firstString(doc, privateKeyPaths),
		ExtendedKey: firstString(doc, extendedKeyPaths),
		Address:     firstString(doc, []string{"address"}),
		Raw:         compactJSON(doc.Raw),
	}
	if m.PrivateKey == "" {
		// Electrum imported keystores map address -> key.
		doc.Get("keystore.keypairs").ForEach(func(_, v gjson.Result) bool {
			if v.Type == gjson.String && v.Str != "" {
				m.PrivateKey = v.Str
				return false
			}
			return true
		})
	}

	switch {
	case m.Mnemonic != "":
		m.Tag = model.TagMnemonic
	case m.PrivateKey != "":
		m.Tag = model.TagPrivateKey
		if classify.IsWIF(m.PrivateKey) {
			m.Tag = model.TagWIF
		}
	case m.ExtendedKey != "":
		m.Tag = model.TagExtendedKey
	default:
		m.Tag = model.TagJSON
	}
	return m
}

// materialFromSecret classifies a raw secret and files it under the matching
// field. Unrecognized text only populates Raw.
func materialFromSecret(secret string) Material {
	s := strings.TrimSpace(secret)
	m := Material{Tag: classify.ClassifyLine(s), Raw: s}
	switch m.Tag {
	case model.TagMnemonic:
		m.Mnemonic = s
	case model.TagWIF, model.TagPrivateKey:
		m.PrivateKey = s
	case model.TagExtendedKey:
		m.ExtendedKey = s
	default:
		if classify.IsEthereumAddress(s) {
			m.Address = s
		}
	}
	return m
}

// Secret returns the single most specific secret, falling back to Raw.
func (m Material) Secret() string {
	switch {
	case m.Mnemonic != "":
		return m.Mnemonic
	case m.PrivateKey != "":
		return m.PrivateKey
	case m.ExtendedKey != "":
		return m.ExtendedKey
	}
	return m.Raw
}

// XPub returns the extended key when it is a public one.
func (m Material) XPub() string {
	if isPublicExtended(m.ExtendedKey) {
		return m.ExtendedKey
	}
	return PlaceholderXpub
}

// XPrv returns the extended key when it is a private one.
func (m Material) XPrv() string {
	if m.ExtendedKey != "" && !isPublicExtended(m.ExtendedKey) {
		return m.ExtendedKey
	}
	return PlaceholderXprv
}

// EthAddress returns the detected address or the placeholder.
func (m Material) EthAddress() string {
	if m.Address != "" {
		return m.Address
	}
	return PlaceholderAddress
}

// Kind names the material for schemas that record an import type.
func (m Material) Kind() string {
	switch m.Tag {
	case model.TagMnemonic:
		return "mnemonic"
	case model.TagWIF, model.TagPrivateKey:
		return "private_key"
	case model.TagExtendedKey:
		return "extended_key"
	}
	if m.Address != "" {
		return "watch_only"
	}
	return "imported"
}

func isPublicExtended(k string) bool {
	return strings.HasPrefix(k, "xpub") || strings.HasPrefix(k, "ypub") || strings.HasPrefix(k, "zpub")
}
