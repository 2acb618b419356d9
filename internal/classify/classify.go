// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package classify recognizes the shape of key material in a text blob. All
// checks are pattern tests on the trimmed input; nothing here verifies
// checksums or derivations.
package classify

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/toeirei/walletconv/internal/model"
)

var (
	wifPattern     = regexp.MustCompile(`^[5KL][1-9A-HJ-NP-Za-km-z]{50,51}$`)
	hex64Pattern   = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)
	addressPattern = regexp.MustCompile(`^[0-9a-fA-F]{40}$`)
)

var mnemonicWordCounts = map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}

var extendedKeyPrefixes = []string{"xpub", "xprv", "ypub", "yprv", "zpub", "zprv"}

// walletJSONKeys are top-level fields whose presence alone marks a document as
// wallet JSON.
var walletJSONKeys = []string{"keystore", "privateKey", "xprv", "seed", "mnemonic", "seedPhrase"}

func stripHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

// IsWIF reports whether text looks like a Wallet Import Format key.
func IsWIF(text string) bool {
	return wifPattern.MatchString(strings.TrimSpace(text))
}

// IsPrivateKey reports whether text is 64 hex characters, optionally 0x prefixed.
func IsPrivateKey(text string) bool {
	return hex64Pattern.MatchString(stripHexPrefix(strings.TrimSpace(text)))
}

// IsMnemonic only counts words; the wordlist is not consulted.
func IsMnemonic(text string) bool {
	return mnemonicWordCounts[len(strings.Fields(text))]
}

// IsExtendedKey reports whether text starts with an HD key prefix.
func IsExtendedKey(text string) bool {
	t := strings.TrimSpace(text)
	for _, p := range extendedKeyPrefixes {
		if strings.HasPrefix(t, p) {
			return true
		}
	}
	return false
}

// IsEthereumAddress reports whether text is 40 hex characters, optionally 0x prefixed.
func IsEthereumAddress(text string) bool {
	return addressPattern.MatchString(stripHexPrefix(strings.TrimSpace(text)))
}

// IsWalletJSON reports whether text is a JSON object carrying wallet markers.
// Malformed JSON is simply not wallet JSON.
func IsWalletJSON(text string) bool {
	t := strings.TrimSpace(text)
	if !gjson.Valid(t) {
		return false
	}
	return HasWalletMarkers(gjson.Parse(t))
}

// HasWalletMarkers applies the wallet JSON marker rules to a parsed document.
func HasWalletMarkers(doc gjson.Result) bool {
	if !doc.IsObject() {
		return false
	}
	has := func(k string) bool { return doc.Get(gjson.Escape(k)).Exists() }
	if has("wallet_type") && has("seed_version") {
		return true
	}
	if has("crypto") && has("version") {
		return true
	}
	for _, k := range walletJSONKeys {
		if has(k) {
			return true
		}
	}
	return false
}

// Detect returns the first matching Kind in precedence order.
func Detect(text string) Kind {
	switch {
	case IsWalletJSON(text):
		return KindWalletJSON
	case IsWIF(text):
		return KindWIF
	case IsPrivateKey(text):
		return KindPrivateKey
	case IsMnemonic(text):
		return KindMnemonic
	case IsExtendedKey(text):
		return KindExtendedKey
	case IsEthereumAddress(text):
		return KindEthereumAddress
	}
	return KindUnknown
}

// Classify maps text to an entry tag, including the wallet JSON check.
func Classify(text string) model.Tag {
	if IsWalletJSON(text) {
		return model.TagJSON
	}
	return ClassifyLine(text)
}

// ClassifyLine maps text to an entry tag using the per-shape predicates only.
func ClassifyLine(text string) model.Tag {
	switch {
	case IsWIF(text):
		return model.TagWIF
	case IsPrivateKey(text):
		return model.TagPrivateKey
	case IsMnemonic(text):
		return model.TagMnemonic
	case IsExtendedKey(text):
		return model.TagExtendedKey
	}
	return model.TagText
}

// IsCryptoContent reports whether the whole text, or any one of its non-empty
// lines, is recognized key material.
func IsCryptoContent(text string) bool {
	if Detect(text) != KindUnknown {
		return true
	}
	lines := Lines(text)
	if len(lines) < 2 {
		return false
	}
	// Lines never contain a break, so one level of checking is enough.
	for _, line := range lines {
		if Detect(line) != KindUnknown {
			return true
		}
	}
	return false
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Lines splits text on line breaks (\n, \r\n or a lone \r) and drops blank
// lines. Lines are returned untrimmed.
func Lines(text string) []string {
	raw := strings.Split(lineBreaks.Replace(text), "\n")
	out := raw[:0]
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// Result is the display-oriented answer for a whole input.
type Result struct {
	IsCrypto bool   `json:"is_crypto"`
	Kind     Kind   `json:"-"`
	Label    string `json:"label"`
}

// ClassifyContent labels a whole input. A multi-line input whose lines match
// individually, but not as a whole, is labelled as multiple credentials.
func ClassifyContent(text string) Result {
	k := Detect(text)
	if k != KindUnknown {
		return Result{IsCrypto: true, Kind: k, Label: k.Label()}
	}
	if IsCryptoContent(text) {
		return Result{IsCrypto: true, Kind: KindMultiple, Label: KindMultiple.Label()}
	}
	return Result{Kind: KindUnknown, Label: KindUnknown.Label()}
}
