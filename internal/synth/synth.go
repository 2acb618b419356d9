// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package synth renders an entry into one of the registered output formats.
//
// Every format has two entry points: fromStructured for content that parses
// as a JSON object and fromRawSecret for everything else. Both reduce their
// input to a Material and hand it to the format's builder, so the two paths
// always converge on the same schema. Rendering never fails; output is
// always valid JSON text (dat is the byte encoding of the wallet document).
package synth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/toeirei/walletconv/internal/format"
)

// Output is one rendered file.
type Output struct {
	Format format.Descriptor
	Data   []byte
}

// Size returns the output length in bytes.
func (o Output) Size() int { return len(o.Data) }

// schema binds a builder to its passthrough rule.
type schema struct {
	// passthrough reports whether a document already has the target shape
	// and should be re-emitted rather than rebuilt.
	passthrough func(doc gjson.Result) bool
	// normalize may patch a passed-through document.
	normalize func(raw string, m Material) string
	build     func(m Material) any
}

func (s schema) fromStructured(doc gjson.Result) []byte {
	m := materialFromDocument(doc)
	if s.passthrough != nil && s.passthrough(doc) {
		raw := doc.Raw
		if s.normalize != nil {
			raw = s.normalize(raw, m)
		}
		return indentJSON(raw)
	}
	return encode(s.build(m))
}

func (s schema) fromRawSecret(secret string) []byte {
	return encode(s.build(materialFromSecret(secret)))
}

func hasWalletType(doc gjson.Result) bool {
	return doc.Get("wallet_type").Exists()
}

func isV3Keystore(doc gjson.Result) bool {
	return doc.Get("crypto").Exists() && doc.Get("version").Exists()
}

// fillKeystoreFields adds the id and address a v3 keystore must carry.
func fillKeystoreFields(raw string, m Material) string {
	if !gjson.Get(raw, "id").Exists() {
		if out, err := sjson.Set(raw, "id", keystoreID(m.Raw)); err == nil {
			raw = out
		}
	}
	if !gjson.Get(raw, "address").Exists() {
		if out, err := sjson.Set(raw, "address", PlaceholderAddress); err == nil {
			raw = out
		}
	}
	return raw
}

var walletSchema = schema{passthrough: hasWalletType, build: buildWallet}

var schemas = map[format.ID]schema{
	format.Wallet:      walletSchema,
	format.Dat:         walletSchema,
	format.JSON:        walletSchema,
	format.Electrum:    {passthrough: hasWalletType, build: buildElectrum},
	format.Exodus:      {build: buildExodus},
	format.Mycelium:    {build: buildMycelium},
	format.Trezor:      {build: buildTrezor},
	format.Ledger:      {build: buildLedger},
	format.MetaMask:    {passthrough: isV3Keystore, normalize: fillKeystoreFields, build: buildMetaMask},
	format.Coinbase:    {build: buildCoinbase},
	format.Binance:     {build: buildBinance},
	format.TrustWallet: {build: buildTrustWallet},
}

func init() {
	for _, id := range format.IDs() {
		if _, ok := schemas[id]; !ok {
			panic(fmt.Sprintf("synth: format %q has no schema", id))
		}
	}
}

// Render produces the output for content in format id. Unknown identifiers
// are rendered as wallet.
func Render(content string, id format.ID) Output {
	desc, ok := format.Lookup(id)
	if !ok {
		desc = format.MustLookup(format.Wallet)
	}
	s := schemas[desc.ID]

	t := strings.TrimSpace(content)
	var data []byte
	if doc, ok := parseObject(t); ok {
		data = s.fromStructured(doc)
	} else {
		data = s.fromRawSecret(unquote(t))
	}
	return Output{Format: desc, Data: data}
}

// Synthesize returns only the rendered bytes.
func Synthesize(content string, id format.ID) []byte {
	return Render(content, id).Data
}

func parseObject(t string) (gjson.Result, bool) {
	if t == "" || !gjson.Valid(t) {
		return gjson.Result{}, false
	}
	doc := gjson.Parse(t)
	return doc, doc.IsObject()
}

// unquote turns a JSON string literal into its value so that a quoted secret
// is treated like the bare one. Other JSON scalars and arrays stay as text.
func unquote(t string) string {
	if strings.HasPrefix(t, `"`) && gjson.Valid(t) {
		if r := gjson.Parse(t); r.Type == gjson.String {
			return r.Str
		}
	}
	return t
}

func compactJSON(raw string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(raw)); err != nil {
		return raw
	}
	return buf.String()
}

// indentJSON re-emits raw with two-space indentation, keeping key order.
func indentJSON(raw string) []byte {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(compactJSON(raw)), "", "  "); err != nil {
		return []byte(raw)
	}
	return buf.Bytes()
}

func encode(v any) []byte {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// every builder returns plain structs; keep the no-failure contract anyway
		return []byte("{}")
	}
	return b
}
