// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package extract splits an input file into independently convertible
// entries. Extraction is total: every input yields at least one entry.
package extract

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/toeirei/walletconv/internal/classify"
	"github.com/toeirei/walletconv/internal/logging"
	"github.com/toeirei/walletconv/internal/model"
)

// Entries extracts the entries contained in text.
//
// JSON input is split by array element or by the values of a top-level
// "wallets" collection and never reaches the line scanner. Anything else is
// scanned line by line, and if that yields nothing the whole text becomes a
// single entry.
func Entries(text string) []model.Entry {
	if entries, ok := fromJSON(text); ok {
		if len(entries) > 0 {
			return entries
		}
		return fallback(text)
	}
	if entries := fromLines(text); len(entries) > 0 {
		return entries
	}
	return fallback(text)
}

func fallback(text string) []model.Entry {
	return []model.Entry{{Content: text, Type: classify.Classify(text), Index: 0}}
}

// fromJSON reports ok=false only when text is not JSON at all.
func fromJSON(text string) ([]model.Entry, bool) {
	t := strings.TrimSpace(text)
	if t == "" || !gjson.Valid(t) {
		return nil, false
	}
	doc := gjson.Parse(t)

	var coll gjson.Result
	switch {
	case doc.IsArray():
		coll = doc
	case doc.IsObject():
		if w := doc.Get("wallets"); w.IsArray() || w.IsObject() {
			coll = w
		}
	}
	if !coll.Exists() {
		return []model.Entry{{Content: compact(doc.Raw), Type: model.TagJSON, Index: 0}}, true
	}

	var values []gjson.Result
	if coll.IsObject() {
		values = objectValues(coll)
	} else {
		values = coll.Array()
	}
	entries := make([]model.Entry, 0, len(values))
	for _, v := range values {
		entries = append(entries, model.Entry{
			Content: compact(v.Raw),
			Type:    model.TagJSON,
			Index:   len(entries),
		})
	}
	return entries, true
}

type member struct {
	key   string
	index uint64
	isIdx bool
	value gjson.Result
}

// objectValues returns the values of obj in property order: integer-like
// keys ascending, then the remaining keys in document order. A repeated key
// keeps its first position and its last value.
func objectValues(obj gjson.Result) []gjson.Result {
	var members []member
	pos := map[string]int{}
	obj.ForEach(func(k, v gjson.Result) bool {
		if i, ok := pos[k.Str]; ok {
			members[i].value = v
			return true
		}
		n, isIdx := arrayIndex(k.Str)
		pos[k.Str] = len(members)
		members = append(members, member{key: k.Str, index: n, isIdx: isIdx, value: v})
		return true
	})
	sort.SliceStable(members, func(a, b int) bool {
		ma, mb := members[a], members[b]
		if ma.isIdx != mb.isIdx {
			return ma.isIdx
		}
		return ma.isIdx && ma.index < mb.index
	})
	out := make([]gjson.Result, len(members))
	for i, m := range members {
		out[i] = m.value
	}
	return out
}

// arrayIndex reports whether key is a canonical decimal in [0, 2^32-2].
func arrayIndex(key string) (uint64, bool) {
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == math.MaxUint32 || strconv.FormatUint(n, 10) != key {
		return 0, false
	}
	return n, true
}

func compact(raw string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(raw)); err != nil {
		return raw
	}
	return buf.String()
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//")
}

func fromLines(text string) []model.Entry {
	lines := classify.Lines(text)
	switch len(lines) {
	case 0:
		return nil
	case 1:
		return []model.Entry{{Content: text, Type: classify.Classify(text), Index: 0}}
	}

	var (
		entries []model.Entry
		block   []string
		inBlock bool
		opened  int
	)
	emit := func(content string, tag model.Tag) {
		entries = append(entries, model.Entry{Content: content, Type: tag, Index: len(entries)})
	}

	for n, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !inBlock {
			if isComment(trimmed) {
				continue
			}
			if !strings.HasPrefix(trimmed, "{") {
				emit(trimmed, classify.ClassifyLine(trimmed))
				continue
			}
			inBlock = true
			opened = n + 1
			block = block[:0]
		}
		block = append(block, trimmed)
		if strings.HasSuffix(trimmed, "}") {
			raw := strings.Join(block, "\n")
			tag := model.TagText
			if gjson.Valid(raw) {
				tag = model.TagJSON
			}
			emit(raw, tag)
			inBlock = false
		}
	}

	// An unterminated block is dropped without an entry.
	if inBlock {
		logging.Warnf("extract: JSON block opened at non-blank line %d is never closed; %d line(s) dropped", opened, len(block))
	}
	return entries
}
