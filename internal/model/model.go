// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "fmt"

// Tag is the classification assigned to an Entry.
type Tag string

const (
	TagJSON        Tag = "json"
	TagMnemonic    Tag = "mnemonic"
	TagPrivateKey  Tag = "private_key"
	TagWIF         Tag = "wif"
	TagExtendedKey Tag = "extended_key"
	TagText        Tag = "text"
)

// Tags lists every tag in classification precedence order.
var Tags = []Tag{TagJSON, TagWIF, TagPrivateKey, TagMnemonic, TagExtendedKey, TagText}

// IsSecret reports whether the tag denotes raw key material rather than a
// structured document or free text.
func (t Tag) IsSecret() bool {
	switch t {
	case TagMnemonic, TagPrivateKey, TagWIF, TagExtendedKey:
		return true
	}
	return false
}

// Entry is one independently convertible credential found inside an input
// file. Index is the zero-based discovery order.
type Entry struct {
	Content string `json:"content"`
	Type    Tag    `json:"type"`
	Index   int    `json:"index"`
}

// String returns a short description that never includes the content.
func (e Entry) String() string {
	return fmt.Sprintf("#%d (%s, %d bytes)", e.Index, e.Type, len(e.Content))
}
