// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"slices"
	"testing"
)

func TestT_English(t *testing.T) {
	Init("en")
	if got := T("kind.mnemonic"); got != "Mnemonic Phrase" {
		t.Fatalf("expected English label, got %q", got)
	}
	if got := T("extract.summary", 3); got != "3 entries found" {
		t.Fatalf("expected formatted message, got %q", got)
	}
}

func TestT_German(t *testing.T) {
	SetLang("de")
	defer Init("en")
	if got := T("kind.mnemonic"); got != "Mnemonic-Phrase" {
		t.Fatalf("expected German label, got %q", got)
	}
	if Lang() != "de" {
		t.Fatalf("Lang()=%q", Lang())
	}
}

func TestT_UnknownLanguageFallsBack(t *testing.T) {
	Init("xx")
	defer Init("en")
	if got := T("kind.wif"); got != "WIF Private Key" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestT_UnknownIDReturnsID(t *testing.T) {
	Init("en")
	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("expected id back, got %q", got)
	}
}

func TestLanguages(t *testing.T) {
	Init("en")
	langs := Languages()
	for _, want := range []string{"en", "de"} {
		if !slices.Contains(langs, want) {
			t.Fatalf("missing locale %q in %v", want, langs)
		}
	}
}
