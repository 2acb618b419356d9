package extract

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"

	"github.com/toeirei/walletconv/internal/logging"
	"github.com/toeirei/walletconv/internal/model"
)

const (
	keyA     = "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d"
	keyB     = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	keyC     = "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35"
	wif      = "KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98617"
	mnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	xpub     = "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"
)

func assertIndices(t *testing.T, entries []model.Entry) {
	t.Helper()
	for i, e := range entries {
		if e.Index != i {
			t.Fatalf("entry %d has index %d", i, e.Index)
		}
	}
}

func TestEntries_JSONArray(t *testing.T) {
	got := Entries(`[{"a":1},{"a":2}]`)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	assertIndices(t, got)
	for i, want := range []string{`{"a":1}`, `{"a":2}`} {
		if got[i].Type != model.TagJSON || got[i].Content != want {
			t.Fatalf("entry %d = %+v", i, got[i])
		}
	}
}

func TestEntries_JSONArray_ElementsCompacted(t *testing.T) {
	got := Entries("[\n  {\"seed\": \"x\",\n   \"n\": [1, 2]},\n  \"plain\"\n]")
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Content != `{"seed":"x","n":[1,2]}` || got[1].Content != `"plain"` {
		t.Fatalf("unexpected contents: %q %q", got[0].Content, got[1].Content)
	}
}

func TestEntries_WalletsArrayAndObject(t *testing.T) {
	arr := Entries(`{"name":"backup","wallets":[{"mnemonic":"m1"},{"privateKey":"p2"},{"xprv":"x3"}]}`)
	if len(arr) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(arr))
	}
	assertIndices(t, arr)
	if arr[1].Content != `{"privateKey":"p2"}` {
		t.Fatalf("unexpected entry: %+v", arr[1])
	}

	obj := Entries(`{"wallets":{"zeta":{"seed":"s1"},"alpha":{"seed":"s2"}}}`)
	if len(obj) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(obj))
	}
	// named keys keep document order
	if obj[0].Content != `{"seed":"s1"}` || obj[1].Content != `{"seed":"s2"}` {
		t.Fatalf("unexpected order: %+v", obj)
	}
}

func TestEntries_WalletsObjectPropertyOrder(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"integer keys ascending", `{"wallets":{"2":"b","1":"a"}}`, []string{`"a"`, `"b"`}},
		{"integer keys before names", `{"wallets":{"x":"n1","10":"i10","y":"n2","3":"i3"}}`, []string{`"i3"`, `"i10"`, `"n1"`, `"n2"`}},
		{"leading zero is a name", `{"wallets":{"01":"z","1":"one"}}`, []string{`"one"`, `"z"`}},
		{"negative is a name", `{"wallets":{"-1":"neg","0":"zero"}}`, []string{`"zero"`, `"neg"`}},
		{"too large is a name", `{"wallets":{"4294967295":"big","7":"seven"}}`, []string{`"seven"`, `"big"`}},
		{"repeated key keeps last value", `{"wallets":{"a":"first","b":"mid","a":"last"}}`, []string{`"last"`, `"mid"`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Entries(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d entries, got %+v", len(tc.want), got)
			}
			assertIndices(t, got)
			for i, w := range tc.want {
				if got[i].Content != w {
					t.Fatalf("entry %d = %s, want %s", i, got[i].Content, w)
				}
			}
		})
	}
}

func TestEntries_OtherJSONIsSingleEntry(t *testing.T) {
	cases := []string{
		`{"wallet_type":"standard","seed_version":17}`,
		`{"wallets":"not a collection"}`,
		`"just a string"`,
		`42`,
	}
	for _, in := range cases {
		got := Entries(in)
		if len(got) != 1 || got[0].Type != model.TagJSON || got[0].Index != 0 {
			t.Fatalf("Entries(%s) = %+v", in, got)
		}
	}
}

func TestEntries_JSONNeverLineScanned(t *testing.T) {
	in := "{\n\"mnemonic\": \"" + mnemonic + "\",\n\"note\": \"# not a comment\"\n}"
	got := Entries(in)
	if len(got) != 1 || got[0].Type != model.TagJSON {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestEntries_CarriageReturnSeparatedKeys(t *testing.T) {
	got := Entries(keyA + "\r" + keyB + "\r")
	if len(got) != 2 || got[0].Content != keyA || got[1].Content != keyB {
		t.Fatalf("unexpected entries: %+v", got)
	}
	assertIndices(t, got)
}

func TestEntries_ThreeKeyLines(t *testing.T) {
	got := Entries(keyA + "\n" + keyB + "\n" + keyC)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	assertIndices(t, got)
	for i, want := range []string{keyA, keyB, keyC} {
		if got[i].Content != want || got[i].Type != model.TagPrivateKey {
			t.Fatalf("entry %d = %+v", i, got[i])
		}
	}
}

func TestEntries_SingleLineKeepsWholeText(t *testing.T) {
	in := "\n\n  " + mnemonic + "  \n"
	got := Entries(in)
	if len(got) != 1 || got[0].Content != in || got[0].Type != model.TagMnemonic {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestEntries_MixedFileStateMachine(t *testing.T) {
	in := strings.Join([]string{
		"# exported keys",
		"// second comment",
		wif,
		"",
		`{"privateKey": "` + keyA + `",`,
		`  "address": "0x52908400098527886E0F7030069857D2E4169EE7"}`,
		mnemonic,
		`{"inline": true}`,
		"{ broken json",
		"still broken }",
		xpub,
		"hello there",
	}, "\r\n")

	got := Entries(in)
	want := []model.Tag{
		model.TagWIF,
		model.TagJSON,
		model.TagMnemonic,
		model.TagJSON,
		model.TagText,
		model.TagExtendedKey,
		model.TagText,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d: %+v", len(want), len(got), got)
	}
	assertIndices(t, got)
	for i, tag := range want {
		if got[i].Type != tag {
			t.Fatalf("entry %d: type %s; want %s (%q)", i, got[i].Type, tag, got[i].Content)
		}
	}
	if !strings.Contains(got[1].Content, "\n") || !strings.HasPrefix(got[1].Content, `{"privateKey"`) {
		t.Fatalf("json block not accumulated: %q", got[1].Content)
	}
}

func TestEntries_PlainLinesUsePerShapePredicates(t *testing.T) {
	// outside a block a line is only tested against the per-shape predicates
	got := Entries("[\"a\"\n" + keyA)
	if len(got) != 2 || got[0].Type != model.TagText {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestEntries_UnterminatedBlockDropped(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.L
	logging.L = clog.New(&buf)
	defer func() { logging.L = prev }()

	got := Entries(keyA + "\n{\"seed\": \"x\",\n\"more\": 1")
	if len(got) != 1 || got[0].Content != keyA {
		t.Fatalf("unexpected entries: %+v", got)
	}
	if !strings.Contains(buf.String(), "never closed") {
		t.Fatalf("expected a warning, got %q", buf.String())
	}
}

func TestEntries_AllCommentsFallsBack(t *testing.T) {
	in := "# one\n// two\n# three"
	got := Entries(in)
	if len(got) != 1 || got[0].Content != in || got[0].Type != model.TagText || got[0].Index != 0 {
		t.Fatalf("unexpected fallback: %+v", got)
	}
}

func TestEntries_Total(t *testing.T) {
	inputs := []string{
		"", " ", "\n\n", "x", "[]", "{}", `{"wallets":[]}`, "{", "}", "# c", "null",
		keyA, mnemonic, "a\nb", "{\n", "[1,", "\x00\x01",
	}
	for _, in := range inputs {
		got := Entries(in)
		if len(got) == 0 {
			t.Fatalf("Entries(%q) returned no entries", in)
		}
		assertIndices(t, got)
	}
}

func TestEntries_Deterministic(t *testing.T) {
	in := wif + "\n" + mnemonic + "\n{\"a\":1}"
	a, b := Entries(in), Entries(in)
	if len(a) != len(b) {
		t.Fatalf("length differs")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("entry %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
