// Copyright (c) 2026 Walletconv Team
// Walletconv - wallet file conversion toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"runtime"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"

	"github.com/toeirei/walletconv/internal/classify"
	"github.com/toeirei/walletconv/internal/estimate"
	"github.com/toeirei/walletconv/internal/extract"
	"github.com/toeirei/walletconv/internal/format"
	"github.com/toeirei/walletconv/internal/logging"
	"github.com/toeirei/walletconv/internal/model"
	"github.com/toeirei/walletconv/internal/security"
	"github.com/toeirei/walletconv/internal/synth"
)

// ErrNoFormats is returned when a conversion is requested without formats.
var ErrNoFormats = errors.New("no output formats selected")

const defaultCacheSize = 256

// Options configures an Engine. Zero values select defaults.
type Options struct {
	// Workers bounds concurrent synthesis calls; 0 means GOMAXPROCS.
	Workers int
	// CacheSize is the number of rendered outputs kept; negative disables.
	CacheSize int
}

// Engine is safe for concurrent use.
type Engine struct {
	workers int
	cache   *lru.Cache[string, synth.Output]
}

// NamedOutput is one rendered file plus the name it should be saved under.
type NamedOutput struct {
	Name  string
	Entry model.Entry
	synth.Output
}

// NewEngine builds an engine from opts.
func NewEngine(opts Options) (*Engine, error) {
	e := &Engine{workers: opts.Workers}
	if e.workers <= 0 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	size := opts.CacheSize
	if size == 0 {
		size = defaultCacheSize
	}
	if size > 0 {
		c, err := lru.New[string, synth.Output](size)
		if err != nil {
			return nil, fmt.Errorf("create output cache: %w", err)
		}
		e.cache = c
	}
	return e, nil
}

// ClassifyContent labels a whole input for display.
func (e *Engine) ClassifyContent(text string) classify.Result {
	return classify.ClassifyContent(text)
}

// ExtractEntries splits an input into entries.
func (e *Engine) ExtractEntries(text string) []model.Entry {
	return extract.Entries(text)
}

// EstimateSize predicts the output size for text rendered as id.
func (e *Engine) EstimateSize(text string, id format.ID) int {
	return estimate.Size(text, id)
}

// Synthesize renders content as id, consulting the cache first. The returned
// data is a private copy.
func (e *Engine) Synthesize(content string, id format.ID) synth.Output {
	if e.cache == nil {
		return synth.Render(content, id)
	}
	key := cacheKey(content, id)
	if out, ok := e.cache.Get(key); ok {
		return synth.Output{Format: out.Format, Data: bytes.Clone(out.Data)}
	}
	out := synth.Render(content, id)
	e.cache.Add(key, synth.Output{Format: out.Format, Data: bytes.Clone(out.Data)})
	return out
}

func cacheKey(content string, id format.ID) string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(id))
	h.Write([]byte{0})
	h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil))
}

// ConvertAll renders every entry of text in every format of ids. Results are
// ordered by entry, then by the order of ids, regardless of completion order.
func (e *Engine) ConvertAll(ctx context.Context, text string, ids []format.ID, base string) ([]NamedOutput, error) {
	if len(ids) == 0 {
		return nil, ErrNoFormats
	}
	entries := e.ExtractEntries(text)
	results := make([]NamedOutput, len(entries)*len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, entry := range entries {
		for j, id := range ids {
			slot := i*len(ids) + j
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				out := e.Synthesize(entry.Content, id)
				results[slot] = NamedOutput{
					Name:   OutputName(base, entry, out.Format, len(entries)),
					Entry:  entry,
					Output: out,
				}
				logging.Debugf("rendered entry %s as %s (fp %s)", entry, id, security.FromString(entry.Content).Fingerprint())
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
