// Package alpinotok sentence-splits and tokenizes Dutch paragraphs using
// the deterministic finite-state transducer that backs the Alpino Dutch
// parser. Given a single paragraph of Unicode text on one logical line,
// Tokenize returns an ordered list of sentences, each an ordered list of
// whitespace-free token strings.
//
// A loaded Tokenizer is immutable and safe for concurrent use: build one
// with NewTokenizer (or NewTokenizerFromReader) and share it across as
// many goroutines as you like.
package alpinotok

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/alpino-nl/alpinotok/internal/fst"
	"github.com/alpino-nl/alpinotok/internal/fstbin"
	"github.com/alpino-nl/alpinotok/internal/textproc"
)

// Tokenizer composes the preprocess -> interpret -> postprocess -> split
// pipeline over an immutable, shareable transducer.
type Tokenizer struct {
	transducer *fst.Transducer
	config     tokenizerConfig
}

// NewTokenizer builds a Tokenizer from an already-loaded transducer. Use
// NewTokenizerFromReader or internal/fstbin.Load directly to obtain one
// from its persisted form.
func NewTokenizer(transducer *fst.Transducer, opts ...TokenizerOption) *Tokenizer {
	cfg := defaultTokenizerConfig
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return &Tokenizer{transducer: transducer, config: cfg}
}

// NewTokenizerFromReader reads a persisted transducer (a length-delimited
// record stream) and builds a Tokenizer from it.
func NewTokenizerFromReader(r io.Reader, opts ...TokenizerOption) (*Tokenizer, error) {
	started := time.Now()
	transducer, err := fstbin.Load(r)
	if err != nil {
		return nil, err
	}
	tok := NewTokenizer(transducer, opts...)
	if tok.config.logger != nil {
		tok.config.logger.Info("loaded transducer",
			"transitions", transducer.Len(),
			"known_symbols", transducer.KnownSymbolCount(),
			"duration", time.Since(started),
		)
	}
	return tok, nil
}

// Tokenize sentence-splits and tokenizes a single paragraph of Dutch
// text. The paragraph must be on one logical line; callers accumulate
// lines into paragraphs on blank-line boundaries upstream.
//
// Tokenize returns ErrParagraphTooLong if a WithMaxParagraphRunes limit
// is configured and exceeded, ErrNotInLanguage if the transducer rejects
// the input, and a *MalformedTransducerError if the transducer itself is
// corrupted — unless WithStrictMalformedTransducer(false) was set, in
// which case that last case panics instead.
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runes := []rune(text)
	if limit := t.config.maxParagraphRunes; limit > 0 && len(runes) > limit {
		return nil, ErrParagraphTooLong
	}

	pre := textproc.Preprocess(text)

	started := time.Now()
	raw, err := t.transducer.Run([]rune(pre))
	if err != nil {
		return nil, t.handleRunError(text, err, started)
	}

	post := textproc.Postprocess(raw)
	return textproc.Split(post), nil
}

func (t *Tokenizer) handleRunError(text string, err error, started time.Time) error {
	wrapped := wrapTokenizeError(text, err)

	var malformed *MalformedTransducerError
	isMalformed := errors.As(wrapped, &malformed)

	if t.config.logger != nil {
		if isMalformed {
			t.config.logger.Error("malformed transducer", "reason", malformed.Reason, "rune_offset", malformed.RuneOffset)
		} else {
			t.config.logger.Debug("paragraph rejected", "elapsed", time.Since(started))
		}
	}

	if isMalformed && !t.config.strictMalformedTransducer {
		panic(malformed)
	}

	return wrapped
}
