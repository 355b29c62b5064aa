package alpinotok

import "log/slog"

// tokenizerConfig holds Tokenizer construction options. Call With... to
// get a modified copy; the defaults live in defaultTokenizerConfig so
// applying no options at all is well-defined.
type tokenizerConfig struct {
	maxParagraphRunes         int
	logger                    *slog.Logger
	strictMalformedTransducer bool
}

var defaultTokenizerConfig = tokenizerConfig{
	maxParagraphRunes:         0, // unbounded
	logger:                    nil,
	strictMalformedTransducer: true,
}

// clone returns a shallow copy of c. Options only replace fields on that
// copy, so applying an option never mutates a shared default.
func (c tokenizerConfig) clone() tokenizerConfig {
	return c
}

// TokenizerOption configures a Tokenizer built with NewTokenizer.
type TokenizerOption func(tokenizerConfig) tokenizerConfig

// WithMaxParagraphRunes bounds the number of runes Tokenize will accept
// before returning ErrParagraphTooLong, guarding against the
// O(|input|·max(|edge.output|)) output-size blow-up a pathological
// paragraph could otherwise trigger. n <= 0 means unbounded (the default).
func WithMaxParagraphRunes(n int) TokenizerOption {
	return func(c tokenizerConfig) tokenizerConfig {
		c = c.clone()
		c.maxParagraphRunes = n
		return c
	}
}

// WithLogger attaches a structured logger. Tokenize logs rejections at
// Debug level (an expected, frequent outcome for free-form input, not a
// warning) and malformed-transducer detections at Error level. A nil
// logger (the default) disables all logging.
func WithLogger(logger *slog.Logger) TokenizerOption {
	return func(c tokenizerConfig) tokenizerConfig {
		c = c.clone()
		c.logger = logger
		return c
	}
}

// WithStrictMalformedTransducer controls what happens when the
// interpreter detects a corrupted transducer, a fatal condition distinct
// from ordinary input rejection. When strict is true (the default),
// Tokenize returns a *MalformedTransducerError. When false, Tokenize
// panics instead, for callers who'd rather crash loudly than risk
// silently tolerating a corrupted build artifact.
func WithStrictMalformedTransducer(strict bool) TokenizerOption {
	return func(c tokenizerConfig) tokenizerConfig {
		c = c.clone()
		c.strictMalformedTransducer = strict
		return c
	}
}
