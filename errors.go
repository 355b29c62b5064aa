package alpinotok

import (
	"errors"
	"fmt"

	"github.com/alpino-nl/alpinotok/internal/fst"
)

// ErrNotInLanguage is returned by Tokenize when the transducer rejects the
// input paragraph — the ordinary "this input is unsupported" signal, not
// a programmer error. Callers may fall back to another tokenizer or
// report the offending paragraph.
var ErrNotInLanguage = fst.ErrNotInLanguage

// ErrParagraphTooLong is returned by Tokenize when the input exceeds the
// limit set by WithMaxParagraphRunes.
var ErrParagraphTooLong = errors.New("alpinotok: paragraph exceeds configured rune limit")

// MalformedTransducerError is fst.MalformedTransducerError re-exported at
// the facade so callers never need to import internal/fst directly to use
// errors.As against it.
type MalformedTransducerError = fst.MalformedTransducerError

func wrapTokenizeError(text string, err error) error {
	var malformed *MalformedTransducerError
	if errors.As(err, &malformed) {
		return malformed
	}
	return fmt.Errorf("alpinotok: tokenizing %d-rune paragraph: %w", len([]rune(text)), err)
}
