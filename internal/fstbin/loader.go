// Package fstbin decodes the compact, persisted form of an
// internal/fst.Transducer: a concatenation of length-delimited records,
// each a standard protobuf-wire encoded message with six scalar fields.
package fstbin

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/alpino-nl/alpinotok/internal/fst"
)

// ErrRead wraps a failure to read the transducer byte source.
var ErrRead = errors.New("fstbin: read error")

// ErrDecode wraps a failure to decode the record stream: truncated
// framing, a length prefix exceeding the remaining buffer, invalid UTF-8
// in a string field, or an unrecognized required tag.
var ErrDecode = errors.New("fstbin: decode error")

// Field tags in the persisted record schema.
const (
	tagSymbol        = 1
	tagIsLastOfState = 2
	tagIsFinalState  = 3
	tagNext          = 4
	tagOutput        = 5
	tagFinalOutput   = 6
)

// Load reads the full transducer byte source into memory and decodes it
// into an immutable *fst.Transducer; fst.New then builds the known-symbol
// set in one further pass over the decoded transitions.
func Load(r io.Reader) (*fst.Transducer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	transitions, err := decodeAll(data)
	if err != nil {
		return nil, err
	}

	return fst.New(transitions), nil
}

// decodeAll iteratively decodes length-delimited records until the buffer
// is exhausted.
func decodeAll(data []byte) ([]fst.Transition, error) {
	var transitions []fst.Transition

	for len(data) > 0 {
		recBytes, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: truncated record length prefix", ErrDecode)
		}
		data = data[n:]

		t, err := decodeTransition(recBytes)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, t)
	}

	return transitions, nil
}

// decodeTransition decodes one protobuf-wire encoded message into a
// fst.Transition.
func decodeTransition(b []byte) (fst.Transition, error) {
	var t fst.Transition

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fst.Transition{}, fmt.Errorf("%w: truncated field tag", ErrDecode)
		}
		b = b[n:]

		switch num {
		case tagSymbol:
			v, n, err := consumeVarint(b, typ)
			if err != nil {
				return fst.Transition{}, err
			}
			t.Symbol = uint32(v)
			b = b[n:]
		case tagIsLastOfState:
			v, n, err := consumeVarint(b, typ)
			if err != nil {
				return fst.Transition{}, err
			}
			t.IsLastOfState = v != 0
			b = b[n:]
		case tagIsFinalState:
			v, n, err := consumeVarint(b, typ)
			if err != nil {
				return fst.Transition{}, err
			}
			t.IsFinalState = v != 0
			b = b[n:]
		case tagNext:
			v, n, err := consumeVarint(b, typ)
			if err != nil {
				return fst.Transition{}, err
			}
			t.Next = uint32(v)
			b = b[n:]
		case tagOutput:
			s, n, err := consumeString(b, typ)
			if err != nil {
				return fst.Transition{}, err
			}
			t.Output = s
			b = b[n:]
		case tagFinalOutput:
			s, n, err := consumeString(b, typ)
			if err != nil {
				return fst.Transition{}, err
			}
			t.FinalOutput = s
			b = b[n:]
		default:
			return fst.Transition{}, fmt.Errorf("%w: unknown required tag %d", ErrDecode, num)
		}
	}

	return t, nil
}

func consumeVarint(b []byte, typ protowire.Type) (uint64, int, error) {
	if typ != protowire.VarintType {
		return 0, 0, fmt.Errorf("%w: unexpected wire type %d for varint field", ErrDecode, typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, fmt.Errorf("%w: truncated varint field", ErrDecode)
	}
	return v, n, nil
}

func consumeString(b []byte, typ protowire.Type) (string, int, error) {
	if typ != protowire.BytesType {
		return "", 0, fmt.Errorf("%w: unexpected wire type %d for string field", ErrDecode, typ)
	}
	raw, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return "", 0, fmt.Errorf("%w: truncated string field", ErrDecode)
	}
	if !utf8.Valid(raw) {
		return "", 0, fmt.Errorf("%w: invalid UTF-8 in string field", ErrDecode)
	}
	return string(raw), n, nil
}
