package tokenbatch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpino-nl/alpinotok"
	"github.com/alpino-nl/alpinotok/internal/fst"
	"github.com/alpino-nl/alpinotok/tokenbatch"
)

func buildLetterEchoTransducer(t *testing.T) *fst.Transducer {
	t.Helper()

	symbols := []uint32{fst.UnknownSymbol, ' '}
	for _, r := range "abcdefghijklmnopqrstuvwxyz" {
		symbols = append(symbols, uint32(r))
	}

	transitions := make([]fst.Transition, 2+len(symbols))
	base := uint32(2)
	transitions[1] = fst.Transition{Next: base}

	for i, symbol := range symbols {
		output := string(rune(symbol))
		if symbol == fst.UnknownSymbol {
			output = "" // placeholder: emission substitutes the queued input rune
		}
		transitions[base+uint32(i)] = fst.Transition{
			Symbol:        symbol,
			IsLastOfState: i == len(symbols)-1,
			Next:          base,
			Output:        output,
		}
	}

	return fst.New(transitions)
}

func TestTokenizeAll_PreservesInputOrder(t *testing.T) {
	tok := alpinotok.NewTokenizer(buildLetterEchoTransducer(t))

	docs := []tokenbatch.Doc{
		{Paragraph: "een", DocID: "d1"},
		{Paragraph: "twee", DocID: "d2"},
		{Paragraph: "drie", DocID: "d3"},
		{Paragraph: "vier", DocID: "d4"},
		{Paragraph: "vijf", DocID: "d5"},
	}

	results := tokenbatch.TokenizeAll(context.Background(), tok, docs)
	require.Len(t, results, len(docs))

	for i, doc := range docs {
		r := results[i]
		require.NoError(t, r.Err)
		assert.Equal(t, i, r.Index)
		assert.Equal(t, doc.DocID, r.DocID)
		assert.Equal(t, [][]string{{doc.Paragraph}}, r.Sentences)
		assert.Equal(t, results[0].BatchID, r.BatchID)
	}
}

func TestTokenizeAll_StampsSameBatchIDAcrossResults(t *testing.T) {
	tok := alpinotok.NewTokenizer(buildLetterEchoTransducer(t))

	docs := []tokenbatch.Doc{{Paragraph: "een"}, {Paragraph: "twee"}}
	first := tokenbatch.TokenizeAll(context.Background(), tok, docs)
	second := tokenbatch.TokenizeAll(context.Background(), tok, docs)

	assert.Equal(t, first[0].BatchID, first[1].BatchID, "every result in one batch shares a BatchID")
	assert.NotEqual(t, first[0].BatchID, second[0].BatchID, "each call stamps its own batch id")
}

func TestTokenizeAll_OutOfAlphabetRunesDoNotFailParagraph(t *testing.T) {
	tok := alpinotok.NewTokenizer(buildLetterEchoTransducer(t))

	docs := []tokenbatch.Doc{
		{Paragraph: "een"},
		{Paragraph: "123"},
	}
	results := tokenbatch.TokenizeAll(context.Background(), tok, docs)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	// digits aren't in this tiny alphabet but pass through the Unknown
	// edge like any other out-of-alphabet rune; neither doc errors.
	assert.NoError(t, results[1].Err)
}

func TestTokenizeAll_EmptyBatch(t *testing.T) {
	tok := alpinotok.NewTokenizer(buildLetterEchoTransducer(t))

	results := tokenbatch.TokenizeAll(context.Background(), tok, nil)
	assert.Empty(t, results)
}
