// Package tokenbatch fans a batch of paragraphs out across a bounded
// worker pool and collects their tokenized results back in input order.
// It exists to exercise, not replace, alpinotok.Tokenizer: a loaded
// Tokenizer is immutable and may be shared concurrently by any number of
// goroutines, and TokenizeAll is the one place in this module that
// actually does so.
package tokenbatch

import (
	"context"

	"github.com/gammazero/workerpool"
	"github.com/google/uuid"

	"github.com/alpino-nl/alpinotok"
)

// Result is one paragraph's tokenization outcome within a batch.
type Result struct {
	// BatchID is the same for every Result produced by one TokenizeAll
	// call, so log records can group concurrent batches together.
	BatchID uuid.UUID
	// Index is the paragraph's position in the input slice, so callers
	// that discard order elsewhere can still recover it.
	Index int
	// DocID and Title are caller-supplied passthrough metadata; the core
	// Tokenizer never populates them itself.
	DocID, Title string
	Sentences    [][]string
	Err          error
}

// Doc pairs a paragraph with the optional document metadata a caller
// wants carried through to its Result.
type Doc struct {
	Paragraph    string
	DocID, Title string
}

// maxWorkers bounds the pool regardless of batch size; a handful of
// concurrent interpreter runs saturates most cores since Run itself is
// allocation-light CPU work, not I/O.
const maxWorkers = 8

// TokenizeAll tokenizes every paragraph in docs concurrently over a
// bounded worker pool, returning one Result per input document in the
// same order they were given (not completion order). Every Result's
// BatchID is the same uuid.UUID, stamped once per call, so a caller
// correlating log output across concurrent batches can group by it.
func TokenizeAll(ctx context.Context, tok *alpinotok.Tokenizer, docs []Doc) []Result {
	batchID := uuid.New()
	results := make([]Result, len(docs))

	workers := maxWorkers
	if len(docs) < workers {
		workers = len(docs)
	}
	if workers == 0 {
		return results
	}

	pool := workerpool.New(workers)
	for i, doc := range docs {
		i, doc := i, doc
		pool.Submit(func() {
			sentences, err := tok.Tokenize(ctx, doc.Paragraph)
			results[i] = Result{
				BatchID:   batchID,
				Index:     i,
				DocID:     doc.DocID,
				Title:     doc.Title,
				Sentences: sentences,
				Err:       err,
			}
		})
	}
	pool.StopWait()

	return results
}
