package extraction

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/types"
)

// DefaultWorkers is the batch concurrency used when BatchOptions.Workers is
// zero or negative.
const DefaultWorkers = 4

// BatchOptions holds configuration for a batch run.
type BatchOptions struct {
	// Workers caps how many documents are extracted concurrently.
	Workers int
	// OnResult, when set, is called with each completed document result.
	// Calls may arrive in any order.
	OnResult func(types.DocumentResult)
}

// ProcessBatch extracts fields from every document and returns one result
// record per document, in input order. Documents are independent and the
// extractors are pure functions, so documents run concurrently up to
// opts.Workers. A document that failed ingestion, or a batch cancelled via
// ctx, yields failure records carrying the document identifier and a
// message; the batch itself never aborts on a per-document failure.
func (e *Extractor) ProcessBatch(ctx context.Context, docs []ingestion.Document, opts BatchOptions) []types.DocumentResult {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]types.DocumentResult, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			results[i] = e.processDocument(ctx, doc)
			if opts.OnResult != nil {
				opts.OnResult(results[i])
			}
			return nil
		})
	}
	// Workers never return errors; failures live on the per-document records.
	_ = g.Wait()

	return results
}

// processDocument produces the result record for one document.
func (e *Extractor) processDocument(ctx context.Context, doc ingestion.Document) types.DocumentResult {
	result := types.DocumentResult{
		DocumentID: doc.ID,
		File:       doc.Path,
	}

	if err := ctx.Err(); err != nil {
		result.Error = err.Error()
		return result
	}
	if doc.Err != "" {
		result.Error = doc.Err
		return result
	}

	extracted := e.Extract(doc.Text)
	result.Result = &extracted
	return result
}
