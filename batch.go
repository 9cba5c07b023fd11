package nethys

import (
	"context"
	"sort"
)

// Batch sizing thresholds.
const (
	// MaxBatchSize is the largest number of records in one batch.
	MaxBatchSize = 200

	// MinStandaloneSize is the smallest category that gets a batch of its own.
	// Smaller categories are pooled and packed together.
	MinStandaloneSize = 50
)

// Batch is a bounded group of records uploaded to the search index together.
type Batch struct {
	// Address is the content address of the serialized batch. It is set by
	// the store that serializes the batch.
	Address string
	Records []*Record
}

// Members returns the ordered record keys of the batch.
func (b *Batch) Members() []string {
	keys := make([]string, len(b.Records))
	for i, rec := range b.Records {
		keys[i] = rec.Key()
	}
	return keys
}

// BatchStore persists addressed batches plus their index with atomic
// semantics. SaveBatch writes to a temporary location; Commit writes the
// index and aggregations and makes everything permanent; Abort discards.
type BatchStore interface {
	SaveBatch(ctx context.Context, batch *Batch) error
	Commit(aggs *Aggregations) error
	Abort() error
}

type categoryGroup struct {
	category Category
	records  []*Record
}

// Pack partitions records into batches of at most MaxBatchSize records.
//
// Records are grouped by category in first-seen order. Categories larger than
// MaxBatchSize are split into consecutive chunks, categories of at least
// MinStandaloneSize records form one batch each, and the remaining small
// categories are packed whole, largest first, into shared batches.
// The result depends only on the input order.
func Pack(records []*Record) []*Batch {
	var groups []*categoryGroup
	index := make(map[Category]*categoryGroup)
	for _, rec := range records {
		g, ok := index[rec.Category]
		if !ok {
			g = &categoryGroup{category: rec.Category}
			index[rec.Category] = g
			groups = append(groups, g)
		}
		g.records = append(g.records, rec)
	}

	var batches []*Batch
	var pool []*categoryGroup
	for _, g := range groups {
		n := len(g.records)
		switch {
		case n > MaxBatchSize:
			for start := 0; start < n; start += MaxBatchSize {
				end := min(start+MaxBatchSize, n)
				batches = append(batches, &Batch{Records: g.records[start:end]})
			}
		case n >= MinStandaloneSize:
			batches = append(batches, &Batch{Records: g.records})
		default:
			pool = append(pool, g)
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return len(pool[i].records) > len(pool[j].records)
	})

	// Every pooled group is smaller than MinStandaloneSize, so the first group
	// always fits an empty batch and each pass shrinks the pool.
	for len(pool) > 0 {
		var batch []*Record
		remaining := pool[:0:0]
		for _, g := range pool {
			if len(batch) < MaxBatchSize && len(batch)+len(g.records) <= MaxBatchSize {
				batch = append(batch, g.records...)
				continue
			}
			remaining = append(remaining, g)
		}
		batches = append(batches, &Batch{Records: batch})
		pool = remaining
	}

	return batches
}
