package enrich

import (
	"context"
	"runtime"
	"sync"

	"github.com/asakura-dev/enricher/internal/expense"
)

// DefaultWorkers is the worker count used when none is configured.
func DefaultWorkers() int {
	cpus := runtime.NumCPU()
	if cpus < 4 {
		return 4
	}
	return cpus
}

// EnrichAll fans the rows out over a fixed pool of workers and collects the
// results. Each task carries its input index and writes into a pre-sized
// slice, so output order always equals input order no matter which rows
// finish first.
func (e *Enricher) EnrichAll(ctx context.Context, rows []expense.SourceRecord, workers int) []expense.EnrichedRecord {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	if workers > len(rows) && len(rows) > 0 {
		workers = len(rows)
	}

	records := make([]expense.EnrichedRecord, len(rows))

	type task struct {
		index int
		row   expense.SourceRecord
	}
	tasks := make(chan task)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				records[t.index] = e.EnrichRow(ctx, t.row)
			}
		}()
	}

	for i, row := range rows {
		tasks <- task{index: i, row: row}
	}
	close(tasks)
	wg.Wait()

	return records
}
