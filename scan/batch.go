// scan/batch.go
package scan

import (
	"context"
	"runtime"
	"sync"

	"nonb/fasta"
	"nonb/motif"
)

// Row is one motif occurrence decorated with its owning sequence's
// identity and length.
type Row struct {
	SequenceID string
	Motif      string
	Start      int
	End        int
	Seq        string
	Length     int
}

// Table is the flat result of scanning one or more sequences. A table
// with zero rows means the scan ran and found nothing; it is never an
// error condition.
type Table []Row

// ScanFunc scans one sequence. (*Scanner).Scan satisfies it.
type ScanFunc func(seq []byte) []motif.Match

// Config controls batch fan-out.
type Config struct {
	Workers int // worker goroutines; <= 0 means all CPUs
}

// AnalyzeBatch scans every record on a fixed worker pool and merges the
// per-sequence results strictly in input order, never arrival order.
// Workers share nothing mutable: each writes only its own slot of an
// index-addressed results slice. Cancelling ctx fails the whole call
// with ctx.Err(); there is no partial table. In-flight scans run to
// completion before the call returns.
func AnalyzeBatch(ctx context.Context, cfg Config, recs []fasta.Record, scan ScanFunc) (Table, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(recs) {
		workers = len(recs)
	}

	results := make([][]motif.Match, len(recs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = scan(recs[idx].Seq)
			}
		}()
	}

feed:
	for idx := range recs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table := make(Table, 0, len(recs))
	for idx := range recs {
		rec := &recs[idx]
		for _, m := range results[idx] {
			table = append(table, Row{
				SequenceID: rec.ID,
				Motif:      m.Motif,
				Start:      m.Start,
				End:        m.End,
				Seq:        m.Seq,
				Length:     len(rec.Seq),
			})
		}
	}
	return table, nil
}
