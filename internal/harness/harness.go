// SPDX-License-Identifier: MIT

// Package harness implements the out-of-scope experiment driver: a
// bounded producer/consumer pipeline that feeds pages from a trace file
// through a comparison Algorithm and records compressed sizes.
package harness

import (
	"context"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Algorithm is an opaque byte-in/byte-out compressor: the harness never
// inspects an Algorithm's internals, only the size of what it returns.
// The WK codec, the WK+Huffman pipeline, and the general-purpose
// comparison compressors in comparators.go all satisfy this interface.
type Algorithm interface {
	Name() string
	Compress(page []byte) ([]byte, error)
}

// Driver runs a single Algorithm over every page read from a trace.
type Driver struct {
	Algorithm Algorithm
	// Workers is the number of concurrent compressor goroutines. Defaults
	// to 1, matching a single reader feeding a single consumer.
	Workers int
	// QueueSize bounds the channel between the reader and the workers.
	// Defaults to Workers.
	QueueSize int
}

type pageJob struct {
	index int
	page  []byte
}

// Run reads pages from r until exhaustion, compresses each with
// d.Algorithm, and returns one compressed size per page in trace order.
// The channel between the single reader goroutine and the worker pool is
// the only shared resource in the pipeline; the first error from any
// goroutine cancels the rest.
func (d *Driver) Run(ctx context.Context, r *PageReader) ([]int, error) {
	workers := d.Workers
	if workers <= 0 {
		workers = 1
	}
	queueSize := d.QueueSize
	if queueSize <= 0 {
		queueSize = workers
	}

	jobs := make(chan pageJob, queueSize)
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	sizes := make(map[int]int)
	maxIndex := -1

	g.Go(func() error {
		defer close(jobs)
		idx := 0
		for {
			page, err := r.Next()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case jobs <- pageJob{index: idx, page: page}:
			case <-ctx.Done():
				return ctx.Err()
			}
			idx++
		}
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for job := range jobs {
				compressed, err := d.Algorithm.Compress(job.page)
				if err != nil {
					return err
				}
				mu.Lock()
				sizes[job.index] = len(compressed)
				if job.index > maxIndex {
					maxIndex = job.index
				}
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]int, maxIndex+1)
	for i := range out {
		out[i] = sizes[i]
	}
	return out, nil
}
