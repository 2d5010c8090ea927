package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/dmcfalls/CSet/compare"
	"github.com/dmcfalls/CSet/cset"
	"github.com/dmcfalls/CSet/logger"
	"github.com/dmcfalls/CSet/should"
)

const (
	defaultParallelSets = 16
	parallelWorkers     = 4
	parallelInserts     = 200
	parallelValueRange  = 500
)

// ErrVerifyFailed flags a set that violated an ordering or membership
// guarantee during the parallel scenario.
var ErrVerifyFailed = errors.New("set verification failed")

// runParallel builds many independent sets concurrently on a bounded
// worker pool. A set is never shared: each one is created, verified and
// destroyed by a single task, and only plain summary values cross
// goroutines, after the pool has drained.
func runParallel(ctx context.Context, cfg Config, out io.Writer) error {
	log := logger.Get(ctx)
	p := &printer{w: out}

	count := cfg.ParallelSets
	if count <= 0 {
		count = defaultParallelSets
	}

	sizes := make([]int, count)

	pool := pond.NewPool(parallelWorkers, pond.WithContext(ctx))
	group := pool.NewGroup()

	started := time.Now()

	for i := range count {
		group.SubmitErr(func() error {
			return buildAndVerify(uint64(i), &sizes[i]) //nolint:gosec // loop index is non-negative
		})
	}

	err := group.Wait()

	pool.StopAndWait()

	if err != nil {
		return err
	}

	distinct := cset.New(compare.Ordered[int](),
		cset.WithCapacity[int](count+1),
		cset.WithFormat(strconv.Itoa))
	defer should.Close(distinct, "destroying the size summary set")

	total := 0

	for _, size := range sizes {
		total += size
		distinct.Add(size)
	}

	p.printf("built %d sets on %d workers in %s\n",
		count, parallelWorkers, time.Since(started).Round(time.Millisecond))
	p.printf("total elements: %d\n", total)
	p.printf("distinct sizes: %s\n", distinct)

	log.Info("parallel scenario done",
		"sets", count,
		"workers", parallelWorkers,
		"elapsed", time.Since(started))

	return p.err
}

// buildAndVerify creates one set from a deterministic random stream and
// checks the ordering guarantees, all from a single goroutine.
func buildAndVerify(seed uint64, size *int) error {
	rng := rand.New(rand.NewPCG(seed, seed+1))

	s := cset.New(compare.Ordered[int](), cset.WithCapacity[int](1))
	defer should.Close(s, "destroying a parallel demo set")

	for range parallelInserts {
		s.Add(rng.IntN(parallelValueRange))
	}

	entries := s.Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i-1] >= entries[i] {
			return fmt.Errorf("%w: elements out of order at index %d", ErrVerifyFailed, i)
		}
	}

	for _, e := range entries {
		if !s.Contains(e) {
			return fmt.Errorf("%w: lost element %d", ErrVerifyFailed, e)
		}
	}

	*size = s.Size()

	return nil
}
