package demo

import (
	"context"
	"io"

	"github.com/dmcfalls/CSet/logger"
	"github.com/dmcfalls/CSet/should"
)

// The original capacity hint is deliberately smaller than the element
// count, so the transcript shows the buffer growing mid-run.
const basicHint = 10

// runBasic follows one int set through its whole life: growth from a
// small capacity hint, membership checks, element-by-element removal,
// a refill and a final sweep.
func runBasic(ctx context.Context, cfg Config, out io.Writer) error {
	log := logger.Get(ctx)
	p := &printer{w: out}

	values := cfg.Fixtures.Basic

	p.println("creating an int set")

	numbers := newIntSet(basicHint)
	defer should.Close(numbers, "destroying the basic demo set")

	p.println(numbers)

	p.println("adding elements one by one")

	for _, v := range values {
		numbers.Add(v)
		p.println(numbers)
	}

	log.Info("demo set built", "size", numbers.Size(), "capacity", numbers.Cap())

	p.printf("isEmpty: %t\n", numbers.IsEmpty())
	p.printf("size: %d\n", numbers.Size())

	p.println("removing elements in reverse insertion order")

	for i := len(values) - 1; i >= 0; i-- {
		numbers.Remove(values[i])
		p.println(numbers)
	}

	p.println("adding everything back, then clearing in one sweep")

	numbers.AddAll(values...)
	p.println(numbers)

	numbers.Clear()
	p.println(numbers)

	return p.err
}
