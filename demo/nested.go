package demo

import (
	"context"
	"io"

	"github.com/dmcfalls/CSet/cset"
	"github.com/dmcfalls/CSet/logger"
	"github.com/dmcfalls/CSet/should"
)

const chainDepth = 5

// runNested shows sets as elements of other sets: first a chain of
// nested sets one level deeper each time, then a set holding an int set
// and a string set side by side.
func runNested(ctx context.Context, cfg Config, out io.Writer) error {
	log := logger.Get(ctx)
	p := &printer{w: out}

	p.println("a chain of nested sets, one level deeper each time")

	chains := newHandleSet(1)
	defer should.Close(chains, "destroying the chain set")

	for depth := range chainDepth {
		chains.Add(nestedChain(depth))
		p.println(chains)
	}

	log.Info("chains built", "depth", chainDepth)

	p.println("a set holding an int set and a string set side by side")

	numbers := newIntSet(len(cfg.Fixtures.Mixed))
	numbers.AddAll(cfg.Fixtures.Mixed...)

	words := newWordSet(len(cfg.Fixtures.Words))
	words.AddAll(cfg.Fixtures.Words...)

	p.printf("a set of ints: %s\n", numbers)
	p.printf("a set of strings: %s\n", words)

	// The mixed set owns its members from here on; destroying it tears
	// both down.
	mixed := newHandleSet(2)
	defer should.Close(mixed, "destroying the mixed set")

	mixed.Add(words)
	mixed.Add(numbers)

	p.printf("both together: %s\n", mixed)

	return p.err
}

// nestedChain builds a set nested depth levels deep, each level holding
// just the next one.
func nestedChain(depth int) *cset.Set[cset.Handle] {
	s := newHandleSet(1)

	if depth > 0 {
		s.Add(nestedChain(depth - 1))
	}

	return s
}
