package demo

import (
	"context"
	"io"

	"github.com/dmcfalls/CSet/closer"
	"github.com/dmcfalls/CSet/cset"
	"github.com/dmcfalls/CSet/logger"
	"github.com/dmcfalls/CSet/should"
)

// runAlgebra works through the classic set operations: the subset
// relation on one fixture pair, then union, intersection and the
// differences on another.
func runAlgebra(ctx context.Context, cfg Config, out io.Writer) error {
	log := logger.Get(ctx)
	p := &printer{w: out}

	small := newIntSet(len(cfg.Fixtures.Subset))
	defer should.Close(small, "destroying the subset fixture")

	small.AddAll(cfg.Fixtures.Subset...)

	big := newIntSet(len(cfg.Fixtures.Superset))
	defer should.Close(big, "destroying the superset fixture")

	big.AddAll(cfg.Fixtures.Superset...)

	p.printf("set1: %s\n", small)
	p.printf("set2: %s\n", big)
	p.printf("set1 subset of set2: %t\n", small.IsSubsetOf(big))
	p.printf("set2 subset of set1: %t\n", big.IsSubsetOf(small))

	left := newIntSet(len(cfg.Fixtures.Left))
	defer should.Close(left, "destroying the left operand")

	left.AddAll(cfg.Fixtures.Left...)

	right := newIntSet(len(cfg.Fixtures.Right))
	defer should.Close(right, "destroying the right operand")

	right.AddAll(cfg.Fixtures.Right...)

	p.printf("\nleft:  %s\n", left)
	p.printf("right: %s\n", right)

	// The derived sets all tear down through one collector.
	derived := closer.NewCloser()
	defer should.Close(derived, "destroying the derived sets")

	union := cset.Union(left, right)
	derived.Add(union)

	p.printf("union: %s\n", union)

	both := cset.Intersect(left, right)
	derived.Add(both)

	p.printf("intersection: %s\n", both)

	onlyLeft := cset.Difference(left, right)
	derived.Add(onlyLeft)

	onlyRight := cset.Difference(right, left)
	derived.Add(onlyRight)

	sym := cset.SymmetricDifference(left, right)
	derived.Add(sym)

	p.printf("left - right: %s\n", onlyLeft)
	p.printf("right - left: %s\n", onlyRight)
	p.printf("symmetric difference: %s\n", sym)

	log.Info("algebra finished",
		"union", union.Size(),
		"intersection", both.Size(),
		"symmetric", sym.Size())

	return p.err
}
