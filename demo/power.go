package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/dmcfalls/CSet/cset"
	"github.com/dmcfalls/CSet/logger"
	"github.com/dmcfalls/CSet/should"
)

// runPower prints every member of a small power set, then sizes up a
// larger one without printing all of it.
func runPower(ctx context.Context, cfg Config, out io.Writer) error {
	log := logger.Get(ctx)
	p := &printer{w: out}

	small := newIntSet(len(cfg.Fixtures.Power) + 1)
	defer should.Close(small, "destroying the small power-set base")

	small.AddAll(cfg.Fixtures.Power...)

	power, err := powerSetOf(small)
	if err != nil {
		return err
	}
	defer should.Close(power, "destroying the small power set")

	p.printf("base set: %s\n", small)
	p.printf("its power set has %d members:\n", power.Size())
	p.println(power)

	large := newIntSet(len(cfg.Fixtures.Subset) + 1)
	defer should.Close(large, "destroying the large power-set base")

	large.AddAll(cfg.Fixtures.Subset...)

	bigPower, err := powerSetOf(large)
	if err != nil {
		return err
	}
	defer should.Close(bigPower, "destroying the large power set")

	p.printf("a %d-element set's power set has %d members\n",
		large.Size(), bigPower.Size())

	log.Info("power sets built", "small", power.Size(), "large", bigPower.Size())

	return p.err
}

// powerSetOf guards the cardinality ceiling, so an oversized fixture
// list fails with an error instead of a contract panic.
func powerSetOf(s *cset.Set[int]) (*cset.Set[*cset.Set[int]], error) {
	if s.Size() > cset.MaxPowerSetCardinality {
		return nil, fmt.Errorf("%w: %d elements, the power-set limit is %d",
			ErrFixtureTooLarge, s.Size(), cset.MaxPowerSetCardinality)
	}

	return cset.PowerSet(s), nil
}
