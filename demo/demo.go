// Package demo contains runnable demonstrations of the cset container:
// basic build-and-teardown, nested and heterogeneous sets, set algebra,
// power sets, and concurrent use of independent sets.
//
// Each scenario writes its transcript to an io.Writer and reports
// progress through the context logger, so the harness works the same
// interactively and under test.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dmcfalls/CSet/cli"
	"github.com/dmcfalls/CSet/compare"
	"github.com/dmcfalls/CSet/cset"
	cseterrors "github.com/dmcfalls/CSet/errors"
	"github.com/dmcfalls/CSet/logger"
)

// ErrUnknownScenario is returned by Select for names matching no scenario.
var ErrUnknownScenario = errors.New("unknown scenario")

// A Scenario is one self-contained demonstration.
type Scenario struct {
	Name        string
	Description string

	run func(ctx context.Context, cfg Config, out io.Writer) error
}

// Config carries the inputs scenarios draw from.
type Config struct {
	// Fixtures supplies the element lists the scenarios build sets from.
	Fixtures Fixtures

	// ParallelSets is how many sets the parallel scenario builds.
	// Zero means the default.
	ParallelSets int
}

// Scenarios returns every demonstration, in presentation order.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:        "basic",
			Description: "building, probing and clearing a set of ints",
			run:         runBasic,
		},
		{
			Name:        "nested",
			Description: "sets inside sets, including mixed element types",
			run:         runNested,
		},
		{
			Name:        "algebra",
			Description: "subset tests, union, intersection and differences",
			run:         runAlgebra,
		},
		{
			Name:        "power",
			Description: "power sets, from eight subsets to 128",
			run:         runPower,
		},
		{
			Name:        "parallel",
			Description: "many independent sets built concurrently",
			run:         runParallel,
		},
	}
}

// Names returns the scenario names in presentation order.
func Names() []string {
	scenarios := Scenarios()
	names := make([]string, 0, len(scenarios))

	for _, s := range scenarios {
		names = append(names, s.Name)
	}

	return names
}

// Select resolves names to scenarios, in presentation order regardless
// of argument order. Duplicates collapse. No names selects everything.
func Select(names ...string) ([]Scenario, error) {
	all := Scenarios()
	if len(names) == 0 {
		return all, nil
	}

	wanted := cset.New(compare.Ordered[string](),
		cset.WithCapacity[string](len(names)+1))
	defer wanted.Destroy()

	wanted.AddAll(names...)

	var selected []Scenario

	for _, s := range all {
		if wanted.Remove(s.Name) {
			selected = append(selected, s)
		}
	}

	// Anything still in the set matched no scenario.
	if !wanted.IsEmpty() {
		return nil, fmt.Errorf("%w: %s",
			ErrUnknownScenario, strings.Join(wanted.Entries(), ", "))
	}

	return selected, nil
}

// Run executes the scenario and logs its lifecycle.
func (s Scenario) Run(ctx context.Context, cfg Config, out io.Writer) error {
	log := logger.Get(ctx).With("scenario", s.Name)

	started := time.Now()
	log.Info("scenario starting")

	if err := s.run(ctx, cfg, out); err != nil {
		return logger.AnnotateError(
			fmt.Errorf("scenario %s: %w", s.Name, err), "scenario", s.Name)
	}

	log.Info("scenario finished", "elapsed", time.Since(started))

	return nil
}

// RunAll executes the given scenarios in order, each under a banner
// heading. A failing scenario does not stop the ones after it; all
// failures are combined into the returned error.
func RunAll(ctx context.Context, scenarios []Scenario, cfg Config, out io.Writer) error {
	var errs cseterrors.Collection

	for _, s := range scenarios {
		if err := ctx.Err(); err != nil {
			errs.Add(err)

			break
		}

		heading := cli.Banner(s.Name+": "+s.Description,
			cli.DefaultTerminalWidth, cli.AlignCenter)

		if _, err := fmt.Fprintln(out, heading); err != nil {
			errs.Add(err)

			break
		}

		errs.Add(s.Run(ctx, cfg, out))
	}

	return errs.GetError()
}

// printer wraps a writer with the sticky-error idiom, letting scenarios
// print transcript lines without an error check at every line.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintln(p.w, args...)
}

// newIntSet builds an int set with the demo's rendering hook.
func newIntSet(hint int) *cset.Set[int] {
	return cset.New(compare.Ordered[int](),
		cset.WithCapacity[int](hint),
		cset.WithFormat(strconv.Itoa))
}

// newWordSet builds a string set with the demo's rendering hook.
func newWordSet(hint int) *cset.Set[string] {
	return cset.New(compare.Ordered[string](),
		cset.WithCapacity[string](hint),
		cset.WithFormat(func(s string) string { return s }))
}

// newHandleSet builds a set that holds other sets, of any element type.
func newHandleSet(hint int) *cset.Set[cset.Handle] {
	return cset.New(cset.CompareHandles,
		cset.WithCapacity[cset.Handle](hint),
		cset.WithDispose(cset.DisposeHandle),
		cset.WithFormat(cset.FormatHandle))
}
