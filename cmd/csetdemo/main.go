// Command csetdemo demonstrates the cset container: building and
// probing sets, nesting them, set algebra, power sets and concurrent
// use of independent sets. By default it runs every scenario against
// built-in fixtures.
//
// Usage:
//
//	csetdemo
//	csetdemo -scenarios basic,algebra
//	csetdemo -fixtures custom.yaml -parallel-sets 64
//	csetdemo -interactive
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/dmcfalls/CSet/cli"
	"github.com/dmcfalls/CSet/demo"
	"github.com/dmcfalls/CSet/script"
)

var (
	scenarioNames = flag.String("scenarios", "",
		"comma-separated scenario names to run (default all; see -list)")
	fixturesPath = flag.String("fixtures", "",
		"YAML file overriding the built-in fixtures")
	interactive = flag.Bool("interactive", false,
		"pick scenarios from a menu instead of flags")
	parallelSets = flag.Int("parallel-sets", 0,
		"how many sets the parallel scenario builds (0 means default)")
	list = flag.Bool("list", false,
		"list the scenarios and exit")
)

func main() {
	script.New("csetdemo").Run(run)
}

func run(ctx context.Context) error {
	if *list {
		for _, s := range demo.Scenarios() {
			fmt.Printf("%-10s %s\n", s.Name, s.Description)
		}

		return nil
	}

	cfg := demo.Config{
		Fixtures:     demo.DefaultFixtures(),
		ParallelSets: *parallelSets,
	}

	if *fixturesPath != "" {
		fixtures, err := demo.LoadFixtures(*fixturesPath)
		if err != nil {
			return script.ExitWithError(err)
		}

		cfg.Fixtures = fixtures
	}

	if *interactive {
		return runInteractive(ctx, cfg)
	}

	scenarios, err := demo.Select(splitNames(*scenarioNames)...)
	if err != nil {
		return script.ExitWithError(err)
	}

	if err := demo.RunAll(ctx, scenarios, cfg, os.Stdout); err != nil {
		return script.ExitWithError(err)
	}

	return nil
}

// runInteractive loops a menu of scenarios until the user declines to
// go again.
func runInteractive(ctx context.Context, cfg demo.Config) error {
	for {
		names, err := cli.MultiSelect("Scenarios to run", demo.Names()...)
		if err != nil {
			return script.ExitWithError(err)
		}

		if len(names) == 0 {
			return nil
		}

		scenarios, err := demo.Select(names...)
		if err != nil {
			return script.ExitWithError(err)
		}

		if cfg.ParallelSets == 0 && slices.Contains(names, "parallel") {
			count, err := cli.PromptInt("How many sets should the parallel scenario build")
			if err != nil {
				return script.ExitWithError(err)
			}

			cfg.ParallelSets = count
		}

		if err := demo.RunAll(ctx, scenarios, cfg, os.Stdout); err != nil {
			return script.ExitWithError(err)
		}

		again, err := cli.PromptConfirm("Run again")
		if err != nil {
			return script.ExitWithError(err)
		}

		if !again {
			return nil
		}
	}
}

// splitNames turns a comma-separated flag value into clean names.
func splitNames(raw string) []string {
	var names []string

	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	return names
}
