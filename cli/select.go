// Package cli provides small interactive terminal helpers for the demo
// binary: prompts, a multi-select picker and banner rendering.
package cli

import (
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/dmcfalls/CSet/compare"
	"github.com/dmcfalls/CSet/cset"
)

const doneItem = "[Done]"

// MultiSelect repeatedly shows a picker for the given choices until the
// user selects the done sentinel or no choices remain. Already-selected
// choices disappear from subsequent rounds. The selections are returned
// in the order the caller listed them, not the order they were picked.
func MultiSelect(label string, choices ...string) ([]string, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	remaining := cset.New(compare.Natural(),
		cset.WithCapacity[string](len(choices)+1))
	defer remaining.Destroy()

	remaining.AddAll(choices...)

	selections := cset.New(compare.Natural(),
		cset.WithCapacity[string](len(choices)+1))
	defer selections.Destroy()

	names := append([]string{doneItem}, remaining.Entries()...)

again:
	sel := &promptui.Select{
		Label: label,
		Items: names,
		Searcher: func(input string, index int) bool {
			if index == 0 {
				return false
			}

			if len(input) == 0 {
				return false
			}

			return strings.HasPrefix(names[index], input)
		},
	}

	idx, value, err := sel.Run()
	if err != nil {
		return nil, err
	}

	if idx != 0 {
		selections.Add(value)
		remaining.Remove(value)

		if !remaining.IsEmpty() {
			names = append([]string{doneItem}, remaining.Entries()...)

			goto again
		}
	}

	var selected []string

	for _, c := range choices {
		if selections.Contains(c) {
			selected = append(selected, c)
		}
	}

	return selected, nil
}
