package cset

import (
	"fmt"
	"strings"

	"github.com/dmcfalls/CSet/optional"
)

// placeholder stands in for sets that cannot render themselves because no
// format hook was supplied.
const placeholder = "{...}"

var _ fmt.Stringer = (*Set[int])(nil)

// Format renders the set as "{e1, e2, ..., en}" with elements in ascending
// order, each rendered by the format hook. Returns no value when the set
// has no format hook (or is nil). The output grows with the set; deeply
// nested sets and power sets render in full.
func (s *Set[T]) Format() optional.Value[string] {
	if s == nil || s.format == nil {
		return optional.None[string]()
	}

	var b strings.Builder

	b.WriteByte('{')

	for i, elem := range s.elems {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(s.format(elem))
	}

	b.WriteByte('}')

	return optional.Some(b.String())
}

// String renders the set via Format, falling back to a fixed placeholder
// when no format hook was supplied. It makes every set printable with the
// fmt verbs.
func (s *Set[T]) String() string {
	return s.Format().GetOrElse(placeholder)
}
