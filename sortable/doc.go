// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use in ordered containers.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides
// ready-to-use implementations for common primitive types: [Int], [Byte],
// and [String]. The interface extends
// [github.com/dmcfalls/CSet/compare.Comparable] by adding a LessThan method,
// providing both equality comparison and ordering.
//
// [Compare] bridges the method-based contract to the function-based ordering
// used by [github.com/dmcfalls/CSet/cset]: it derives a
// [github.com/dmcfalls/CSet/compare.Func] from any Sortable type.
//
// # Usage
//
// Use the provided wrapper types with an ordered set:
//
//	ints := cset.New[sortable.Int](sortable.Compare[sortable.Int]())
//	ints.Add(sortable.Int(42))
//	ints.Add(sortable.Int(10))
//	ints.Add(sortable.Int(25))
//
//	// Elements are stored in sorted order: 10, 25, 42
//	for val := range ints.All() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// Equals and LessThan must agree: Equals(a, b) should hold exactly when
// neither a.LessThan(b) nor b.LessThan(a) does. Compare relies on that
// agreement when it derives the three-way ordering.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently
// thread-safe for read operations. Containers built over them may not be
// thread-safe and require external synchronization for concurrent access.
package sortable
