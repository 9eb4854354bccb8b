// Package ivtree implements a generic, in-memory interval container: an
// augmented red-black tree that stores half-open or closed intervals over
// any totally ordered endpoint type and answers overlap queries in time
// proportional to the tree height plus the number of results.
//
// The implementation follows Cormen, Leiserson, Rivest and Stein,
// "Introduction to Algorithms" (3rd ed.), Section 13 (red-black trees) and
// Section 14.3 (interval trees): every node additionally stores the maximum
// high endpoint of its subtree, which lets Find prune entire branches that
// cannot possibly overlap the query.
package ivtree

import "cmp"

// Endpoint is the constraint satisfied by the endpoint type of an interval.
// Any type with a total order works: integers, floats, time.Time via a
// thin wrapper, strings, and so on.
type Endpoint interface {
	cmp.Ordered
}

// Interval is the default accessor contract. A value type V participates
// in a Tree[V, E] without an explicit Accessor by implementing Low and
// High; this is the Go rendering of "read the public low/high fields" -
// Go generics have no reflection-free field access, so a method pair is
// the idiomatic stand-in.
type Interval[E Endpoint] interface {
	Low() E
	High() E
}

// Accessor reads the low and high endpoints out of a value of type V. It is
// the second enumerated configuration option: supply one explicitly when V
// is a type you don't own, or whose natural accessors aren't named Low/High.
type Accessor[V any, E Endpoint] struct {
	Low  func(V) E
	High func(V) E
}

// accessorOf builds the default Accessor for a V that implements Interval[E].
func accessorOf[V Interval[E], E Endpoint]() Accessor[V, E] {
	return Accessor[V, E]{
		Low:  func(v V) E { return v.Low() },
		High: func(v V) E { return v.High() },
	}
}

// overlaps reports whether [a, b] overlaps [lo, hi], both closed intervals.
func overlaps[E Endpoint](a, b, lo, hi E) bool {
	return a <= hi && lo <= b
}
