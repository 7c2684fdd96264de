package analysis

import (
	"cmp"
	"iter"
	"slices"
)

// Ordered is a map that remembers the order in which keys were first inserted.
type Ordered[K comparable, V any] struct {
	keys []K
	vals map[K]V
}

// Keys returns the keys in first-insertion order.
func (o *Ordered[K, V]) Keys() []K {
	return slices.Clone(o.keys)
}

func (o *Ordered[K, V]) Get(k K) (V, bool) {
	v, ok := o.vals[k]
	return v, ok
}

func (o *Ordered[K, V]) Len() int { return len(o.keys) }

// All iterates entries in first-insertion order.
func (o *Ordered[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range o.keys {
			if !yield(k, o.vals[k]) {
				return
			}
		}
	}
}

// Accumulate folds each item into the accumulator of its key. Accumulators
// start at the zero value of A.
func Accumulate[K comparable, T, A any](items []T, key func(T) K, add func(A, T) A) *Ordered[K, A] {
	o := &Ordered[K, A]{vals: make(map[K]A)}
	for _, item := range items {
		k := key(item)
		acc, seen := o.vals[k]
		if !seen {
			o.keys = append(o.keys, k)
		}
		o.vals[k] = add(acc, item)
	}
	return o
}

// GroupBy partitions items by key. Every item lands in exactly one group and
// keeps its relative order.
func GroupBy[K comparable, T any](items []T, key func(T) K) *Ordered[K, []T] {
	return Accumulate(items, key, func(group []T, item T) []T {
		return append(group, item)
	})
}

// SortedKeys returns the keys of o in ascending order.
func SortedKeys[K cmp.Ordered, V any](o *Ordered[K, V]) []K {
	keys := o.Keys()
	slices.Sort(keys)
	return keys
}
