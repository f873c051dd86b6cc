package entities

import "cmp"

// Extremum tracks the best value seen so far and the date it was observed.
// An empty Extremum behaves as -inf (max-seeking) or +inf (min-seeking).
type Extremum[T cmp.Ordered] struct {
	value  T
	date   string
	found  bool
	better func(candidate, current T) bool
}

func NewMaxExtremum[T cmp.Ordered]() *Extremum[T] {
	return &Extremum[T]{better: func(c, cur T) bool { return c > cur }}
}

func NewMinExtremum[T cmp.Ordered]() *Extremum[T] {
	return &Extremum[T]{better: func(c, cur T) bool { return c < cur }}
}

// Offer replaces the held value only on strict improvement and reports whether it did.
func (e *Extremum[T]) Offer(value T, date string) bool {
	if e.found && !e.better(value, e.value) {
		return false
	}
	e.value = value
	e.date = date
	e.found = true
	return true
}

func (e *Extremum[T]) Value() T     { return e.value }
func (e *Extremum[T]) Date() string { return e.date }
func (e *Extremum[T]) Found() bool  { return e.found }
