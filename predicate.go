package mpath

// PredicateFunc adapts a function to a Predicate.
type PredicateFunc[T any] func(T) bool

func (f PredicateFunc[T]) Match(v T) bool {
	return f(v)
}

// And combines predicates conjunctively. And() matches everything.
func And[T any](ps ...Predicate[T]) Predicate[T] {
	return andPred[T](ps)
}

type andPred[T any] []Predicate[T]

func (a andPred[T]) Match(v T) bool {
	for _, p := range a {
		if !p.Match(v) {
			return false
		}
	}
	return true
}

// Or combines predicates disjunctively. Or() matches nothing.
func Or[T any](ps ...Predicate[T]) Predicate[T] {
	return orPred[T](ps)
}

type orPred[T any] []Predicate[T]

func (o orPred[T]) Match(v T) bool {
	for _, p := range o {
		if p.Match(v) {
			return true
		}
	}
	return false
}

// Not inverts a predicate.
func Not[T any](p Predicate[T]) Predicate[T] {
	return notPred[T]{p}
}

type notPred[T any] struct{ p Predicate[T] }

func (n notPred[T]) Match(v T) bool {
	return !n.p.Match(v)
}
