// Package filter provides predicates that decide whether a parsed value is
// admitted for aggregation.
package filter

// Filter decides whether a value is admitted.
// Implementations must not modify the value.
type Filter[T any] interface {
	Match(value T) bool
}

// Func adapts an ordinary function to a Filter.
type Func[T any] func(value T) bool

// Match calls f(value).
func (f Func[T]) Match(value T) bool {
	return f(value)
}

// All reports whether value matches every filter in chain, stopping at the
// first rejection. An empty or nil chain matches everything.
func All[T any](chain []Filter[T], value T) bool {
	for _, f := range chain {
		if !f.Match(value) {
			return false
		}
	}
	return true
}
