package models

// DriverSet is a set of unique driver names.
// Names iterate in the order they were first added.
type DriverSet struct {
	names []string
	index map[string]struct{}
}

// NewDriverSet returns a set holding the given names.
func NewDriverSet(names ...string) *DriverSet {
	s := &DriverSet{index: make(map[string]struct{}, len(names))}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name and reports whether it was not already present.
func (s *DriverSet) Add(name string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[name]; ok {
		return false
	}
	s.index[name] = struct{}{}
	s.names = append(s.names, name)
	return true
}

// Contains reports whether name is in the set. A nil set contains nothing.
func (s *DriverSet) Contains(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

// Len returns the number of names in the set.
func (s *DriverSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns a copy of the names in insertion order.
func (s *DriverSet) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
