package puzzle

// Seen is the set of keys discovered during one solve call.
// The zero value is not usable; construct with NewSeen.
// Seen is not safe for concurrent use.
type Seen[K comparable] struct {
	keys map[K]struct{}
}

// NewSeen returns an empty visited set.
func NewSeen[K comparable]() *Seen[K] {
	return &Seen[K]{keys: make(map[K]struct{})}
}

// Add inserts k and reports whether it was absent.
// A false return means the configuration was already discovered and must
// not be yielded again.
func (s *Seen[K]) Add(k K) bool {
	if _, ok := s.keys[k]; ok {
		return false
	}
	s.keys[k] = struct{}{}

	return true
}

// Has reports whether k has been discovered.
func (s *Seen[K]) Has(k K) bool {
	_, ok := s.keys[k]

	return ok
}

// Len returns the number of discovered keys.
func (s *Seen[K]) Len() int {
	return len(s.keys)
}
