package loxt

// interner assigns dense ids to identifier spellings in first-seen order.
type interner struct {
	ids   map[string]uint32
	names []string
}

func newInterner() interner {
	return interner{ids: make(map[string]uint32)}
}

// intern returns the id of spelling, allocating the next one if the
// spelling has not been seen before.
func (in *interner) intern(spelling []byte) uint32 {
	if id, ok := in.ids[string(spelling)]; ok {
		return id
	}
	id := uint32(len(in.names))
	name := string(spelling)
	in.ids[name] = id
	in.names = append(in.names, name)
	return id
}

func (in *interner) spelling(id uint32) string { return in.names[id] }

func (in *interner) len() int { return len(in.names) }

// literalStore is an append-only table of decoded literal values.
type literalStore[T any] struct {
	values []T
}

func (s *literalStore[T]) add(v T) uint32 {
	s.values = append(s.values, v)
	return uint32(len(s.values) - 1)
}

func (s *literalStore[T]) at(id uint32) T { return s.values[id] }

func (s *literalStore[T]) len() int { return len(s.values) }
