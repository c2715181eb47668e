package core

// Source yields work items one at a time. Implementations are not safe for
// concurrent use; the pipeline is the single consumer.
type Source interface {
	Next() (WorkItem, bool)
}

// Names returns a Source over a flat list of raw full names.
func Names(names []string) Source {
	return &listSource{names: names}
}

type listSource struct {
	names []string
	pos   int
}

func (s *listSource) Next() (WorkItem, bool) {
	if s.pos >= len(s.names) {
		return WorkItem{}, false
	}
	item := WorkItem{Raw: s.names[s.pos]}
	s.pos++
	return item, true
}

// Product returns the lazy cross product of two name lists. It yields
// len(first)*len(last) pairs in row-major order while holding only cursor
// state, so arbitrarily large combinations never materialize in memory.
func Product(first, last []string) Source {
	return &productSource{first: first, last: last}
}

type productSource struct {
	first []string
	last  []string
	i, j  int
}

func (s *productSource) Next() (WorkItem, bool) {
	if len(s.last) == 0 || s.i >= len(s.first) {
		return WorkItem{}, false
	}
	item := WorkItem{First: s.first[s.i], Last: s.last[s.j]}
	s.j++
	if s.j >= len(s.last) {
		s.j = 0
		s.i++
	}
	return item, true
}
