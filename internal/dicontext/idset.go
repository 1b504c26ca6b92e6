package dicontext

import "github.com/google/uuid"

// idSet is an insertion-ordered set of context identities.
type idSet struct {
	ids     []uuid.UUID
	members map[uuid.UUID]struct{}
}

func newIDSet() *idSet {
	return &idSet{members: make(map[uuid.UUID]struct{})}
}

func (s *idSet) add(id uuid.UUID) bool {
	if _, ok := s.members[id]; ok {
		return false
	}
	s.members[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

func (s *idSet) remove(id uuid.UUID) bool {
	if _, ok := s.members[id]; !ok {
		return false
	}
	delete(s.members, id)
	for i, cur := range s.ids {
		if cur == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return true
}

func (s *idSet) has(id uuid.UUID) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[id]
	return ok
}

func (s *idSet) len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// items returns a copy so callers may mutate the set while iterating.
func (s *idSet) items() []uuid.UUID {
	if s == nil {
		return nil
	}
	out := make([]uuid.UUID, len(s.ids))
	copy(out, s.ids)
	return out
}

// ignoreSet accumulates the contexts a query has already climbed out of.
type ignoreSet map[uuid.UUID]struct{}

func (s ignoreSet) add(id uuid.UUID) { s[id] = struct{}{} }

func (s ignoreSet) has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}
