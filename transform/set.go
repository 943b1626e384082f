package transform

import "github.com/teranos/nativegen/decl"

// Set is an insertion-ordered Element -> Transform map. Overwriting an
// element keeps its original position.
type Set struct {
	order []decl.Element
	m     map[decl.Element]Transform
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{m: make(map[decl.Element]Transform)}
}

// Put sets the transform of e, replacing any previous one.
func (s *Set) Put(e decl.Element, t Transform) {
	if _, ok := s.m[e]; !ok {
		s.order = append(s.order, e)
	}
	s.m[e] = t
}

// Get returns the transform of e, or nil.
func (s *Set) Get(e decl.Element) Transform {
	return s.m[e]
}

// Has reports whether e has a transform.
func (s *Set) Has(e decl.Element) bool {
	_, ok := s.m[e]
	return ok
}

// Remove deletes the transform of e.
func (s *Set) Remove(e decl.Element) {
	if _, ok := s.m[e]; !ok {
		return
	}
	delete(s.m, e)
	for i, o := range s.order {
		if o == e {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of transforms.
func (s *Set) Len() int { return len(s.order) }

// Elements returns the transformed elements in insertion order.
func (s *Set) Elements() []decl.Element {
	return append([]decl.Element(nil), s.order...)
}

// Each calls fn for every entry in insertion order.
func (s *Set) Each(fn func(decl.Element, Transform)) {
	for _, e := range s.order {
		fn(e, s.m[e])
	}
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	c := &Set{order: append([]decl.Element(nil), s.order...), m: make(map[decl.Element]Transform, len(s.m))}
	for k, v := range s.m {
		c.m[k] = v
	}
	return c
}
