// Copyright (C) 2025 Signpost-Go Project
//
// This file is part of signpost-go.
//
// signpost-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// signpost-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with signpost-go.  If not, see <https://www.gnu.org/licenses/>.

package parameters

// Store is a mutable, ordered multimap of parameter name to string values.
//
// Names iterate in first-insertion order, and the values recorded under a
// name keep their append order. Iteration order is deterministic so that
// downstream consumers (diagnostics, header assembly) see parameters in a
// stable sequence; the lexicographic ordering required by the OAuth
// signature base string is applied by the message signer, not here.
//
// A Store is not safe for concurrent use.
type Store struct {
	names  []string
	values map[string][]string
}

// New creates an empty parameter store.
func New() *Store {
	return &Store{
		values: make(map[string][]string),
	}
}

// Put records value under name.
//
// When overwrite is true, any existing values for name are replaced.
// When overwrite is false, an existing value is preserved and the new value
// is appended as an additional value for the same name; nothing is ever
// silently dropped.
func (s *Store) Put(name, value string, overwrite bool) {
	existing, ok := s.values[name]
	if !ok {
		s.names = append(s.names, name)
		s.values[name] = []string{value}
		return
	}

	if overwrite {
		s.values[name] = []string{value}
		return
	}

	s.values[name] = append(existing, value)
}

// PutAll merges every entry of src, preserving src's internal ordering
// (names in insertion order, values in append order).
//
// When overwrite is true, the destination's values for a name are replaced
// by src's complete value set for that name, so multi-valued entries survive
// the merge intact. When overwrite is false, src's values are appended after
// any existing ones.
func (s *Store) PutAll(src *Store, overwrite bool) {
	if src == nil {
		return
	}
	for _, name := range src.names {
		srcValues := src.values[name]
		if !overwrite {
			for _, value := range srcValues {
				s.Put(name, value, false)
			}
			continue
		}
		if _, ok := s.values[name]; !ok {
			s.names = append(s.names, name)
		}
		s.values[name] = append([]string(nil), srcValues...)
	}
}

// ContainsKey reports whether name has at least one value.
func (s *Store) ContainsKey(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Remove deletes all values for name. Removing an absent name is a no-op.
func (s *Store) Remove(name string) {
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

// First returns the first value recorded under name, or the empty string
// when name is absent.
func (s *Store) First(name string) string {
	values := s.values[name]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Values returns a copy of all values recorded under name, in append order.
func (s *Store) Values(name string) []string {
	values := s.values[name]
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// Names returns the parameter names in first-insertion order.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of distinct parameter names.
func (s *Store) Len() int {
	return len(s.names)
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	clone := New()
	clone.PutAll(s, false)
	return clone
}
