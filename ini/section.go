// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import "sort"

// entries is an insertion-ordered string map. It holds the entries of a
// Section and the attributes of its header.
type entries struct {
	keys   []string
	values map[string]string
}

// Put stores value under key. The key is trimmed and its whitespace runs
// are replaced with hyphens before storing, so Put("My Key", v) stores
// "My-Key". Lookups do not normalize: use the stored form to read it back.
// Put returns the previous value, if any. A blank key is ignored.
func (e *entries) Put(key, value string) (prev string, ok bool) {
	key = normalizeName(key)
	if key == "" {
		return "", false
	}
	if e.values == nil {
		e.values = make(map[string]string)
	}
	prev, ok = e.values[key]
	if !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
	return prev, ok
}

// PutAll calls Put for every pair in m. Keys are added in sorted order.
func (e *entries) PutAll(m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e.Put(k, m[k])
	}
}

// Get returns the value stored under key.
func (e *entries) Get(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// GetOrDefault returns the value stored under key or def if there is none.
func (e *entries) GetOrDefault(key, def string) string {
	if v, ok := e.values[key]; ok {
		return v
	}
	return def
}

// ContainsKey reports whether a value is stored under key.
func (e *entries) ContainsKey(key string) bool {
	_, ok := e.values[key]
	return ok
}

// Remove deletes key and returns the value it held.
func (e *entries) Remove(key string) (string, bool) {
	v, ok := e.values[key]
	if !ok {
		return "", false
	}
	delete(e.values, key)
	for i, k := range e.keys {
		if k == key {
			copy(e.keys[i:], e.keys[i+1:])
			e.keys[len(e.keys)-1] = ""
			e.keys = e.keys[:len(e.keys)-1]
			break
		}
	}
	return v, true
}

// Clear removes every key.
func (e *entries) Clear() {
	e.keys = nil
	e.values = nil
}

// Len returns the number of keys.
func (e *entries) Len() int { return len(e.keys) }

// IsEmpty reports whether there are no keys.
func (e *entries) IsEmpty() bool { return len(e.keys) == 0 }

// Keys returns the keys in insertion order.
func (e *entries) Keys() []string {
	return append([]string(nil), e.keys...)
}

// Map returns a copy of the stored pairs.
func (e *entries) Map() map[string]string {
	m := make(map[string]string, len(e.values))
	for k, v := range e.values {
		m[k] = v
	}
	return m
}

// GetAsNumber returns the value under key as a number. ok is false if the
// key is missing or the value is not numeric.
func (e *entries) GetAsNumber(key string) (Number, bool) {
	v, ok := e.Get(key)
	if !ok {
		return 0, false
	}
	return ParseNumber(v)
}

// GetAsBoolean returns the value under key as a boolean, as interpreted by
// ParseBool. ok is false if the key is missing or not a boolean.
func (e *entries) GetAsBoolean(key string) (value bool, ok bool) {
	v, ok := e.Get(key)
	if !ok {
		return false, false
	}
	return ParseBool(v)
}

// GetAsList splits the value under key with SplitList. A missing key
// yields an empty list.
func (e *entries) GetAsList(key, sep string) []string {
	v, ok := e.Get(key)
	if !ok {
		return []string{}
	}
	return SplitList(v, sep)
}

// GetAsSet splits the value under key with SplitSet. A missing key yields
// an empty set.
func (e *entries) GetAsSet(key, sep string) map[string]struct{} {
	v, ok := e.Get(key)
	if !ok {
		return map[string]struct{}{}
	}
	return SplitSet(v, sep)
}

// Attributes holds the key/value pairs written inside a section header,
// as in [name key="value" count=5]. It supports the same operations as a
// section's entries.
type Attributes struct {
	entries
}

// A Section is a named group of entries. A section may carry attributes
// and the name of another section to fall back to.
type Section struct {
	entries
	name        string
	attrs       *Attributes
	defaultName string
	hasDefault  bool
}

// NewSection returns an empty section. The name is trimmed and its
// whitespace runs are replaced with hyphens.
func NewSection(name string) *Section {
	return &Section{name: normalizeName(name)}
}

// Name returns the normalized section name.
func (s *Section) Name() string { return s.name }

// SetName renames the section. Renaming a section that belongs to a
// Document does not re-key it there.
func (s *Section) SetName(name string) { s.name = normalizeName(name) }

// DefaultSection returns the name of the section s falls back to.
// Section lookups never consult it; see Document.Lookup.
func (s *Section) DefaultSection() (name string, ok bool) {
	return s.defaultName, s.hasDefault
}

// SetDefaultSection sets the name of the section s falls back to and
// returns the previous one.
func (s *Section) SetDefaultSection(name string) (prev string, ok bool) {
	prev, ok = s.defaultName, s.hasDefault
	s.defaultName, s.hasDefault = name, true
	return prev, ok
}

// ClearDefaultSection removes the fallback reference.
func (s *Section) ClearDefaultSection() {
	s.defaultName, s.hasDefault = "", false
}

// Attributes returns the section's attributes, allocating them if needed.
func (s *Section) Attributes() *Attributes {
	if s.attrs == nil {
		s.attrs = new(Attributes)
	}
	return s.attrs
}

// HasAttributes reports whether the section has at least one attribute.
func (s *Section) HasAttributes() bool {
	return s.attrs != nil && !s.attrs.IsEmpty()
}

// SetAttribute stores an attribute and returns the previous value.
func (s *Section) SetAttribute(key, value string) (prev string, ok bool) {
	return s.Attributes().Put(key, value)
}

// SetAttributes replaces all attributes with a. A nil a clears them.
func (s *Section) SetAttributes(a *Attributes) {
	s.attrs = a
}

// PutAttributes stores every pair of m as an attribute.
func (s *Section) PutAttributes(m map[string]string) {
	s.Attributes().PutAll(m)
}

// RemoveAttribute deletes an attribute and returns its value.
func (s *Section) RemoveAttribute(key string) (string, bool) {
	if s.attrs == nil {
		return "", false
	}
	return s.attrs.Remove(key)
}

// ClearAttributes removes every attribute.
func (s *Section) ClearAttributes() {
	if s.attrs != nil {
		s.attrs.Clear()
	}
}
