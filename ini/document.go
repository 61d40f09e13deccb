// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bytes"
	"context"
	"sort"
	"strings"
)

// DefaultName is the name of the section holding entries that appear
// before any section header.
const DefaultName = "Default"

// Options controls how documents are read and written. The zero value
// disables both features.
type Options struct {
	// Advanced enables section attributes: [name key="value" count=5].
	Advanced bool

	// Multiline enables continuation lines. A line that is not a comment,
	// header or entry is appended to the value of the last entry.
	Multiline bool
}

// A Document is a set of uniquely named sections plus a default section
// that always exists. The zero value is an empty document.
//
// A Document must not be loaded from multiple goroutines at once.
type Document struct {
	opts     Options
	def      *Section
	sections map[string]*Section
}

// New returns an empty document.
func New() *Document {
	d := new(Document)
	d.init()
	return d
}

func (d *Document) init() {
	if d.def == nil {
		d.def = NewSection(DefaultName)
	}
	if d.sections == nil {
		d.sections = make(map[string]*Section)
	}
}

// Options returns the options of the last Load, or those given to
// SetOptions. Store uses them.
func (d *Document) Options() Options { return d.opts }

// SetOptions replaces the document's options.
func (d *Document) SetOptions(opts Options) { d.opts = opts }

// DefaultSection returns the default section.
func (d *Document) DefaultSection() *Section {
	d.init()
	return d.def
}

// Len returns the number of sections, counting the default section.
func (d *Document) Len() int {
	return len(d.sections) + 1
}

// RealLen returns the number of sections besides the default section.
func (d *Document) RealLen() int {
	return len(d.sections)
}

// IsEmpty reports whether the document has no section besides the default.
func (d *Document) IsEmpty() bool {
	return len(d.sections) == 0
}

// SectionExists reports whether a section with the given name exists.
func (d *Document) SectionExists(name string) bool {
	_, ok := d.Section(name)
	return ok
}

// Section returns the section with exactly the given name.
func (d *Document) Section(name string) (*Section, bool) {
	d.init()
	if name == DefaultName {
		return d.def, true
	}
	s, ok := d.sections[name]
	return s, ok
}

// SectionOrDefault returns the section with the given name or the default
// section if there is none.
func (d *Document) SectionOrDefault(name string) *Section {
	if s, ok := d.Section(name); ok {
		return s
	}
	return d.def
}

// Sections returns every section: the default section first, then the
// others sorted by name.
func (d *Document) Sections() []*Section {
	d.init()
	list := make([]*Section, 0, d.Len())
	list = append(list, d.def)
	names := make([]string, 0, len(d.sections))
	for name := range d.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		list = append(list, d.sections[name])
	}
	return list
}

// Put adds s, replacing any section with the same name. A section named
// DefaultName replaces the default section.
func (d *Document) Put(s *Section) {
	d.init()
	if s.Name() == DefaultName {
		d.def = s
		return
	}
	d.sections[s.Name()] = s
}

// PutAll calls Put for each section.
func (d *Document) PutAll(sections ...*Section) {
	for _, s := range sections {
		d.Put(s)
	}
}

// Remove deletes the section with the given name. The default section
// cannot be removed; Remove(DefaultName) does nothing.
func (d *Document) Remove(name string) {
	name = strings.TrimSpace(name)
	if name == DefaultName {
		return
	}
	delete(d.sections, name)
}

// RemoveAll calls Remove for each name.
func (d *Document) RemoveAll(names ...string) {
	for _, name := range names {
		d.Remove(name)
	}
}

// Fallback returns the section that s names as its default section.
func (d *Document) Fallback(s *Section) (*Section, bool) {
	name, ok := s.DefaultSection()
	if !ok {
		return nil, false
	}
	return d.Section(name)
}

// Lookup returns the value of key in the named section. If the section
// does not hold the key, Lookup follows default section references until
// it finds one that does. Each section is visited at most once.
func (d *Document) Lookup(section, key string) (string, bool) {
	s, ok := d.Section(section)
	if !ok {
		return "", false
	}
	visited := make(map[*Section]bool)
	for ok && !visited[s] {
		if v, found := s.Get(key); found {
			return v, true
		}
		visited[s] = true
		s, ok = d.Fallback(s)
	}
	return "", false
}

// MarshalText serializes the document in INI format.
func (d *Document) MarshalText() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := d.Store(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalText parses data with the document's current options, adding to
// and replacing the sections in d.
func (d *Document) UnmarshalText(data []byte) error {
	opts := d.opts
	return d.Load(context.Background(), bytes.NewReader(data), &opts)
}
