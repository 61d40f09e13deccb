// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// DocumentSet is a list of documents to obtain configuration from in
// descending order of precedence.
type DocumentSet []*Document

// LoadFiles loads the files at the given paths with LoadFile and returns a
// DocumentSet. If the returned error is nil, the set's length will be the
// same as the number of paths. LoadFiles stops on the first error, but
// ignores missing files, instead filling the corresponding element of the
// set with a nil *Document.
func LoadFiles(ctx context.Context, opts *Options, paths ...string) (DocumentSet, error) {
	dset := make(DocumentSet, 0, len(paths))
	for _, p := range paths {
		d := New()
		err := d.LoadFile(ctx, p, opts)
		if errors.Is(err, os.ErrNotExist) {
			dset = append(dset, nil)
			continue
		}
		if err != nil {
			return dset, fmt.Errorf("load ini files: %w", err)
		}
		dset = append(dset, d)
	}
	return dset, nil
}

// Get returns the value of key in the named section of the first document
// that has it. Default section references are not followed.
func (dset DocumentSet) Get(section, key string) (string, bool) {
	for _, d := range dset {
		if d == nil {
			continue
		}
		if s, ok := d.Section(section); ok {
			if v, ok := s.Get(key); ok {
				return v, true
			}
		}
	}
	return "", false
}

// Lookup is like Get but uses Document.Lookup, following default section
// references within each document.
func (dset DocumentSet) Lookup(section, key string) (string, bool) {
	for _, d := range dset {
		if d == nil {
			continue
		}
		if v, ok := d.Lookup(section, key); ok {
			return v, true
		}
	}
	return "", false
}

// SectionNames returns the names of sections present in any document,
// excluding default sections.
func (dset DocumentSet) SectionNames() map[string]struct{} {
	names := make(map[string]struct{})
	for _, d := range dset {
		if d == nil {
			continue
		}
		for _, s := range d.Sections()[1:] {
			names[s.Name()] = struct{}{}
		}
	}
	return names
}

// Section returns the merged entries of the named section. Documents
// earlier in the set take precedence.
func (dset DocumentSet) Section(name string) map[string]string {
	merged := make(map[string]string)
	for i := len(dset) - 1; i >= 0; i-- {
		if dset[i] == nil {
			continue
		}
		if s, ok := dset[i].Section(name); ok {
			for k, v := range s.values {
				merged[k] = v
			}
		}
	}
	return merged
}

// Set stores the entry in the first document and removes it from all
// subsequent documents. Set will panic if len(dset) == 0. If dset[0] == nil,
// Set allocates a new Document. Missing sections are created.
func (dset DocumentSet) Set(section, key, value string) {
	if dset[0] == nil {
		dset[0] = New()
	}
	s, ok := dset[0].Section(section)
	if !ok {
		s = NewSection(section)
		s.SetDefaultSection(DefaultName)
		dset[0].Put(s)
	}
	s.Put(key, value)
	dset[1:].Delete(section, key)
}

// Delete removes the entry from the named section of every document. Nil
// elements of the set are ignored.
func (dset DocumentSet) Delete(section, key string) {
	for _, d := range dset {
		if d == nil {
			continue
		}
		if s, ok := d.Section(section); ok {
			s.Remove(key)
		}
	}
}
