// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"zombiezen.com/go/log"
)

// parseState is the transient state of a single Load.
type parseState struct {
	doc        *Document
	opts       Options
	current    *Section
	lastKey    string
	hasLastKey bool
	buf        strings.Builder
}

// Load parses INI text from r into d. Sections found in r are added to d,
// replacing sections with the same name; entries before the first header
// go to the default section. A nil opts is treated as the zero Options.
// Load records opts as the document's options.
//
// Lines that match no grammar are never an error: they are dropped, or
// with opts.Multiline appended to the last entry's value. Load returns an
// error only if reading from r fails. It does not close r.
//
// See the package documentation for the accepted syntax.
func (d *Document) Load(ctx context.Context, r io.Reader, opts *Options) error {
	d.init()
	if opts != nil {
		d.opts = *opts
	} else {
		d.opts = Options{}
	}
	p := &parseState{
		doc:     d,
		opts:    d.opts,
		current: d.def,
	}
	s := bufio.NewScanner(r)
	// Lines have no length limit.
	s.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	lineno := 1
	for ; s.Scan(); lineno++ {
		p.processLine(ctx, lineno, s.Text())
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("load ini: line %d: %w", lineno, err)
	}
	// A continuation on the last line is still pending.
	p.flush()
	return nil
}

func (p *parseState) processLine(ctx context.Context, lineno int, line string) {
	p.flush()
	if isInvalidContent(line) {
		return
	}
	line = strings.TrimSpace(line)
	section := isValidSection(line)
	if section {
		p.insertSection(ctx, lineno, sectionInfoOf(line))
	}
	entry := isValidEntry(line)
	if entry {
		if key, value, ok := entryOf(line); ok {
			p.insertEntry(key, value)
		}
	}
	if section || entry {
		return
	}
	if !p.opts.Multiline {
		log.Debugf(ctx, "ini: line %d: ignoring unrecognized line %q", lineno, line)
		return
	}
	if p.buf.Len() > 0 {
		p.buf.WriteByte(' ')
	}
	p.buf.WriteString(line)
}

// flush appends the pending continuation to the last entry, if the current
// section still holds it.
func (p *parseState) flush() {
	if !p.hasLastKey || p.buf.Len() == 0 || !p.current.ContainsKey(p.lastKey) {
		return
	}
	prev, _ := p.current.Get(p.lastKey)
	combined := strings.TrimSpace(prev) + " " + strings.TrimSpace(p.buf.String())
	p.current.Put(p.lastKey, cleanValue(combined))
	p.buf.Reset()
}

func (p *parseState) insertSection(ctx context.Context, lineno int, info sectionInfo) {
	if !info.valid() {
		log.Debugf(ctx, "ini: line %d: ignoring section without a name", lineno)
		return
	}
	var s *Section
	if normalizeName(info.name) == DefaultName {
		// There is only ever one default section.
		s = p.doc.def
	} else {
		s = NewSection(info.name)
		s.SetDefaultSection(DefaultName)
	}
	if p.opts.Advanced {
		for _, attr := range info.attrs {
			s.SetAttribute(attr.key, attr.value)
		}
	}
	p.doc.Put(s)
	p.current = s
}

func (p *parseState) insertEntry(key, value string) {
	p.current.Put(key, value)
	p.lastKey = normalizeName(key)
	p.hasLastKey = true
}
