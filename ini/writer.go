// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"time"
)

var plainNumberPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Store writes d to w in INI format. The output starts with a comment
// holding the current time, followed by the default section's entries and
// then every other section in name order, separated by blank lines.
// Attributes are written only if the document's options enable Advanced.
//
// Store does not close w. If a write fails, Store stops and returns the
// error; output already written is left as is.
func (d *Document) Store(w io.Writer) error {
	return d.store(w, time.Now())
}

func (d *Document) store(w io.Writer, now time.Time) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %s\n", commentMarker, now.Format(time.UnixDate))
	sections := d.Sections()
	for i, s := range sections {
		if s != d.def {
			writeHeader(bw, s, d.opts.Advanced)
		}
		for _, key := range s.keys {
			fmt.Fprintf(bw, "%s %s %s\n", key, assignMarker, s.values[key])
		}
		if i < len(sections)-1 {
			bw.WriteByte('\n')
		}
	}
	// bufio.Writer keeps the first error, so checking Flush is enough.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("store ini: %w", err)
	}
	return nil
}

func writeHeader(bw *bufio.Writer, s *Section, advanced bool) {
	bw.WriteString(sectionOpen)
	bw.WriteString(s.Name())
	if advanced && s.HasAttributes() {
		for _, key := range s.attrs.keys {
			bw.WriteByte(' ')
			bw.WriteString(key)
			bw.WriteString(assignMarker)
			if value := s.attrs.values[key]; plainNumberPattern.MatchString(value) {
				bw.WriteString(value)
			} else {
				bw.WriteString(`"` + value + `"`)
			}
		}
	}
	bw.WriteString(sectionClose)
	bw.WriteByte('\n')
}
