// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"regexp"
	"strings"
)

const (
	commentMarker = ";"
	assignMarker  = "="
	sectionOpen   = "["
	sectionClose  = "]"
)

var (
	entryPattern     = regexp.MustCompile(`^([A-Za-z_][\w/]*) ?= ?(.*)$`)
	attributePattern = regexp.MustCompile(`(\w+)=("(.*?)"|(\d+\.?\d*))`)
	spacePattern     = regexp.MustCompile(`\s+`)
)

type attribute struct {
	key   string
	value string
}

type sectionInfo struct {
	name  string
	attrs []attribute
}

func (info sectionInfo) valid() bool {
	return strings.TrimSpace(info.name) != ""
}

// isInvalidContent reports whether the line carries nothing to parse:
// it is blank or a comment.
func isInvalidContent(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, commentMarker)
}

func isValidSection(line string) bool {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, sectionOpen) {
		return false
	}
	line = line[len(sectionOpen):]
	if !strings.HasSuffix(line, sectionClose) {
		return false
	}
	line = line[:len(line)-len(sectionClose)]
	return strings.TrimSpace(line) != ""
}

func isValidEntry(line string) bool {
	return entryPattern.MatchString(collapseSpace(line))
}

// sectionInfoOf extracts the name and attributes of a header line that
// isValidSection accepted.
func sectionInfoOf(line string) sectionInfo {
	line = strings.TrimSpace(line)
	content := collapseSpace(line[len(sectionOpen) : len(line)-len(sectionClose)])

	var info sectionInfo
	for _, m := range attributePattern.FindAllStringSubmatch(content, -1) {
		value := m[4]
		if strings.HasPrefix(m[2], `"`) {
			value = m[3]
		}
		info.attrs = append(info.attrs, attribute{
			key:   cleanValue(m[1]),
			value: cleanValue(value),
		})
	}
	for _, frag := range attributePattern.Split(content, -1) {
		if frag = strings.TrimSpace(frag); frag != "" {
			info.name = frag
			break
		}
	}
	return info
}

// entryOf extracts the key and value of an entry line. ok is false if the
// line does not match the entry grammar.
func entryOf(line string) (key, value string, ok bool) {
	m := entryPattern.FindStringSubmatch(collapseSpace(line))
	if m == nil {
		return "", "", false
	}
	return cleanValue(m[1]), cleanValue(m[2]), true
}

// collapseSpace trims s and replaces every whitespace run with one space.
func collapseSpace(s string) string {
	return spacePattern.ReplaceAllString(strings.TrimSpace(s), " ")
}

// cleanValue collapses whitespace and strips one pair of surrounding
// double quotes.
func cleanValue(s string) string {
	s = collapseSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}
	return s
}

// normalizeName trims s and replaces every whitespace run with a hyphen.
// Section names and keys are stored in this form.
func normalizeName(s string) string {
	return spacePattern.ReplaceAllString(strings.TrimSpace(s), "-")
}
