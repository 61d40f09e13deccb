// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides a parser and serializer for the INI file format.
See https://en.wikipedia.org/wiki/INI_file.

A Document holds a default section plus any number of uniquely named
sections. Each section maps string keys to string values and may carry
attributes written in its header. Parsing is tolerant: lines that do not
fit the grammar below are dropped instead of reported, so that loosely
written files still load.

# Syntax

The input is read line by line. Each line is trimmed and classified:

A line whose first character is a semicolon (';') is a comment. Comments
and blank lines are ignored.

A line starting with '[' and ending with ']' with a non-blank interior is a
section header. Entries that follow it belong to the section until the next
header. Entries before any header belong to the default section, named
"Default".

	[server]
	host = example.com

Whitespace runs inside a section name are replaced by hyphens, so
[My Section] declares the section "My-Section". A later header with the
same name replaces the earlier section.

A line of the form identifier=value is an entry. The identifier starts with
a letter or underscore and continues with letters, digits, underscores or
slashes. A single space may surround the equals sign and whitespace runs
in the line are collapsed first. One pair of double quotes around the value
is removed:

	name = "quoted value"
	path/to_file=/tmp/x

# Advanced mode

With Options.Advanced, a header may carry attributes after the name.
Attribute values are either quoted strings or unquoted numbers:

	[server weight=10 zone="eu west"]

Attributes are available from Section.Attributes.

# Multiline mode

With Options.Multiline, a line that is neither a comment, a blank line, a
header nor an entry continues the value of the last entry. Continuations
are joined with a single space and quotes around the joined value are
removed:

	motd = "Welcome to
	the server"

# Output

Store writes a comment line with the current time, then the default
section's entries, then each other section in name order. Sections are
separated by a blank line and entries are written as "key = value".
Attribute values that are plain numbers are written bare, all others
quoted.

# Keys

Section.Put normalizes keys the same way section names are normalized, but
Section.Get and the other accessors look up keys exactly as given. A key
stored with Put("My Key", v) must be read back with Get("My-Key").
*/
package ini
