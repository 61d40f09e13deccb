// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultSeparator is the list separator used when none is given.
const DefaultSeparator = ","

// ParseBool interprets s as a boolean. The accepted values, compared
// case-insensitively after trimming whitespace, are "true", "1", "yes" and
// "y" for true and "false", "0", "no" and "n" for false. ok is false for
// anything else.
func ParseBool(s string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true, true
	case "false", "0", "no", "n":
		return false, true
	default:
		return false, false
	}
}

// A Number is a numeric entry value. All values are parsed as float64 and
// narrowed on request.
type Number float64

// ParseNumber interprets s as a floating-point number. ok is false if s is
// not a valid number.
func ParseNumber(s string) (n Number, ok bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return Number(f), true
}

// Float64 returns n as a float64.
func (n Number) Float64() float64 { return float64(n) }

// Float32 returns n rounded to a float32.
func (n Number) Float32() float32 { return float32(n) }

// Int64 truncates n toward zero. Values out of range saturate and NaN
// becomes zero.
func (n Number) Int64() int64 {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// Int32 truncates n toward zero. Values out of range saturate and NaN
// becomes zero.
func (n Number) Int32() int32 {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(f)
	}
}

// Int16 narrows the result of Int32, discarding high bits.
func (n Number) Int16() int16 { return int16(n.Int32()) }

// Int8 narrows the result of Int32, discarding high bits.
func (n Number) Int8() int8 { return int8(n.Int32()) }

// SplitList splits s around matches of the regular expression sep and
// trims each fragment. An empty sep means DefaultSeparator. Trailing empty
// fragments are dropped. If sep does not compile, SplitList returns an
// empty list.
func SplitList(s, sep string) []string {
	if sep == "" {
		sep = DefaultSeparator
	}
	re, err := regexp.Compile(sep)
	if err != nil {
		return []string{}
	}
	parts := re.Split(strings.TrimSpace(s), -1)
	for len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// SplitSet is like SplitList but returns the distinct fragments.
func SplitSet(s, sep string) map[string]struct{} {
	list := SplitList(s, sep)
	set := make(map[string]struct{}, len(list))
	for _, v := range list {
		set[v] = struct{}{}
	}
	return set
}
