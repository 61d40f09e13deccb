// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package envvar provides functions to read environment variables for
// configuration, including the options used to read and write INI
// documents.
package envvar

import (
	"os"
	"strings"

	"github.com/yourbase/simpleini/ini"
)

// Get returns the value of the given environment variable. If it is empty or
// unset, it returns the default value.
func Get(key string, defaultValue string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return v
}

// Bool returns the value of a boolean environment variable. It accepts the
// same values as ini.ParseBool ("true", "1", "yes", "y" in any case). If the
// variable is unset or holds anything else, Bool returns false.
func Bool(key string) bool {
	b, ok := ini.ParseBool(os.Getenv(key))
	return ok && b
}

// Options returns the INI options configured by the environment variables
// PREFIX_ADVANCED and PREFIX_MULTILINE, where PREFIX is the upper-cased
// prefix. Unset variables leave the option disabled.
func Options(prefix string) ini.Options {
	prefix = strings.ToUpper(prefix)
	if prefix != "" && !strings.HasSuffix(prefix, "_") {
		prefix += "_"
	}
	return ini.Options{
		Advanced:  Bool(prefix + "ADVANCED"),
		Multiline: Bool(prefix + "MULTILINE"),
	}
}
