// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Decode stores the section's entries in the struct pointed to by v.
// Fields are matched by their `ini` tag, or case-insensitively by name.
// String values are converted to the field types: booleans use the
// ParseBool vocabulary, numbers and slices (split on DefaultSeparator)
// are converted as needed.
func (s *Section) Decode(v interface{}) error {
	return decodeEntries(&s.entries, v)
}

// Decode stores the attributes in the struct pointed to by v, as
// Section.Decode does for entries.
func (a *Attributes) Decode(v interface{}) error {
	return decodeEntries(&a.entries, v)
}

func decodeEntries(e *entries, v interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "ini",
		Result:           v,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			boolHookFunc(),
			listHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("decode ini: %w", err)
	}
	if err := dec.Decode(e.Map()); err != nil {
		return fmt.Errorf("decode ini: %w", err)
	}
	return nil
}

func boolHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		b, ok := ParseBool(data.(string))
		if !ok {
			return nil, fmt.Errorf("%q is not a boolean", data)
		}
		return b, nil
	}
}

func listHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice {
			return data, nil
		}
		return SplitList(data.(string), DefaultSeparator), nil
	}
}
