// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSectionPut(t *testing.T) {
	s := NewSection("  My   Section ")
	if got, want := s.Name(), "My-Section"; got != want {
		t.Errorf("Name() = %q; want %q", got, want)
	}

	if prev, ok := s.Put("key", "one"); ok {
		t.Errorf("first Put returned %q, true; want \"\", false", prev)
	}
	if prev, ok := s.Put("key", "two"); !ok || prev != "one" {
		t.Errorf("second Put returned %q, %t; want \"one\", true", prev, ok)
	}
	if got, _ := s.Get("key"); got != "two" {
		t.Errorf("Get(\"key\") = %q; want \"two\"", got)
	}

	if prev, ok := s.Put("   ", "blank"); ok || prev != "" {
		t.Errorf("Put with blank key returned %q, %t; want \"\", false", prev, ok)
	}
	if got := s.Len(); got != 1 {
		t.Errorf("Len() = %d; want 1", got)
	}
}

func TestSectionKeyNormalization(t *testing.T) {
	s := NewSection("s")
	s.Put("My Key", "v")
	if _, ok := s.Get("My Key"); ok {
		t.Error("Get(\"My Key\") found a value; lookups should not normalize")
	}
	if s.ContainsKey("My Key") {
		t.Error("ContainsKey(\"My Key\") = true; want false")
	}
	if got, ok := s.Get("My-Key"); !ok || got != "v" {
		t.Errorf("Get(\"My-Key\") = %q, %t; want \"v\", true", got, ok)
	}
	if diff := cmp.Diff([]string{"My-Key"}, s.Keys()); diff != "" {
		t.Errorf("Keys() (-want +got):\n%s", diff)
	}
	if _, ok := s.Remove("My Key"); ok {
		t.Error("Remove(\"My Key\") removed a value")
	}
	s.Put("My-Key", "w")
	if got := s.Len(); got != 1 {
		t.Errorf("Len() after re-put of normalized key = %d; want 1", got)
	}
}

func TestSectionRemove(t *testing.T) {
	s := NewSection("s")
	s.Put("a", "1")
	s.Put("b", "2")
	s.Put("c", "3")
	if v, ok := s.Remove("b"); !ok || v != "2" {
		t.Errorf("Remove(\"b\") = %q, %t; want \"2\", true", v, ok)
	}
	if _, ok := s.Remove("b"); ok {
		t.Error("second Remove(\"b\") = true")
	}
	if diff := cmp.Diff([]string{"a", "c"}, s.Keys()); diff != "" {
		t.Errorf("Keys() (-want +got):\n%s", diff)
	}
	s.Clear()
	if !s.IsEmpty() {
		t.Error("IsEmpty() after Clear = false")
	}
	if got := s.GetOrDefault("a", "fallback"); got != "fallback" {
		t.Errorf("GetOrDefault after Clear = %q; want \"fallback\"", got)
	}
}

func TestSectionPutAll(t *testing.T) {
	s := NewSection("s")
	s.PutAll(map[string]string{"b": "2", "a": "1", "c d": "3"})
	if diff := cmp.Diff([]string{"a", "b", "c-d"}, s.Keys()); diff != "" {
		t.Errorf("Keys() (-want +got):\n%s", diff)
	}
	want := map[string]string{"a": "1", "b": "2", "c-d": "3"}
	if diff := cmp.Diff(want, s.Map()); diff != "" {
		t.Errorf("Map() (-want +got):\n%s", diff)
	}
}

func TestSectionConversions(t *testing.T) {
	s := NewSection("s")
	s.Put("count", " 42 ")
	s.Put("ratio", "0.5")
	s.Put("enabled", "Yes")
	s.Put("disabled", "n")
	s.Put("word", "maybe")
	s.Put("list", "a, b ,c")
	s.Put("pipes", "x|y|x")

	if n, ok := s.GetAsNumber("count"); !ok || n.Int32() != 42 {
		t.Errorf("GetAsNumber(\"count\") = %v, %t; want 42, true", n, ok)
	}
	if n, ok := s.GetAsNumber("ratio"); !ok || n.Float64() != 0.5 {
		t.Errorf("GetAsNumber(\"ratio\") = %v, %t; want 0.5, true", n, ok)
	}
	if _, ok := s.GetAsNumber("word"); ok {
		t.Error("GetAsNumber(\"word\") ok = true; want false")
	}
	if _, ok := s.GetAsNumber("missing"); ok {
		t.Error("GetAsNumber(\"missing\") ok = true; want false")
	}
	if b, ok := s.GetAsBoolean("enabled"); !ok || !b {
		t.Errorf("GetAsBoolean(\"enabled\") = %t, %t; want true, true", b, ok)
	}
	if b, ok := s.GetAsBoolean("disabled"); !ok || b {
		t.Errorf("GetAsBoolean(\"disabled\") = %t, %t; want false, true", b, ok)
	}
	if _, ok := s.GetAsBoolean("word"); ok {
		t.Error("GetAsBoolean(\"word\") ok = true; want false")
	}
	if _, ok := s.GetAsBoolean("missing"); ok {
		t.Error("GetAsBoolean(\"missing\") ok = true; want false")
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, s.GetAsList("list", "")); diff != "" {
		t.Errorf("GetAsList(\"list\") (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{}, s.GetAsList("missing", "")); diff != "" {
		t.Errorf("GetAsList(\"missing\") (-want +got):\n%s", diff)
	}
	wantSet := map[string]struct{}{"x": {}, "y": {}}
	if diff := cmp.Diff(wantSet, s.GetAsSet("pipes", `\|`)); diff != "" {
		t.Errorf("GetAsSet(\"pipes\") (-want +got):\n%s", diff)
	}
}

func TestSectionDefaultSection(t *testing.T) {
	s := NewSection("s")
	if _, ok := s.DefaultSection(); ok {
		t.Error("new section has a default section")
	}
	if _, ok := s.SetDefaultSection("a"); ok {
		t.Error("first SetDefaultSection reported a previous value")
	}
	if prev, ok := s.SetDefaultSection("s"); !ok || prev != "a" {
		t.Errorf("SetDefaultSection(\"s\") = %q, %t; want \"a\", true", prev, ok)
	}
	if name, ok := s.DefaultSection(); !ok || name != "s" {
		t.Errorf("DefaultSection() = %q, %t; want \"s\", true", name, ok)
	}
	s.ClearDefaultSection()
	if _, ok := s.DefaultSection(); ok {
		t.Error("DefaultSection() after Clear reports a value")
	}
}

func TestSectionAttributes(t *testing.T) {
	s := NewSection("s")
	if s.HasAttributes() {
		t.Error("new section HasAttributes() = true")
	}
	if _, ok := s.RemoveAttribute("x"); ok {
		t.Error("RemoveAttribute on empty section = true")
	}
	s.ClearAttributes()

	if _, ok := s.SetAttribute("attr", "x"); ok {
		t.Error("first SetAttribute reported a previous value")
	}
	s.PutAttributes(map[string]string{"count": "5"})
	if !s.HasAttributes() {
		t.Fatal("HasAttributes() = false")
	}
	if got, _ := s.Attributes().Get("attr"); got != "x" {
		t.Errorf("Attributes().Get(\"attr\") = %q; want \"x\"", got)
	}
	if n, ok := s.Attributes().GetAsNumber("count"); !ok || n.Int64() != 5 {
		t.Errorf("Attributes().GetAsNumber(\"count\") = %v, %t; want 5, true", n, ok)
	}
	if s.ContainsKey("attr") {
		t.Error("attribute leaked into entries")
	}
	if v, ok := s.RemoveAttribute("attr"); !ok || v != "x" {
		t.Errorf("RemoveAttribute(\"attr\") = %q, %t; want \"x\", true", v, ok)
	}

	other := new(Attributes)
	other.Put("only", "1")
	s.SetAttributes(other)
	if diff := cmp.Diff(map[string]string{"only": "1"}, s.Attributes().Map()); diff != "" {
		t.Errorf("Attributes() after SetAttributes (-want +got):\n%s", diff)
	}
	s.ClearAttributes()
	if s.HasAttributes() {
		t.Error("HasAttributes() after ClearAttributes = true")
	}
	s.SetAttribute("a", "1")
	s.SetAttributes(nil)
	if s.HasAttributes() {
		t.Error("HasAttributes() after SetAttributes(nil) = true")
	}
}
