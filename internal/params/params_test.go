// SPDX-License-Identifier: MPL-2.0

package params

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestEmailType(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"alice@example.com", true},
		{"a@b.co", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		_, err := (EmailType{}).Convert(tt.value)
		if tt.ok && err != nil {
			t.Errorf("Convert(%q) returned error: %v", tt.value, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("Convert(%q) should have failed", tt.value)
		}
	}
}

func TestEmailType_ErrorNamesValue(t *testing.T) {
	_, err := (EmailType{}).Convert("bogus")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name the rejected value, got: %v", err)
	}
}

func TestUUIDType(t *testing.T) {
	id := uuid.New().String()
	v, err := (UUIDType{}).Convert(id)
	if err != nil {
		t.Fatalf("Convert(%q) returned error: %v", id, err)
	}
	if v.(uuid.UUID).String() != id {
		t.Errorf("Convert(%q) = %v", id, v)
	}

	if _, err := (UUIDType{}).Convert("not-a-uuid"); err == nil {
		t.Error("Convert(not-a-uuid) should have failed")
	}
}

func TestURLType(t *testing.T) {
	if _, err := (URLType{}).Convert("https://example.com"); err != nil {
		t.Errorf("https URL rejected: %v", err)
	}
	if _, err := (URLType{}).Convert("ftp://example.com"); err == nil {
		t.Error("ftp URL should have been rejected")
	}
}

func TestJSONType_Inline(t *testing.T) {
	v, err := (JSONType{}).Convert(`{"a": 1}`)
	if err != nil {
		t.Fatalf("inline JSON rejected: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok || m["a"] != float64(1) {
		t.Errorf("unexpected decode result: %#v", v)
	}

	if _, err := (JSONType{}).Convert("{broken"); err == nil {
		t.Error("malformed JSON should have been rejected")
	}
}

func TestJSONType_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`[1, 2, 3]`), 0o644); err != nil {
		t.Fatal(err)
	}

	v, err := (JSONType{}).Convert(path)
	if err != nil {
		t.Fatalf("JSON file rejected: %v", err)
	}
	if list, ok := v.([]any); !ok || len(list) != 3 {
		t.Errorf("unexpected decode result: %#v", v)
	}
}

func TestPortType(t *testing.T) {
	tests := []struct {
		value string
		want  int
		ok    bool
	}{
		{"80", 80, true},
		{"65535", 65535, true},
		{"0", 0, false},
		{"70000", 0, false},
		{"http", 0, false},
	}

	pt := NewPortType()
	for _, tt := range tests {
		v, err := pt.Convert(tt.value)
		if tt.ok {
			if err != nil {
				t.Errorf("Convert(%q) returned error: %v", tt.value, err)
			} else if v.(int) != tt.want {
				t.Errorf("Convert(%q) = %v, want %d", tt.value, v, tt.want)
			}
		} else if err == nil {
			t.Errorf("Convert(%q) should have failed", tt.value)
		}
	}
}

func TestDirectoryType(t *testing.T) {
	dir := t.TempDir()
	if _, err := (DirectoryType{}).Convert(dir); err != nil {
		t.Errorf("existing directory rejected: %v", err)
	}

	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := (DirectoryType{}).Convert(file); err == nil {
		t.Error("file should have been rejected by directory type")
	}
}

func TestFileType_Extension(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(csv, []byte("a,b"), 0o644); err != nil {
		t.Fatal(err)
	}

	ft := FileType{Extension: ".csv"}
	if _, err := ft.Convert(csv); err != nil {
		t.Errorf("matching file rejected: %v", err)
	}
	if _, err := ft.Convert(filepath.Join(dir, "data.txt")); err == nil {
		t.Error("wrong extension should have been rejected")
	}
}

func TestChoiceType(t *testing.T) {
	ct := ChoiceType{Options: []string{"red", "green", "blue"}}

	v, err := ct.Convert("GREEN")
	if err != nil {
		t.Fatalf("case-insensitive match rejected: %v", err)
	}
	if v != "green" {
		t.Errorf("Convert(GREEN) = %v, want canonical spelling", v)
	}

	if _, err := ct.Convert("yellow"); err == nil {
		t.Error("unknown option should have been rejected")
	}

	strict := ChoiceType{Options: []string{"red"}, CaseSensitive: true}
	if _, err := strict.Convert("RED"); err == nil {
		t.Error("case-sensitive mismatch should have been rejected")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"email", "email"},
		{"EMAIL", "email"},
		{" uuid ", "uuid"},
		{"url", "url"},
		{"json", "json"},
		{"port", "port"},
		{"path", "path"},
		{"filepath", "path"},
		{"dir", "directory"},
		{"directory", "directory"},
		{"int", "int"},
		{"float", "float"},
		{"str", "string"},
		{"", "string"},
		{"no-such-alias", "string"},
	}

	for _, tt := range tests {
		if got := Resolve(tt.alias).Name(); got != tt.want {
			t.Errorf("Resolve(%q).Name() = %q, want %q", tt.alias, got, tt.want)
		}
	}
}

func TestLookupParameterizedFile(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "report.csv")
	if err := os.WriteFile(csv, []byte("a,b"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, alias := range []string{"file:.csv", "file:csv"} {
		typ, ok := Lookup(alias)
		if !ok {
			t.Fatalf("Lookup(%q) not found", alias)
		}
		if _, err := typ.Convert(csv); err != nil {
			t.Errorf("Lookup(%q).Convert(%q) returned error: %v", alias, csv, err)
		}
		if _, err := typ.Convert(filepath.Join(dir, "missing.txt")); err == nil {
			t.Errorf("Lookup(%q) accepted a file with the wrong extension", alias)
		}
	}
}

func TestLookupParameterizedChoice(t *testing.T) {
	typ, ok := Lookup("choice:dev|staging|prod")
	if !ok {
		t.Fatal("choice alias with options not found")
	}

	got, err := typ.Convert("STAGING")
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if got != "staging" {
		t.Errorf("Convert returned %v, want canonical spelling %q", got, "staging")
	}

	if _, err := typ.Convert("qa"); err == nil {
		t.Error("Convert accepted a value outside the option set")
	}
}

func TestLookupParameterizedPort(t *testing.T) {
	typ, ok := Lookup("port:1024-2048")
	if !ok {
		t.Fatal("port alias with range not found")
	}

	if _, err := typ.Convert("1024"); err != nil {
		t.Errorf("Convert rejected the lower bound: %v", err)
	}
	if _, err := typ.Convert("2049"); err == nil {
		t.Error("Convert accepted a port above the range")
	}
	if _, err := typ.Convert("80"); err == nil {
		t.Error("Convert accepted a port below the range")
	}
}

func TestResolveMalformedParameters(t *testing.T) {
	for _, alias := range []string{"choice:", "choice: | ", "port:abc", "port:10", "port:9-2", "int:5"} {
		if got := Resolve(alias).Name(); got != "string" {
			t.Errorf("Resolve(%q).Name() = %q, want fallback to %q", alias, got, "string")
		}
	}
}

func TestIsBool(t *testing.T) {
	if !IsBool("bool") || !IsBool("flag") {
		t.Error("bool aliases should resolve to the boolean type")
	}
	if IsBool("string") || IsBool("email") {
		t.Error("non-boolean aliases reported as bool")
	}
}
