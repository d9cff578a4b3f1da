package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestIsTitle(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"Katze", true},
		{"Äpfel", true},
		{"New-York", true},
		{"Hello World", true},
		{"KATZE", false},
		{"katze", false},
		{"KaTze", false},
		{"", false},
		{"42", false},
		{"A", true},
		{"3D", true},
	}
	for _, tc := range testCases {
		if got := IsTitle(tc.input); got != tc.expected {
			t.Errorf("IsTitle(%q) = %v, expected %v", tc.input, got, tc.expected)
		}
	}
}

func TestStartsWithDigit(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"42", true},
		{"3D", true},
		{"٣", true},
		{"D3", false},
		{"", false},
	}
	for _, tc := range testCases {
		if got := StartsWithDigit(tc.input); got != tc.expected {
			t.Errorf("StartsWithDigit(%q) = %v, expected %v", tc.input, got, tc.expected)
		}
	}
}

func TestReverseRunes(t *testing.T) {
	if got := string(ReverseRunes("häuser")); got != "resuäh" {
		t.Errorf("ReverseRunes = %q", got)
	}
	if got := ReverseRunes(""); len(got) != 0 {
		t.Errorf("ReverseRunes of empty string = %q", string(got))
	}
}

func TestIsWordRune(t *testing.T) {
	for _, r := range "aZß9_\u0308" {
		if !IsWordRune(r) {
			t.Errorf("expected %q to be a word rune", r)
		}
	}
	for _, r := range " -.,'\t" {
		if IsWordRune(r) {
			t.Errorf("expected %q not to be a word rune", r)
		}
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tc := range testCases {
		if got := FormatWithCommas(tc.input); got != tc.expected {
			t.Errorf("FormatWithCommas(%d) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.conllu", "a.TSV", "readme.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.tsv"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := ListFiles(dir, []string{".tsv", ".conllu"})
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{filepath.Join(dir, "a.TSV"), filepath.Join(dir, "b.conllu")}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ListFiles = %v, expected %v", got, expected)
	}

	if _, err := ListFiles(filepath.Join(dir, "missing"), nil); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	type section struct {
		Limit int      `toml:"limit"`
		Tags  []string `toml:"tags"`
	}
	type file struct {
		Rank section `toml:"rank"`
	}

	path := filepath.Join(t.TempDir(), "c.toml")
	if err := SaveTOMLFile(file{Rank: section{Limit: 7, Tags: []string{"DET"}}}, path); err != nil {
		t.Fatal(err)
	}

	data, err := ParseTOMLWithRecovery(path)
	if err != nil {
		t.Fatal(err)
	}
	rank, ok := ExtractSection(data, "rank")
	if !ok {
		t.Fatal("missing rank section")
	}
	if v, ok := ExtractInt64(rank, "limit"); !ok || v != 7 {
		t.Errorf("limit = %d, %v", v, ok)
	}
	if v, ok := ExtractStringSlice(rank, "tags"); !ok || !reflect.DeepEqual(v, []string{"DET"}) {
		t.Errorf("tags = %v, %v", v, ok)
	}
	if _, ok := ExtractString(rank, "limit"); ok {
		t.Error("limit is not a string")
	}
	if _, ok := ExtractString(rank, "missing"); ok {
		t.Error("missing key extracted")
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the config file, found %d entries", len(entries))
	}
}
