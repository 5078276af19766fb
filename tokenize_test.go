// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatcmd

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", []string{}},
		{"   ", []string{}},
		{"\t\n", []string{}},
		{"hello", []string{"hello"}},
		{"!print hello world", []string{"!print", "hello", "world"}},
		{"  spaced   out  ", []string{"spaced", "out"}},
		{"a\tb\nc", []string{"a", "b", "c"}},
		// No quoting or comma handling: these stay literal.
		{`say "hello there"`, []string{"say", `"hello`, `there"`}},
		{"one,two three", []string{"one,two", "three"}},
	}

	for _, tc := range tests {
		got := Tokenize(tc.line)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		wantArgs []any
		wantKw   map[string]any
	}{
		{
			name:     "empty",
			tokens:   nil,
			wantArgs: []any{},
			wantKw:   map[string]any{},
		},
		{
			name:     "positionals only",
			tokens:   []string{"a", "b", "c"},
			wantArgs: []any{"a", "b", "c"},
			wantKw:   map[string]any{},
		},
		{
			name:     "mixed preserves positional order",
			tokens:   []string{"pos1", "key1=value1", "pos2", "pos3", "key2=value2"},
			wantArgs: []any{"pos1", "pos2", "pos3"},
			wantKw:   map[string]any{"key1": "value1", "key2": "value2"},
		},
		{
			name:     "values are coerced",
			tokens:   []string{"1", "count=3", "deep=2.5", "on=true", "off=false", "gone=nil"},
			wantArgs: []any{int64(1)},
			wantKw:   map[string]any{"count": int64(3), "deep": 2.5, "on": true, "off": false, "gone": nil},
		},
		{
			name:     "last duplicate key wins",
			tokens:   []string{"k=1", "k=2", "k=3"},
			wantArgs: []any{},
			wantKw:   map[string]any{"k": int64(3)},
		},
		{
			name:     "empty sides stay positional",
			tokens:   []string{"=v", "k=", "="},
			wantArgs: []any{"=v", "k=", "="},
			wantKw:   map[string]any{},
		},
		{
			name:     "second equals breaks the pattern",
			tokens:   []string{"a=b=c", "k=v"},
			wantArgs: []any{"a=b=c"},
			wantKw:   map[string]any{"k": "v"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args, kw := Classify(tc.tokens)
			if !reflect.DeepEqual(args, tc.wantArgs) {
				t.Errorf("Classify args = %#v, want %#v", args, tc.wantArgs)
			}
			if !reflect.DeepEqual(kw, tc.wantKw) {
				t.Errorf("Classify keywords = %#v, want %#v", kw, tc.wantKw)
			}
		})
	}
}

// Every token lands in exactly one bucket.
func TestClassify_Partition(t *testing.T) {
	tokens := []string{"x", "a=1", "y", "b=2", "z", "b=3"}
	args, kw := Classify(tokens)

	// b=2 and b=3 collapse to one key, so counts are args + distinct keys +
	// overwritten duplicates.
	if len(args) != 3 {
		t.Errorf("positional count = %d, want 3", len(args))
	}
	if len(kw) != 2 {
		t.Errorf("keyword count = %d, want 2", len(kw))
	}
}
