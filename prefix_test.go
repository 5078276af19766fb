// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatcmd

import (
	"reflect"
	"testing"
)

func TestEngine_MatchPrefix_InsertionOrderWins(t *testing.T) {
	eng := New()
	eng.AddPrefix("!", ";;")

	// "!;; x" starts with both "!" and... only "!". But even when a longer
	// prefix also matches, the earliest-inserted one is returned.
	got, ok := eng.MatchPrefix("!;; x")
	if !ok || got != "!" {
		t.Errorf("MatchPrefix(%q) = (%q, %v), want (%q, true)", "!;; x", got, ok, "!")
	}

	// Register the longer prefix first this time.
	eng2 := New()
	eng2.AddPrefix("!!", "!")
	got, ok = eng2.MatchPrefix("!!cmd")
	if !ok || got != "!!" {
		t.Errorf("MatchPrefix(%q) = (%q, %v), want (%q, true)", "!!cmd", got, ok, "!!")
	}
	got, ok = eng2.MatchPrefix("!cmd")
	if !ok || got != "!" {
		t.Errorf("MatchPrefix(%q) = (%q, %v), want (%q, true)", "!cmd", got, ok, "!")
	}
}

func TestEngine_MatchPrefix_NoMatch(t *testing.T) {
	eng := New()
	if _, ok := eng.MatchPrefix("!cmd"); ok {
		t.Error("MatchPrefix with no prefixes registered should not match")
	}

	eng.AddPrefix("!")
	if _, ok := eng.MatchPrefix("hello"); ok {
		t.Error("MatchPrefix should not match a plain chat line")
	}
	// Prefix mid-line does not count.
	if _, ok := eng.MatchPrefix("say !cmd"); ok {
		t.Error("MatchPrefix should only match at the start of the line")
	}
}

func TestEngine_RemovePrefix_AllOccurrences(t *testing.T) {
	eng := New()
	eng.AddPrefix("!", "!", "?")

	removed := eng.RemovePrefix("!")
	if !reflect.DeepEqual(removed, []string{"!", "!"}) {
		t.Errorf("RemovePrefix(%q) = %v, want [! !]", "!", removed)
	}
	if got := eng.Prefixes(); !reflect.DeepEqual(got, []string{"?"}) {
		t.Errorf("Prefixes() = %v, want [?]", got)
	}
}

func TestEngine_RemovePrefix_MultipleTargets(t *testing.T) {
	eng := New()
	eng.AddPrefix("!", "?", "!", ";;")

	removed := eng.RemovePrefix("!", ";;", "missing")
	if !reflect.DeepEqual(removed, []string{"!", "!", ";;"}) {
		t.Errorf("RemovePrefix = %v, want [! ! ;;]", removed)
	}
	if got := eng.Prefixes(); !reflect.DeepEqual(got, []string{"?"}) {
		t.Errorf("Prefixes() = %v, want [?]", got)
	}
}

func TestEngine_RemovePrefix_Missing(t *testing.T) {
	eng := New()
	eng.AddPrefix("!")
	if removed := eng.RemovePrefix("?"); len(removed) != 0 {
		t.Errorf("RemovePrefix of unregistered prefix = %v, want empty", removed)
	}
}

func TestEngine_SetPrefixes(t *testing.T) {
	eng := New()
	eng.AddPrefix("!")
	eng.SetPrefixes([]string{";;", "?"})

	if got := eng.Prefixes(); !reflect.DeepEqual(got, []string{";;", "?"}) {
		t.Errorf("Prefixes() = %v, want [;; ?]", got)
	}
	if got, ok := eng.MatchPrefix(";;cmd"); !ok || got != ";;" {
		t.Errorf("MatchPrefix after SetPrefixes = (%q, %v)", got, ok)
	}
}
