// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
	"reflect"
	"testing"
)

// seq is a test helper for optional sequence keys.
func seq(n int64) *int64 {
	return &n
}

// =============================================================================
// ORDERING TESTS
// =============================================================================

func TestBuildDisplayItems_Empty(t *testing.T) {
	if got := BuildDisplayItems("m", nil, nil); got != nil {
		t.Errorf("BuildDisplayItems with no input = %#v, want nil", got)
	}
}

func TestBuildDisplayItems_KeyedBeforeUnkeyed(t *testing.T) {
	fragments := []Fragment{{Text: "b"}}
	toolCalls := []ToolCallRecord{{ID: "t1", Name: "search", Status: ToolCompleted, SequenceKey: seq(1)}}

	got := BuildDisplayItems("m", fragments, toolCalls)
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
	if _, ok := got[0].(ToolCallItem); !ok {
		t.Errorf("item 0 = %T, want ToolCallItem (keyed item sorts first)", got[0])
	}
	if _, ok := got[1].(TextItem); !ok {
		t.Errorf("item 1 = %T, want TextItem", got[1])
	}
}

func TestBuildDisplayItems_KeysAscending(t *testing.T) {
	fragments := []Fragment{
		{Text: "third", SequenceKey: seq(30)},
		{Text: "first", SequenceKey: seq(10)},
	}
	toolCalls := []ToolCallRecord{
		{ID: "t1", Name: "run", Status: ToolCompleted, SequenceKey: seq(20)},
	}

	got := BuildDisplayItems("m", fragments, toolCalls)
	want := []DisplayItem{
		TextItem{ID: "m-item-0", Text: "first"},
		ToolCallItem{ID: "m-item-1", Call: toolCalls[0]},
		TextItem{ID: "m-item-2", Text: "third"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildDisplayItems = %#v, want %#v", got, want)
	}
}

func TestBuildDisplayItems_EqualKeysKeepArrivalOrder(t *testing.T) {
	// Fragments precede tool calls in the concatenated arrival order, so
	// on an exact key tie the fragment wins.
	fragments := []Fragment{{Text: "frag", SequenceKey: seq(5)}}
	toolCalls := []ToolCallRecord{{ID: "t1", Name: "run", SequenceKey: seq(5)}}

	got := BuildDisplayItems("m", fragments, toolCalls)
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
	if _, ok := got[0].(TextItem); !ok {
		t.Errorf("item 0 = %T, want TextItem (earlier arrival on tie)", got[0])
	}
}

func TestBuildDisplayItems_AllUnkeyedUsesArrivalOrder(t *testing.T) {
	fragments := []Fragment{{Text: "a"}, {Text: "b"}}
	toolCalls := []ToolCallRecord{{ID: "t1", Name: "run"}}

	got := BuildDisplayItems("m", fragments, toolCalls)
	want := []DisplayItem{
		TextItem{ID: "m-item-0", Text: "a\nb"},
		ToolCallItem{ID: "m-item-1", Call: toolCalls[0]},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildDisplayItems = %#v, want %#v", got, want)
	}
}

// =============================================================================
// MERGING AND IDENTIFIERS
// =============================================================================

func TestBuildDisplayItems_AdjacentTextMerges(t *testing.T) {
	fragments := []Fragment{{Text: "a"}, {Text: "b"}}

	got := BuildDisplayItems("msg", fragments, nil)
	want := []DisplayItem{TextItem{ID: "msg-item-0", Text: "a\nb"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("adjacent fragments = %#v, want single merged item %#v", got, want)
	}
}

func TestBuildDisplayItems_ToolCallSplitsRuns(t *testing.T) {
	fragments := []Fragment{
		{Text: "before", SequenceKey: seq(1)},
		{Text: "after", SequenceKey: seq(3)},
	}
	toolCalls := []ToolCallRecord{
		{ID: "t1", Name: "fetch", Status: ToolRunning, SequenceKey: seq(2)},
	}

	got := BuildDisplayItems("m", fragments, toolCalls)
	want := []DisplayItem{
		TextItem{ID: "m-item-0", Text: "before"},
		ToolCallItem{ID: "m-item-1", Call: toolCalls[0]},
		TextItem{ID: "m-item-2", Text: "after"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildDisplayItems = %#v, want %#v", got, want)
	}
}

func TestBuildDisplayItems_IdentifiersCountEmissions(t *testing.T) {
	// Three source fragments merge into one emission; the following tool
	// call is emission 1, not 3.
	fragments := []Fragment{{Text: "a"}, {Text: "b"}, {Text: "c"}}
	toolCalls := []ToolCallRecord{{ID: "t1", Name: "run", SequenceKey: seq(99)}}

	got := BuildDisplayItems("m", fragments, toolCalls)
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
	if got[0].ItemID() != "m-item-0" || got[1].ItemID() != "m-item-1" {
		t.Errorf("item IDs = %q, %q; want m-item-0, m-item-1",
			got[0].ItemID(), got[1].ItemID())
	}
}

func TestBuildDisplayItems_Deterministic(t *testing.T) {
	fragments := []Fragment{
		{Text: "x", SequenceKey: seq(2)},
		{Text: "y"},
		{Text: "z", SequenceKey: seq(2)},
	}
	toolCalls := []ToolCallRecord{
		{ID: "t1", Name: "a", SequenceKey: seq(2)},
		{ID: "t2", Name: "b"},
	}

	first := BuildDisplayItems("m", fragments, toolCalls)
	for i := 0; i < 10; i++ {
		if got := BuildDisplayItems("m", fragments, toolCalls); !reflect.DeepEqual(got, first) {
			t.Fatalf("BuildDisplayItems not deterministic on call %d", i)
		}
	}
}
