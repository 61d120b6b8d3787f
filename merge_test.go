package lounge_test

import (
	"reflect"
	"testing"

	"github.com/RG4421/lounge"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		dst  map[string]any
		srcs []map[string]any
		want map[string]any
	}{
		{
			name: "adds keys",
			dst:  map[string]any{"a": 1},
			srcs: []map[string]any{{"b": 2}},
			want: map[string]any{"a": 1, "b": 2},
		},
		{
			name: "replaces scalars",
			dst:  map[string]any{"a": 1},
			srcs: []map[string]any{{"a": "x"}},
			want: map[string]any{"a": "x"},
		},
		{
			name: "merges nested objects",
			dst:  map[string]any{"opts": map[string]any{"delimiter": "_", "wait": false}},
			srcs: []map[string]any{{"opts": map[string]any{"wait": true}}},
			want: map[string]any{"opts": map[string]any{"delimiter": "_", "wait": true}},
		},
		{
			name: "replaces slices",
			dst:  map[string]any{"tags": []any{"a", "b", "c"}},
			srcs: []map[string]any{{"tags": []any{"z"}}},
			want: map[string]any{"tags": []any{"z"}},
		},
		{
			name: "object replaces scalar",
			dst:  map[string]any{"a": 1},
			srcs: []map[string]any{{"a": map[string]any{"b": 2}}},
			want: map[string]any{"a": map[string]any{"b": 2}},
		},
		{
			name: "scalar replaces object",
			dst:  map[string]any{"a": map[string]any{"b": 2}},
			srcs: []map[string]any{{"a": 1}},
			want: map[string]any{"a": 1},
		},
		{
			name: "nil keeps existing value",
			dst:  map[string]any{"a": 1},
			srcs: []map[string]any{{"a": nil, "b": nil}},
			want: map[string]any{"a": 1, "b": nil},
		},
		{
			name: "sources apply left to right",
			dst:  map[string]any{},
			srcs: []map[string]any{{"a": 1, "b": 1}, {"b": 2}},
			want: map[string]any{"a": 1, "b": 2},
		},
		{
			name: "nil dst",
			dst:  nil,
			srcs: []map[string]any{{"a": 1}},
			want: map[string]any{"a": 1},
		},
		{
			name: "no sources",
			dst:  map[string]any{"a": 1},
			want: map[string]any{"a": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lounge.Merge(tt.dst, tt.srcs...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestMerge_ModifiesDst(t *testing.T) {
	dst := map[string]any{"a": 1}

	got := lounge.Merge(dst, map[string]any{"b": 2})

	if dst["b"] != 2 {
		t.Error("Merge() should write into dst")
	}
	got["c"] = 3
	if dst["c"] != 3 {
		t.Error("Merge() should return dst itself")
	}
}

func TestMerge_CopiesSourceContainers(t *testing.T) {
	src := map[string]any{
		"opts": map[string]any{"nested": map[string]any{"k": "v"}},
		"list": []any{map[string]any{"x": 1}},
	}

	dst := lounge.Merge(nil, src)

	dst["opts"].(map[string]any)["nested"].(map[string]any)["k"] = "changed"
	dst["list"].([]any)[0].(map[string]any)["x"] = 2

	if src["opts"].(map[string]any)["nested"].(map[string]any)["k"] != "v" {
		t.Error("Merge() shares nested objects with its source")
	}
	if src["list"].([]any)[0].(map[string]any)["x"] != 1 {
		t.Error("Merge() shares slice elements with its source")
	}
}
