package model

import "testing"

// TestBuildEndIndex tests index construction and lookup.
func TestBuildEndIndex(t *testing.T) {
	t.Parallel()

	table := &RainbowTable{
		Chains: []Chain{
			{Start: "aaaa", End: "qqqq"},
			{Start: "bbbb", End: "rrrr"},
		},
	}
	table.BuildEndIndex()

	if table.IndexSize() != 2 {
		t.Errorf("index size = %d, expected 2", table.IndexSize())
	}

	start, ok := table.LookupStart("rrrr")
	if !ok || start != "bbbb" {
		t.Errorf("LookupStart(rrrr) = (%q, %v), expected (bbbb, true)", start, ok)
	}
	if _, ok := table.LookupStart("zzzz"); ok {
		t.Error("expected miss for absent end value")
	}
}

// TestBuildEndIndexLastWriteWins tests the duplicate-end override.
func TestBuildEndIndexLastWriteWins(t *testing.T) {
	t.Parallel()

	table := &RainbowTable{
		Chains: []Chain{
			{Start: "aaaa", End: "ssss"},
			{Start: "bbbb", End: "ssss"},
			{Start: "cccc", End: "tttt"},
		},
	}
	table.BuildEndIndex()

	if table.IndexSize() != 2 {
		t.Errorf("index size = %d, expected 2 (duplicate collapsed)", table.IndexSize())
	}
	start, ok := table.LookupStart("ssss")
	if !ok || start != "bbbb" {
		t.Errorf("LookupStart(ssss) = (%q, %v), expected later chain (bbbb, true)", start, ok)
	}
}
