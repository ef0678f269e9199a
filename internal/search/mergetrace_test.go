package search

import "testing"

func TestMergeTraceFindSingletons(t *testing.T) {
	var tr MergeTrace
	tr.Reset(4)
	for i := 0; i < 4; i++ {
		if got := tr.Find(i); got != i {
			t.Errorf("Find(%d) = %d, want %d (singleton)", i, got, i)
		}
	}
}

func TestMergeTraceUnionMergesRoots(t *testing.T) {
	var tr MergeTrace
	tr.Reset(3)

	if !tr.Union(0, 1) {
		t.Fatal("Union(0, 1) = false, want true on first merge")
	}
	if tr.Find(0) != tr.Find(1) {
		t.Errorf("Find(0)=%d, Find(1)=%d, want equal after union", tr.Find(0), tr.Find(1))
	}
	if tr.Find(2) == tr.Find(0) {
		t.Errorf("Find(2) = %d should not equal Find(0) = %d, variable 2 was never merged", tr.Find(2), tr.Find(0))
	}
}

func TestMergeTraceUnionIdempotent(t *testing.T) {
	var tr MergeTrace
	tr.Reset(2)

	if !tr.Union(0, 1) {
		t.Fatal("first Union(0, 1) should return true")
	}
	if tr.Union(0, 1) {
		t.Error("second Union(0, 1) should return false, already merged")
	}
	if tr.Union(1, 0) {
		t.Error("Union(1, 0) should return false, already merged (order reversed)")
	}
}

func TestMergeTraceChainCollapsesToOneRoot(t *testing.T) {
	var tr MergeTrace
	tr.Reset(5)

	tr.Union(0, 1)
	tr.Union(1, 2)
	tr.Union(2, 3)
	tr.Union(3, 4)

	root := tr.Find(0)
	for i := 1; i < 5; i++ {
		if tr.Find(i) != root {
			t.Errorf("Find(%d) = %d, want %d (all variables in one chain of unions)", i, tr.Find(i), root)
		}
	}
}

func TestMergeTraceLogRecordsOneLinePerSuccessfulUnion(t *testing.T) {
	var tr MergeTrace
	tr.Reset(3)

	tr.Union(0, 1)
	tr.Union(0, 1) // no-op, already merged
	tr.Union(1, 2)

	log := tr.Log()
	if len(log) != 2 {
		t.Fatalf("len(Log()) = %d, want 2 (one per successful union, no-ops excluded)", len(log))
	}
}

func TestMergeTraceResetClearsLogAndStructure(t *testing.T) {
	var tr MergeTrace
	tr.Reset(2)
	tr.Union(0, 1)
	if len(tr.Log()) == 0 {
		t.Fatal("expected a log entry before reset")
	}

	tr.Reset(3)
	if len(tr.Log()) != 0 {
		t.Errorf("len(Log()) = %d after Reset, want 0", len(tr.Log()))
	}
	for i := 0; i < 3; i++ {
		if tr.Find(i) != i {
			t.Errorf("Find(%d) = %d after Reset, want singleton %d", i, tr.Find(i), i)
		}
	}
}
