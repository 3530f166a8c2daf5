package perf

import (
	"testing"
	"time"
)

// TestCollector_RingOverwritesOldest verifies capacity is bounded.
func TestCollector_RingOverwritesOldest(t *testing.T) {
	c := NewCollector(2)
	now := time.Now()
	c.Record(Entry{Kind: KindRequest, Path: "GET /a", DurationMs: 1, Timestamp: now})
	c.Record(Entry{Kind: KindRequest, Path: "GET /b", DurationMs: 2, Timestamp: now})
	c.Record(Entry{Kind: KindRequest, Path: "GET /c", DurationMs: 3, Timestamp: now})

	if c.TotalRecorded() != 3 {
		t.Errorf("TotalRecorded = %d, want 3", c.TotalRecorded())
	}
	snap := c.Snapshot(now.Add(-time.Minute), 10)
	if len(snap.SlowestPaths) != 2 {
		t.Fatalf("paths = %+v, want 2 entries", snap.SlowestPaths)
	}
	for _, p := range snap.SlowestPaths {
		if p.Path == "GET /a" {
			t.Error("oldest entry survived overwrite")
		}
	}
}

// TestCollector_SnapshotAggregates verifies averages, ordering and the since filter.
func TestCollector_SnapshotAggregates(t *testing.T) {
	c := NewCollector(16)
	now := time.Now()
	c.Record(Entry{Kind: KindRequest, Path: "GET /mentor", DurationMs: 10, Timestamp: now})
	c.Record(Entry{Kind: KindRequest, Path: "GET /mentor", DurationMs: 20, Timestamp: now})
	c.Record(Entry{Kind: KindRequest, Path: "GET /student", DurationMs: 5, Timestamp: now})
	c.Record(Entry{Kind: KindQuery, Path: "SELECT student", DurationMs: 1, Timestamp: now})
	c.Record(Entry{Kind: KindRequest, Path: "GET /old", DurationMs: 99, Timestamp: now.Add(-time.Hour)})

	snap := c.Snapshot(now.Add(-time.Minute), 1)
	if len(snap.SlowestPaths) != 1 || snap.SlowestPaths[0].Path != "GET /mentor" {
		t.Fatalf("SlowestPaths = %+v", snap.SlowestPaths)
	}
	if snap.SlowestPaths[0].AvgMs != 15 || snap.SlowestPaths[0].MaxMs != 20 || snap.SlowestPaths[0].Count != 2 {
		t.Errorf("mentor stat = %+v", snap.SlowestPaths[0])
	}
	if len(snap.SlowestQueries) != 1 || snap.SlowestQueries[0].Path != "SELECT student" {
		t.Errorf("SlowestQueries = %+v", snap.SlowestQueries)
	}
	if snap.RequestP50Ms != 10 {
		t.Errorf("RequestP50Ms = %v, want 10", snap.RequestP50Ms)
	}
}

// TestPercentile_Empty verifies zero for no data.
func TestPercentile_Empty(t *testing.T) {
	if got := percentile(nil, 95); got != 0 {
		t.Errorf("percentile(nil) = %v", got)
	}
}
