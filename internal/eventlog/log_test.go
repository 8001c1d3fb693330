package eventlog

import "testing"

func TestStoreAndGetRoundtrips(t *testing.T) {
	l := New(4)
	ok := l.Store("room-a", Record{RoundID: "r1", RoundNumber: 1})
	if !ok {
		t.Fatal("Store returned false, want true within burst allowance")
	}

	rec, found := l.Get("r1")
	if !found {
		t.Fatal("Get(r1) not found after Store")
	}
	if rec.RoundNumber != 1 {
		t.Errorf("RoundNumber = %d, want 1", rec.RoundNumber)
	}
}

func TestGetMissingRoundReturnsFalse(t *testing.T) {
	l := New(4)
	_, found := l.Get("does-not-exist")
	if found {
		t.Error("Get on an empty log returned found=true")
	}
}

func TestStoreEvictsOldestOnCapacityOverflow(t *testing.T) {
	l := New(2)
	l.Store("room-a", Record{RoundID: "r1"})
	l.Store("room-a", Record{RoundID: "r2"})
	l.Store("room-a", Record{RoundID: "r3"})

	if _, found := l.Get("r1"); found {
		t.Error("r1 should have been evicted once the 2-slot ring wrapped")
	}
	if _, found := l.Get("r3"); !found {
		t.Error("r3 should still be present, it is the most recent write")
	}
	if got := l.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2 (bounded by capacity)", got)
	}
}

func TestNewClampsNonPositiveCapacity(t *testing.T) {
	l := New(0)
	if l.capacity != 512 {
		t.Errorf("capacity = %d, want default 512 for a non-positive input", l.capacity)
	}
}

func TestStoreRespectsPerRoomRateLimit(t *testing.T) {
	l := New(64)
	stored := 0
	for i := 0; i < 20; i++ {
		if l.Store("busy-room", Record{RoundID: string(rune('a' + i))}) {
			stored++
		}
	}
	if stored >= 20 {
		t.Errorf("stored %d of 20 rapid rounds from one room, want some dropped by the per-room limiter (burst 5)", stored)
	}
	if stored == 0 {
		t.Error("the per-room limiter's burst allowance should have let at least one through")
	}
}

func TestStatsTracksDroppedAndTotal(t *testing.T) {
	l := New(64)
	for i := 0; i < 20; i++ {
		l.Store("busy-room", Record{RoundID: string(rune('a' + i))})
	}
	stats := l.Stats()
	if stats["total"] == 0 {
		t.Error("Stats()[total] = 0, want at least some successful stores")
	}
	if stats["dropped"] == 0 {
		t.Error("Stats()[dropped] = 0, want some rate-limited drops given 20 rapid same-room stores")
	}
}

func TestStopWithoutStartIsSafe(t *testing.T) {
	l := New(4)
	l.Stop() // no Start() called; writer/cleanup goroutines never launched
}

func TestStartThenStopFlushesCleanly(t *testing.T) {
	dir := t.TempDir()
	l := New(4)
	if err := l.Start(dir + "/rounds.jsonl"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	l.Store("room-a", Record{RoundID: "r1"})
	l.Stop()
}
