package arena

import "testing"

func TestEmplaceStableAddress(t *testing.T) {
	a := New[float64](4)
	p0 := a.Emplace(1)
	for i := 0; i < 10; i++ {
		a.Emplace(float64(i))
	}
	if *p0 != 1 {
		t.Fatalf("address of first element was invalidated: got %v", *p0)
	}
}

func TestReserveAbandonsPartialChunk(t *testing.T) {
	a := New[int](4)
	a.Emplace(0)
	a.Emplace(0)
	a.Emplace(0) // 1 slot left in chunk 0
	s := a.Reserve(2)
	if len(a.chunks) != 2 {
		t.Fatalf("expected reservation to abandon remainder and open a new chunk, got %d chunks", len(a.chunks))
	}
	s[0], s[1] = 7, 8
	if a.chunks[1][0] != 7 || a.chunks[1][1] != 8 {
		t.Fatalf("reserved slice did not alias the new chunk")
	}
}

func TestMarkResetRoundTrip(t *testing.T) {
	a := New[int](8)
	for i := 0; i < 5; i++ {
		a.Emplace(i)
	}
	a.SetMark()
	for i := 0; i < 1000; i++ {
		a.Emplace(i)
	}
	a.ResetToMark()
	if a.Len() != 5 {
		t.Fatalf("expected 5 elements after reset, got %d", a.Len())
	}
	for i := 0; i < 1000; i++ {
		a.Emplace(i)
	}
	if a.Len() != 1005 {
		t.Fatalf("expected 1005 elements after re-recording, got %d", a.Len())
	}
}

func TestResetToMarkWithoutMarkPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New[int](4).ResetToMark()
}

func TestReserveLargerThanChunkPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New[int](2).Reserve(3)
}

func TestResetToMarkReusesChunksOnReRecord(t *testing.T) {
	a := New[int](4)
	a.Emplace(0)
	a.SetMark()
	for i := 0; i < 10; i++ {
		a.Emplace(i)
	}
	grown := len(a.chunks)
	a.ResetToMark()
	for i := 0; i < 10; i++ {
		a.Emplace(i)
	}
	if len(a.chunks) != grown {
		t.Fatalf("re-recording across the same chunk boundaries should not grow the chunk list further: had %d chunks, now %d", grown, len(a.chunks))
	}
}

func TestClearDropsMark(t *testing.T) {
	a := New[int](4)
	a.Emplace(1)
	a.SetMark()
	a.Clear()
	if a.HasMark() {
		t.Fatal("expected Clear to drop the mark")
	}
	if a.Len() != 0 {
		t.Fatal("expected Clear to empty the arena")
	}
}
