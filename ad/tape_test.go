package ad

import "testing"

func TestMarkResetBoundsNodeCount(t *testing.T) {
	Clear()
	x := NewLeaf(1.0)
	for i := 0; i < 999; i++ {
		x = AddC(x, 1.0)
	}
	if Len() != 1000 {
		t.Fatalf("expected 1000 nodes recorded before the mark, got %d", Len())
	}
	SetMark()
	for i := 0; i < 1000; i++ {
		x = AddC(x, 1.0)
	}
	if Len() != 2000 {
		t.Fatalf("expected 2000 nodes live just before reset, got %d", Len())
	}
	ResetToMark()
	if Len() != 1000 {
		t.Fatalf("expected exactly the 1000 pre-mark nodes to survive reset, got %d", Len())
	}
	_ = x
}

func TestMarkCrossesChunkBoundary(t *testing.T) {
	Clear()
	x := NewLeaf(1.0)
	for i := 0; i < 999; i++ {
		x = AddC(x, 1.0)
	}
	SetMark()
	for i := 0; i < nodeChunkSize*3+7; i++ {
		x = AddC(x, 1.0)
	}
	ResetToMark()
	if Len() != 1000 {
		t.Fatalf("expected reset across chunk boundaries to land exactly on the mark, got %d nodes", Len())
	}
	_ = x
}

func TestPerPathMarkResetMatchesDirectPropagation(t *testing.T) {
	Clear()
	rate := NewLeaf(0.05)
	mu := SubC(rate, 0.0) // stand-in pre-mark computation
	SetMark()

	var total float64
	paths := []float64{1.0, 2.0, 3.0}
	for _, p := range paths {
		res := MulC(mu, p)
		total += res.Value()
		PropagateToMark(res)
		ResetToMark()
	}
	PropagateFromMarkToStart()

	want := 0.0
	for _, p := range paths {
		want += p
	}
	if diff := want - mu.Adjoint(); diff < -1e-12 || diff > 1e-12 {
		t.Fatalf("mu adjoint = %v, want %v", mu.Adjoint(), want)
	}
	if diff := want - rate.Adjoint(); diff < -1e-12 || diff > 1e-12 {
		t.Fatalf("rate adjoint = %v, want %v", rate.Adjoint(), want)
	}
}

func TestResetWithoutMarkPanics(t *testing.T) {
	Clear()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	ResetToMark()
}
