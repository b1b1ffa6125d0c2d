package matrix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRowIsAViewNotACopy(t *testing.T) {
	m := New[float64](2, 3)
	m.Set(1, 0, 1)
	m.Set(1, 1, 2)
	m.Set(1, 2, 3)

	row := m.Row(1)
	row[0] = 9

	if m.At(1, 0) != 9 {
		t.Fatalf("Row must return a mutable view, mutation did not propagate")
	}

	want := []float64{9, 2, 3}
	if diff := cmp.Diff(want, row); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertPreservesShapeAndAppliesElementwise(t *testing.T) {
	m := New[float64](2, 2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(1, 0, 3)
	m.Set(1, 1, 4)

	doubled := Convert(m, func(v float64) float64 { return v * 2 })

	if doubled.Rows() != m.Rows() || doubled.Cols() != m.Cols() {
		t.Fatalf("Convert must preserve shape: got %dx%d, want %dx%d",
			doubled.Rows(), doubled.Cols(), m.Rows(), m.Cols())
	}

	want := []float64{2, 4, 6, 8}
	var got []float64
	for r := 0; r < doubled.Rows(); r++ {
		got = append(got, doubled.Row(r)...)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("converted values mismatch (-want +got):\n%s", diff)
	}
}
