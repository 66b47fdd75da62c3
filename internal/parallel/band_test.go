package parallel

import "testing"

// =============================================================================
// RowsPerBand Tests
// =============================================================================

func TestRowsPerBand(t *testing.T) {
	tests := []struct {
		name            string
		height, workers int
		want            int
	}{
		{"even split", 8, 4, 3},
		{"uneven split", 10, 4, 3},
		{"single worker", 10, 1, 11},
		{"more workers than rows", 3, 8, 1},
		{"zero height", 0, 4, 1},
		{"zero workers", 10, 0, 11},
		{"negative workers", 10, -3, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RowsPerBand(tt.height, tt.workers); got != tt.want {
				t.Errorf("RowsPerBand(%d, %d) = %d, want %d", tt.height, tt.workers, got, tt.want)
			}
		})
	}
}

// =============================================================================
// Split Tests
// =============================================================================

func TestSplit_Layout(t *testing.T) {
	got := Split(10, 4)
	want := []Band{
		{Index: 0, Top: 0, Rows: 3},
		{Index: 1, Top: 3, Rows: 3},
		{Index: 2, Top: 6, Rows: 3},
		{Index: 3, Top: 9, Rows: 1},
	}

	if len(got) != len(want) {
		t.Fatalf("len(Split(10, 4)) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("band %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSplit_EvenHeightLeavesWorkerIdle(t *testing.T) {
	// 8/4+1 = 3 rows per band: 3, 3, 2.
	if n := len(Split(8, 4)); n != 3 {
		t.Errorf("len(Split(8, 4)) = %d, want 3", n)
	}
}

func TestSplit_Empty(t *testing.T) {
	if bands := Split(0, 4); len(bands) != 0 {
		t.Errorf("Split(0, 4) returned %d bands, want 0", len(bands))
	}
	if bands := Split(-1, 4); len(bands) != 0 {
		t.Errorf("Split(-1, 4) returned %d bands, want 0", len(bands))
	}
}

func TestSplit_AtMostWorkers(t *testing.T) {
	for workers := 1; workers <= 16; workers++ {
		for height := 0; height <= 100; height++ {
			if n := len(Split(height, workers)); n > workers {
				t.Fatalf("Split(%d, %d) produced %d bands, want <= %d", height, workers, n, workers)
			}
		}
	}
}

func TestSplit_CoversEveryRowOnce(t *testing.T) {
	for workers := 1; workers <= 12; workers++ {
		for height := 0; height <= 64; height++ {
			seen := make([]int, height)
			next := 0
			for i, b := range Split(height, workers) {
				if b.Index != i {
					t.Fatalf("h=%d w=%d: band %d has Index %d", height, workers, i, b.Index)
				}
				if b.Top != next {
					t.Fatalf("h=%d w=%d: band %d starts at %d, want %d", height, workers, i, b.Top, next)
				}
				if b.Rows <= 0 || b.Bottom() > height {
					t.Fatalf("h=%d w=%d: band %d out of range: %+v", height, workers, i, b)
				}
				for row := b.Top; row < b.Bottom(); row++ {
					seen[row]++
				}
				next = b.Bottom()
			}
			for row, n := range seen {
				if n != 1 {
					t.Fatalf("h=%d w=%d: row %d covered %d times", height, workers, row, n)
				}
			}
		}
	}
}

func TestBand_Span(t *testing.T) {
	b := Band{Index: 1, Top: 3, Rows: 2}
	start, end := b.Span(10)
	if start != 30 || end != 50 {
		t.Errorf("Span(10) = (%d, %d), want (30, 50)", start, end)
	}
}
