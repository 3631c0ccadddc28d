package domain

import "testing"

func TestPoint_Wrap(t *testing.T) {
	p := Point{Row: 2, Col: -1}
	if got := p.Wrap(2, 2); got != (Point{Row: 0, Col: 1}) {
		t.Errorf("Wrap(2,2) = %v, want {0 1}", got)
	}
}

func TestWrap_IsTrueModulo(t *testing.T) {
	for _, m := range []int{1, 2, 5, 20} {
		for n := -3 * m; n <= 3*m; n++ {
			got := wrap(n, m)
			if got < 0 || got >= m {
				t.Fatalf("wrap(%d, %d) = %d, out of [0,%d)", n, m, got, m)
			}
			if again := wrap(n+m, m); again != got {
				t.Fatalf("wrap(%d, %d) = %d, but wrap(%d, %d) = %d", n, m, got, n+m, m, again)
			}
		}
	}
	if got := wrap(-1, 5); got != 4 {
		t.Errorf("wrap(-1, 5) = %d, want 4", got)
	}
}

func TestPoint_AddDoesNotWrap(t *testing.T) {
	p := Point{Row: 0, Col: 19}
	got := p.Step(East).Step(East)
	if got != (Point{Row: 0, Col: 21}) {
		t.Errorf("Step = %v, want {0 21}", got)
	}
	if w := got.Wrap(20, 20); w != (Point{Row: 0, Col: 1}) {
		t.Errorf("Wrap = %v, want {0 1}", w)
	}
}

func TestDirection_Vector(t *testing.T) {
	tests := []struct {
		dir    Direction
		vector Point
		letter string
	}{
		{North, Point{-1, 0}, "n"},
		{South, Point{1, 0}, "s"},
		{East, Point{0, 1}, "e"},
		{West, Point{0, -1}, "w"},
	}

	for _, tt := range tests {
		if got := tt.dir.Vector(); got != tt.vector {
			t.Errorf("%s.Vector() = %v, want %v", tt.letter, got, tt.vector)
		}
		if got := tt.dir.String(); got != tt.letter {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.letter)
		}
		parsed, ok := ParseDirection(tt.letter)
		if !ok || parsed != tt.dir {
			t.Errorf("ParseDirection(%q) = %v, %v", tt.letter, parsed, ok)
		}
	}

	if _, ok := ParseDirection("x"); ok {
		t.Error("ParseDirection(\"x\") should fail")
	}
}

func TestDistanceSquared_Torus(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want int
	}{
		{"same point", Point{3, 3}, Point{3, 3}, 0},
		{"direct", Point{0, 0}, Point{2, 1}, 5},
		{"across edge", Point{0, 0}, Point{19, 0}, 1},
		{"across both edges", Point{0, 19}, Point{19, 0}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistanceSquared(tt.a, tt.b, 20, 20); got != tt.want {
				t.Errorf("DistanceSquared(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDelta_ShortestWay(t *testing.T) {
	got := Delta(Point{0, 0}, Point{19, 2}, 20, 20)
	if got != (Point{Row: -1, Col: 2}) {
		t.Errorf("Delta = %v, want {-1 2}", got)
	}
}
