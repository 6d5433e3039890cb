package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges do not overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching corners do not overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-pixel overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Overlap must be symmetric
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 15)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", b.Bottom())
	}
	if b.CenterX() != 15 {
		t.Errorf("CenterX() = %v, expected 15", b.CenterX())
	}
	if b.CenterY() != 17.5 {
		t.Errorf("CenterY() = %v, expected 17.5", b.CenterY())
	}
}

func TestBoxContains(t *testing.T) {
	outer := NewBox(0, 0, 100, 100)

	tests := []struct {
		name     string
		inner    Box
		expected bool
	}{
		{"fully inside", NewBox(10, 10, 20, 20), true},
		{"flush with edges", NewBox(0, 0, 100, 100), true},
		{"sticking out right", NewBox(90, 10, 20, 20), false},
		{"sticking out top", NewBox(10, -5, 20, 20), false},
		{"fully outside", NewBox(200, 200, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := outer.Contains(tc.inner); got != tc.expected {
				t.Errorf("Contains() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxInflate(t *testing.T) {
	b := NewBox(10, 10, 20, 20)

	grown := b.Inflate(10, 10)
	if grown.X != 5 || grown.Y != 5 || grown.W != 30 || grown.H != 30 {
		t.Errorf("Inflate(10, 10) = %+v", grown)
	}
	if grown.CenterX() != b.CenterX() || grown.CenterY() != b.CenterY() {
		t.Error("Inflate should keep the center fixed")
	}

	shrunk := b.Inflate(-10, -10)
	if shrunk.W != 10 || shrunk.H != 10 {
		t.Errorf("Inflate(-10, -10) = %+v", shrunk)
	}
}

func TestBoxTranslate(t *testing.T) {
	b := NewBox(1, 2, 3, 4).Translate(10, -2)
	if b.X != 11 || b.Y != 0 || b.W != 3 || b.H != 4 {
		t.Errorf("Translate = %+v", b)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min is wrong")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max is wrong")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs is wrong")
	}
	if AbsF(-2.5) != 2.5 || AbsF(2.5) != 2.5 {
		t.Error("AbsF is wrong")
	}
}
