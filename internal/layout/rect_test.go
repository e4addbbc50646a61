package layout

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X != 5 {
		t.Errorf("NewRect().X = %d, want 5", r.X)
	}
	if r.Y != 10 {
		t.Errorf("NewRect().Y = %d, want 10", r.Y)
	}
	if r.Width != 20 {
		t.Errorf("NewRect().Width = %d, want 20", r.Width)
	}
	if r.Height != 15 {
		t.Errorf("NewRect().Height = %d, want 15", r.Height)
	}
}

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  int
		bottom int
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	type tc struct {
		x, y     int
		expected bool
	}

	tests := map[string]tc{
		"top-left corner is inside":      {x: 10, y: 10, expected: true},
		"interior":                       {x: 12, y: 13, expected: true},
		"right edge is outside":          {x: 15, y: 12, expected: false},
		"bottom edge is outside":         {x: 12, y: 15, expected: false},
		"left of rect":                   {x: 9, y: 12, expected: false},
		"last inside pixel bottom-right": {x: 14, y: 14, expected: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect     Rect
		insets   Insets
		expected Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect:     NewRect(0, 0, 20, 10),
			insets:   Insets{Top: 1, Right: 1, Bottom: 1, Left: 1},
			expected: NewRect(1, 1, 18, 8),
		},
		"asymmetric": {
			rect:     NewRect(5, 5, 20, 10),
			insets:   Insets{Top: 1, Right: 2, Bottom: 3, Left: 4},
			expected: NewRect(9, 6, 14, 6),
		},
		"larger than rect clamps to zero": {
			rect:     NewRect(0, 0, 4, 4),
			insets:   Insets{Top: 3, Right: 3, Bottom: 3, Left: 3},
			expected: NewRect(3, 3, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.insets); got != tt.expected {
				t.Errorf("Inset() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b      Rect
		intersect Rect
	}

	tests := map[string]tc{
		"overlapping": {
			a:         NewRect(0, 0, 10, 10),
			b:         NewRect(5, 5, 10, 10),
			intersect: NewRect(5, 5, 5, 5),
		},
		"touching edges": {
			a:         NewRect(0, 0, 10, 10),
			b:         NewRect(10, 0, 10, 10),
			intersect: Rect{},
		},
		"empty": {
			a:         Rect{},
			b:         NewRect(3, 4, 5, 6),
			intersect: Rect{},
		},
		"contained": {
			a:         NewRect(0, 0, 20, 20),
			b:         NewRect(3, 4, 5, 6),
			intersect: NewRect(3, 4, 5, 6),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.intersect {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.intersect)
			}
		})
	}
}

func TestRect_Translate(t *testing.T) {
	r := NewRect(1, 2, 3, 4).Translate(10, -2)
	if r != NewRect(11, 0, 3, 4) {
		t.Errorf("Translate() = %+v, want {11 0 3 4}", r)
	}
}

func TestEdges(t *testing.T) {
	type tc struct {
		edges      Edges
		horizontal float64
		vertical   float64
		isZero     bool
	}

	tests := map[string]tc{
		"EdgeAll": {
			edges:      EdgeAll(2),
			horizontal: 4,
			vertical:   4,
		},
		"EdgeSymmetric": {
			edges:      EdgeSymmetric(1, 3),
			horizontal: 6,
			vertical:   2,
		},
		"EdgeTRBL": {
			edges:      EdgeTRBL(1, 2, 3, 4),
			horizontal: 6,
			vertical:   4,
		},
		"zero": {
			isZero: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.edges.Horizontal(); got != tt.horizontal {
				t.Errorf("Horizontal() = %v, want %v", got, tt.horizontal)
			}
			if got := tt.edges.Vertical(); got != tt.vertical {
				t.Errorf("Vertical() = %v, want %v", got, tt.vertical)
			}
			if got := tt.edges.IsZero(); got != tt.isZero {
				t.Errorf("IsZero() = %v, want %v", got, tt.isZero)
			}
		})
	}
}

func TestEdges_Scale(t *testing.T) {
	got := EdgeTRBL(1, 2.5, 3, 0.2).Scale(2)
	want := Insets{Top: 2, Right: 5, Bottom: 6, Left: 0}
	if got != want {
		t.Errorf("Scale(2) = %+v, want %+v", got, want)
	}
	if got.Horizontal() != 5 || got.Vertical() != 8 {
		t.Errorf("Insets sums = (%d, %d), want (5, 8)", got.Horizontal(), got.Vertical())
	}
}
