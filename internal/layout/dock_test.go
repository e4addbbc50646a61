package layout

import "testing"

func TestParseDock(t *testing.T) {
	type tc struct {
		input    string
		expected Dock
		wantErr  bool
	}

	tests := map[string]tc{
		"empty defaults to left": {input: "", expected: DockLeft},
		"left":                   {input: "left", expected: DockLeft},
		"top":                    {input: "top", expected: DockTop},
		"right":                  {input: "right", expected: DockRight},
		"bottom":                 {input: "bottom", expected: DockBottom},
		"case insensitive":       {input: " Top ", expected: DockTop},
		"unknown falls back":     {input: "center", expected: DockLeft, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseDock(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDock(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseDock(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDock_String(t *testing.T) {
	for _, d := range []Dock{DockLeft, DockTop, DockRight, DockBottom} {
		parsed, err := ParseDock(d.String())
		if err != nil || parsed != d {
			t.Errorf("ParseDock(%q) = %v, %v; want %v", d.String(), parsed, err, d)
		}
	}
	if got := Dock(9).String(); got != "Dock(9)" {
		t.Errorf("Dock(9).String() = %q, want %q", got, "Dock(9)")
	}
}

func TestDock_Vertical(t *testing.T) {
	if !DockTop.Vertical() || !DockBottom.Vertical() {
		t.Error("top and bottom should be vertical docks")
	}
	if DockLeft.Vertical() || DockRight.Vertical() || Dock(9).Vertical() {
		t.Error("left, right and unknown docks should not be vertical")
	}
}
