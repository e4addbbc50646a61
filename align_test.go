package dock

import "testing"

func TestAlign_Place(t *testing.T) {
	type tc struct {
		align      Align
		wantPos    int
		wantLength int
	}

	// Slot [10, 30), measured 6, margins 1 and 3.
	tests := map[string]tc{
		"stretch": {align: AlignStretch, wantPos: 11, wantLength: 16},
		"start":   {align: AlignStart, wantPos: 11, wantLength: 6},
		"center":  {align: AlignCenter, wantPos: 16, wantLength: 6},
		"end":     {align: AlignEnd, wantPos: 21, wantLength: 6},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pos, length := tt.align.place(10, 30, 6, 1, 3)
			if pos != tt.wantPos || length != tt.wantLength {
				t.Errorf("place() = (%d, %d), want (%d, %d)", pos, length, tt.wantPos, tt.wantLength)
			}
		})
	}
}

func TestAlign_PlaceStretchNeverNegative(t *testing.T) {
	_, length := AlignStretch.place(0, 2, 0, 2, 2)
	if length != 0 {
		t.Errorf("length = %d, want 0", length)
	}
}

func TestAlign_Resolve(t *testing.T) {
	if got := AlignStretch.resolve(Fixed(3)); got != AlignCenter {
		t.Errorf("stretch with a fixed size = %v, want center", got)
	}
	if got := AlignStretch.resolve(Auto()); got != AlignStretch {
		t.Errorf("stretch with auto size = %v, want stretch", got)
	}
	if got := AlignEnd.resolve(Fixed(3)); got != AlignEnd {
		t.Errorf("end with a fixed size = %v, want end", got)
	}
}

func TestParseAlign(t *testing.T) {
	type tc struct {
		input   string
		want    Align
		wantErr bool
	}

	tests := map[string]tc{
		"empty":   {input: "", want: AlignStretch},
		"stretch": {input: "stretch", want: AlignStretch},
		"left":    {input: "left", want: AlignStart},
		"top":     {input: "TOP", want: AlignStart},
		"middle":  {input: "middle", want: AlignCenter},
		"bottom":  {input: "bottom", want: AlignEnd},
		"unknown": {input: "baseline", want: AlignStretch, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAlign(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlign(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAlign(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
