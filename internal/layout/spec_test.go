package layout

import "testing"

func TestMeasureSpec_EncodeDecode(t *testing.T) {
	type tc struct {
		spec     MeasureSpec
		expected MeasureSpec
	}

	tests := map[string]tc{
		"exactly": {
			spec:     MakeMeasureSpec(120, Exactly),
			expected: MeasureSpec{Size: 120, Mode: Exactly},
		},
		"at most": {
			spec:     MakeMeasureSpec(640, AtMost),
			expected: MeasureSpec{Size: 640, Mode: AtMost},
		},
		"unspecified zero": {
			spec:     unspecifiedSpec(),
			expected: MeasureSpec{Size: 0, Mode: Unspecified},
		},
		"max size": {
			spec:     MakeMeasureSpec(MaxSize, AtMost),
			expected: MeasureSpec{Size: MaxSize, Mode: AtMost},
		},
		"negative clamps to zero": {
			spec:     MakeMeasureSpec(-5, Exactly),
			expected: MeasureSpec{Size: 0, Mode: Exactly},
		},
		"oversized clamps to max": {
			spec:     MakeMeasureSpec(MaxSize+10, Exactly),
			expected: MeasureSpec{Size: MaxSize, Mode: Exactly},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.spec != tt.expected {
				t.Errorf("MakeMeasureSpec() = %v, want %v", tt.spec, tt.expected)
			}
			if got := DecodeMeasureSpec(tt.spec.Encode()); got != tt.expected {
				t.Errorf("DecodeMeasureSpec(Encode()) = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestResolveSizeAndState(t *testing.T) {
	type tc struct {
		size       int
		spec       MeasureSpec
		childState int
		expected   int
	}

	tests := map[string]tc{
		"exactly ignores content": {
			size:     10,
			spec:     MakeMeasureSpec(50, Exactly),
			expected: 50,
		},
		"at most keeps smaller content": {
			size:     30,
			spec:     MakeMeasureSpec(50, AtMost),
			expected: 30,
		},
		"at most clamps larger content and flags it": {
			size:     80,
			spec:     MakeMeasureSpec(50, AtMost),
			expected: 50 | MeasuredStateTooSmall,
		},
		"unspecified returns content": {
			size:     80,
			spec:     unspecifiedSpec(),
			expected: 80,
		},
		"child state is carried": {
			size:       10,
			spec:       MakeMeasureSpec(50, Exactly),
			childState: MeasuredStateTooSmall | 0x7,
			expected:   50 | MeasuredStateTooSmall,
		},
		"negative content clamps to zero": {
			size:     -4,
			spec:     unspecifiedSpec(),
			expected: 0,
		},
		"huge content saturates below state bits": {
			size:     MaxSize,
			spec:     unspecifiedSpec(),
			expected: MeasuredSizeMask,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ResolveSizeAndState(tt.size, tt.spec, tt.childState)
			if got != tt.expected {
				t.Errorf("ResolveSizeAndState(%d, %v, %#x) = %#x, want %#x",
					tt.size, tt.spec, tt.childState, got, tt.expected)
			}
			if size := ResolveSize(tt.size, tt.spec); size != tt.expected&MeasuredSizeMask {
				t.Errorf("ResolveSize() = %d, want %d", size, tt.expected&MeasuredSizeMask)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	type tc struct {
		input    string
		expected Mode
		wantErr  bool
	}

	tests := map[string]tc{
		"empty":       {input: "", expected: Unspecified},
		"unspecified": {input: "unspecified", expected: Unspecified},
		"exactly":     {input: "exactly", expected: Exactly},
		"exact alias": {input: "exact", expected: Exactly},
		"atmost":      {input: "atmost", expected: AtMost},
		"at-most":     {input: "at-most", expected: AtMost},
		"unknown":     {input: "sometimes", expected: Unspecified, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if !tt.wantErr && tt.input != "" && tt.input != "exact" && tt.input != "at-most" && got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}

func unspecifiedSpec() MeasureSpec {
	return MeasureSpec{Mode: Unspecified}
}
