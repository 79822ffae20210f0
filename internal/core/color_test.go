package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		wantErr  bool
	}{
		{"purple", ColorPurple, false},
		{"Light_Gray", ColorLightGray, false},
		{" pink ", ColorPink, false},
		{"chartreuse", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseColor(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			}
			if c != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, c, tc.expected)
			}
		})
	}
}

func TestColorRoundTripNames(t *testing.T) {
	for c := ColorDefault; c <= ColorLightGray; c++ {
		parsed, err := ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("ParseColor(%q) = %v, expected %v", c.String(), parsed, c)
		}
	}
}
