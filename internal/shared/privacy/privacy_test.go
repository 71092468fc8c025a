package privacy

import "testing"

func TestFormatUserName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		absent   bool
	}{
		{
			name:     "first and last name",
			input:    "John Doe",
			expected: "John D.",
		},
		{
			name:     "middle names are dropped",
			input:    "Jane Ann Smith",
			expected: "Jane S.",
		},
		{
			name:     "single token passes through",
			input:    "Madonna",
			expected: "Madonna",
		},
		{
			name:   "empty string yields no value",
			input:  "",
			absent: true,
		},
		{
			name:     "already abbreviated stays stable",
			input:    "John D.",
			expected: "John D.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatUserName(tt.input)

			if tt.absent {
				if got != nil {
					t.Errorf("expected nil, got %q", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %q, got nil", tt.expected)
			}
			if *got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, *got)
			}
		})
	}
}
