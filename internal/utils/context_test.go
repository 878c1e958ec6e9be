package utils

import "testing"

func TestParseUUID(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		valid bool
	}{
		{
			name:  "canonical v4",
			in:    "0b92e4f0-8f3c-4ad9-9f1e-5a2b7c6d8e90",
			want:  "0b92e4f0-8f3c-4ad9-9f1e-5a2b7c6d8e90",
			valid: true,
		},
		{
			name:  "uppercase is canonicalized",
			in:    "0B92E4F0-8F3C-4AD9-9F1E-5A2B7C6D8E90",
			want:  "0b92e4f0-8f3c-4ad9-9f1e-5a2b7c6d8e90",
			valid: true,
		},
		{
			name:  "empty",
			in:    "",
			valid: false,
		},
		{
			name:  "garbage",
			in:    "not-a-uuid",
			valid: false,
		},
		{
			name:  "truncated",
			in:    "0b92e4f0-8f3c-4ad9-9f1e",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUUID(tt.in)

			if tt.valid {
				if err != nil {
					t.Fatalf("ParseUUID(%q) error = %v", tt.in, err)
				}
				if got != tt.want {
					t.Errorf("ParseUUID(%q) = %q, want %q", tt.in, got, tt.want)
				}
				return
			}

			if err == nil {
				t.Errorf("ParseUUID(%q) expected error", tt.in)
			}
		})
	}
}
