package errors

import "testing"

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"typical", 128, 128, false},
		{"tiny", 1, 1, false},
		{"max", MaxDimension, MaxDimension, false},

		{"zero width", 0, 10, true},
		{"negative height", 10, -3, true},
		{"too wide", MaxDimension + 1, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%d, %d) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("error code = %s, want %s", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "layout.svg", false},
		{"nested", "out/layouts/islands.png", false},
		{"absolute", "/tmp/layout.json", false},
		{"dots in name", "layout..v2.svg", false},

		{"empty", "", true},
		{"traversal", "../etc/passwd", true},
		{"inner traversal", "out/../../x", true},
		{"null byte", "a\x00b", true},
		{"newline", "a\nb", true},
		{"too long", string(make([]byte, 600)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
