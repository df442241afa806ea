package crypto

import (
	"strings"
	"testing"
)

func TestIsValidHex(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"42", true},
		{"deadbeef", true},
		{"DEADBEEF", true},
		{"dEaDbEeF0123456789", true},
		{"g", false},
		{"0x42", false},
		{"dead beef", false},
		{"café", false},
	}
	for _, tc := range tests {
		if got := IsValidHex(tc.input); got != tc.expected {
			t.Errorf("IsValidHex(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestDigestValidators(t *testing.T) {
	md5 := strings.Repeat("a", 32)
	sha1 := strings.Repeat("b", 40)
	sha256 := strings.Repeat("c", 64)

	tests := []struct {
		name     string
		fn       func(string) bool
		input    string
		expected bool
	}{
		{"md5 valid", IsValidMD5, md5, true},
		{"md5 upper", IsValidMD5, strings.ToUpper(md5), true},
		{"md5 short", IsValidMD5, md5[:31], false},
		{"md5 long", IsValidMD5, md5 + "a", false},
		{"md5 non-hex", IsValidMD5, strings.Repeat("z", 32), false},
		{"md5 empty", IsValidMD5, "", false},
		{"sha1 valid", IsValidSHA1, sha1, true},
		{"sha1 wrong length", IsValidSHA1, sha256, false},
		{"sha1 non-hex", IsValidSHA1, strings.Repeat("x", 40), false},
		{"sha256 valid", IsValidSHA256, sha256, true},
		{"sha256 wrong length", IsValidSHA256, md5, false},
		{"sha256 non-hex", IsValidSHA256, strings.Repeat("q", 64), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn(tc.input); got != tc.expected {
				t.Errorf("%s: got %v, want %v for %q", tc.name, got, tc.expected, tc.input)
			}
		})
	}
}

func TestHexToInt(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"42", 66},
		{"a", 10},
		{"0", 0},
		{"ff", 255},
		{"DEAD", 57005},
	}
	for _, tc := range tests {
		got, err := HexToInt(tc.input)
		if err != nil {
			t.Fatalf("HexToInt(%q) returned error: %v", tc.input, err)
		}
		if got != tc.expected {
			t.Errorf("HexToInt(%q) = %d, want %d", tc.input, got, tc.expected)
		}
	}
}

func TestHexToInt_Invalid(t *testing.T) {
	for _, input := range []string{"", "zz", "0x42", "12.3"} {
		if _, err := HexToInt(input); err == nil {
			t.Errorf("HexToInt(%q) expected error, got nil", input)
		}
	}
}
