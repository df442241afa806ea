// Package crypto provides hashing-related utility functions for validating
// digest strings reported by package repositories.
package crypto

import "strconv"

// IsValidHex reports whether s consists only of hexadecimal digits.
// The empty string is valid hex (but never a valid digest).
func IsValidHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// IsValidMD5 reports whether s is a well-formed MD5 hash.
func IsValidMD5(s string) bool {
	return len(s) == 32 && IsValidHex(s)
}

// IsValidSHA1 reports whether s is a well-formed SHA-1 hash. Used by
// git/GitHub object identifiers.
func IsValidSHA1(s string) bool {
	return len(s) == 40 && IsValidHex(s)
}

// IsValidSHA256 reports whether s is a well-formed SHA-256 hash.
func IsValidSHA256(s string) bool {
	return len(s) == 64 && IsValidHex(s)
}

// HexToInt converts a hex string to an integer. Returns an error if s is not
// valid hex or does not fit in an int64.
func HexToInt(s string) (int64, error) {
	return strconv.ParseInt(s, 16, 64)
}
