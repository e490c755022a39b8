// Package base62 encodes non-negative integers into the [0-9a-zA-Z] alphabet
// used for short codes.
package base62

import (
	"errors"
	"strings"
)

const (
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	base     = uint64(len(alphabet))
)

var (
	// ErrInvalidCharacter is returned by Decode when the input contains a symbol outside the alphabet.
	ErrInvalidCharacter = errors.New("invalid base62 character")
	// ErrOverflow is returned by Decode when the input does not fit into uint64.
	ErrOverflow = errors.New("base62 value overflows uint64")
)

// Encode returns the positional base62 representation of n.
// Zero encodes to the empty string.
func Encode(n uint64) string {
	var buf [11]byte // 62^11 > 2^64
	i := len(buf)

	for n > 0 {
		i--
		buf[i] = alphabet[n%base]
		n /= base
	}

	return string(buf[i:])
}

// EncodePadded returns Encode(n) left-padded with the zero symbol to at least width characters.
func EncodePadded(n uint64, width int) string {
	s := Encode(n)
	if len(s) >= width {
		return s
	}

	return strings.Repeat(string(alphabet[0]), width-len(s)) + s
}

// Decode converts s back to the integer it encodes. Leading zero symbols are ignored.
func Decode(s string) (uint64, error) {
	var n uint64

	for i := 0; i < len(s); i++ {
		d := index(s[i])
		if d < 0 {
			return 0, ErrInvalidCharacter
		}

		if n > (^uint64(0)-uint64(d))/base {
			return 0, ErrOverflow
		}

		n = n*base + uint64(d)
	}

	return n, nil
}

// IsValid reports whether every symbol of s belongs to the alphabet.
func IsValid(s string) bool {
	for i := 0; i < len(s); i++ {
		if index(s[i]) < 0 {
			return false
		}
	}

	return true
}

func index(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 36
	default:
		return -1
	}
}
