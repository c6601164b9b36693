package rainbow

import (
	"errors"
	"testing"
)

// TestReduceZeroDigestVector tests a hand-computed reduction.
//
// With an all-zero 16-byte digest, offset 32, and charset 95, each
// character's accumulator is 32<<32 = 137438953472; modulo 95 that is 2,
// so every character is 32+2 = '"'.
func TestReduceZeroDigestVector(t *testing.T) {
	t.Parallel()

	r := NewReducer(Params{PasswordLength: 4, CharsetSize: 95, ASCIIOffset: 32})
	got, err := r.Reduce(make([]byte, 16), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `""""` {
		t.Errorf("got %q, expected %q", got, `""""`)
	}
}

// TestReduceLengthAndRange tests that reduction always yields exactly
// passwordLength characters inside the configured charset window.
func TestReduceLengthAndRange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		digest []byte
		params Params
	}{
		{
			name:   "md5-sized digest",
			digest: []byte{0xe2, 0xfc, 0x71, 0x4c, 0x47, 0x27, 0xee, 0x93, 0x95, 0xf3, 0x24, 0xcd, 0x2e, 0x7f, 0x33, 0x1f},
			params: Params{PasswordLength: 8, CharsetSize: 95, ASCIIOffset: 32},
		},
		{
			name:   "digest shorter than needed wraps cyclically",
			digest: []byte{0x01, 0x02, 0x03},
			params: Params{PasswordLength: 12, CharsetSize: 26, ASCIIOffset: 97},
		},
		{
			name:   "empty digest treated as zero bytes",
			digest: nil,
			params: Params{PasswordLength: 5, CharsetSize: 10, ASCIIOffset: 48},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := NewReducer(tc.params)
			got, err := r.Reduce(tc.digest, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tc.params.PasswordLength {
				t.Fatalf("got length %d, expected %d", len(got), tc.params.PasswordLength)
			}
			lo := byte(tc.params.ASCIIOffset)
			hi := byte(tc.params.ASCIIOffset + tc.params.CharsetSize - 1)
			for i := 0; i < len(got); i++ {
				if got[i] < lo || got[i] > hi {
					t.Errorf("character %d = %q outside [%q, %q]", i, got[i], lo, hi)
				}
			}
		})
	}
}

// TestReduceDeterminism tests that identical inputs reduce identically.
func TestReduceDeterminism(t *testing.T) {
	t.Parallel()

	r := NewReducer(Params{PasswordLength: 6, CharsetSize: 95, ASCIIOffset: 32})
	digest := []byte{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}

	first, err := r.Reduce(digest, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.Reduce(digest, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("reduction not deterministic: %q vs %q", first, second)
	}
}

// TestReduceNonASCII tests that a charset window extending past ASCII
// fails at reduction time, not earlier.
func TestReduceNonASCII(t *testing.T) {
	t.Parallel()

	// offset 100 + charset 95 reaches code points up to 194.
	r := NewReducer(Params{PasswordLength: 4, CharsetSize: 95, ASCIIOffset: 100})

	// An all-0xff digest pushes the modulus high enough to leave ASCII.
	digest := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	_, err := r.Reduce(digest, 0)
	if !errors.Is(err, ErrNonASCII) {
		t.Errorf("got error %v, expected ErrNonASCII", err)
	}
}
