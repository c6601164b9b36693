package config

import (
	"errors"
	"testing"
)

// TestNewDefaults tests the compiled-in defaults.
func TestNewDefaults(t *testing.T) {
	t.Parallel()

	cfg := New()
	if cfg.Threads != DefaultThreads {
		t.Errorf("Threads = %d, expected %d", cfg.Threads, DefaultThreads)
	}
	if cfg.Chars != DefaultChars {
		t.Errorf("Chars = %d, expected %d", cfg.Chars, DefaultChars)
	}
	if cfg.CharsetSize != DefaultCharsetSize {
		t.Errorf("CharsetSize = %d, expected %d", cfg.CharsetSize, DefaultCharsetSize)
	}
	if cfg.ASCIIOffset != DefaultASCIIOffset {
		t.Errorf("ASCIIOffset = %d, expected %d", cfg.ASCIIOffset, DefaultASCIIOffset)
	}

	// The defaults themselves must keep the charset window inside ASCII.
	if DefaultASCIIOffset+DefaultCharsetSize-1 > 127 {
		t.Error("default charset window exceeds ASCII range")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

// TestValidate tests each validation sentinel.
func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{"valid", func(*Config) {}, nil},
		{"zero threads", func(c *Config) { c.Threads = 0 }, ErrInvalidThreads},
		{"negative threads", func(c *Config) { c.Threads = -2 }, ErrInvalidThreads},
		{"zero count", func(c *Config) { c.Count = 0 }, ErrInvalidCount},
		{"zero chars", func(c *Config) { c.Chars = 0 }, ErrInvalidChars},
		{"chars over byte", func(c *Config) { c.Chars = 256 }, ErrInvalidChars},
		{"zero charset", func(c *Config) { c.CharsetSize = 0 }, ErrInvalidCharsetSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := New()
			tc.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.expected) {
				t.Errorf("got error %v, expected %v", err, tc.expected)
			}
		})
	}
}

// TestValidateAllowsNonASCIIWindow tests that an out-of-range charset
// window passes validation; the reduction function reports it at
// runtime instead.
func TestValidateAllowsNonASCIIWindow(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.ASCIIOffset = 200
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

// TestApplyProfile tests flag-over-file precedence.
func TestApplyProfile(t *testing.T) {
	t.Parallel()

	cfg := New()
	profile := Profile{Threads: 8, NumLinks: 500, Algorithm: "sha256"}

	// threads was set on the command line; it must survive.
	cfg.Threads = 2
	cfg.ApplyProfile(profile, map[string]bool{"threads": true})

	if cfg.Threads != 2 {
		t.Errorf("Threads = %d, expected flag value 2 to win", cfg.Threads)
	}
	if cfg.NumLinks != 500 {
		t.Errorf("NumLinks = %d, expected profile value 500", cfg.NumLinks)
	}
	if cfg.Algorithm != "sha256" {
		t.Errorf("Algorithm = %q, expected profile value %q", cfg.Algorithm, "sha256")
	}
	// Unset in profile: default survives.
	if cfg.CharsetSize != DefaultCharsetSize {
		t.Errorf("CharsetSize = %d, expected default %d", cfg.CharsetSize, DefaultCharsetSize)
	}
}
