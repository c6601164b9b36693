package rainbow

import "fmt"

// Params holds the reduction parameters shared by table generation and
// cracking. They are fixed per table and recorded in its header.
type Params struct {
	// PasswordLength is the length of every produced plaintext.
	PasswordLength int

	// CharsetSize is the modulus applied to each accumulated value.
	CharsetSize uint64

	// ASCIIOffset is added after the modulus to produce a code point.
	ASCIIOffset uint64
}

// Reducer maps digest bytes to a candidate plaintext for a given chain
// position. The position argument exists so a position-aware reduction
// family can be substituted; the default implementation ignores it.
type Reducer interface {
	Reduce(digest []byte, position uint64) (string, error)
}

// modReducer is the default reduction function. It applies the same
// mapping at every chain position, which is a documented simplification
// of this table format: colliding chains merge instead of diverging.
type modReducer struct {
	params Params
}

// NewReducer returns the default position-independent reducer for params.
func NewReducer(params Params) Reducer {
	return &modReducer{params: params}
}

// Reduce derives a fixed-length plaintext from digest.
//
// For each output character, four digest bytes are consumed cyclically
// (wrapping when the digest is shorter than needed) into an accumulator
// seeded with the offset via repeated shift-left-8 and add. The
// accumulator modulo the charset size, plus the offset, is the character's
// code point. A code point above 127 fails with ErrNonASCII; keeping
// offset+charsetSize-1 within ASCII is the caller's responsibility and is
// deliberately not validated at table-creation time.
func (r *modReducer) Reduce(digest []byte, _ uint64) (string, error) {
	p := r.params
	out := make([]byte, 0, p.PasswordLength)
	cursor := 0

	for range p.PasswordLength {
		acc := p.ASCIIOffset
		for range 4 {
			var b byte
			if len(digest) > 0 {
				b = digest[cursor%len(digest)]
				cursor++
			}
			acc = acc<<8 + uint64(b)
		}

		codePoint := p.ASCIIOffset + acc%p.CharsetSize
		if codePoint > 127 {
			return "", fmt.Errorf("%w: %d", ErrNonASCII, codePoint)
		}
		out = append(out, byte(codePoint))
	}

	return string(out), nil
}
