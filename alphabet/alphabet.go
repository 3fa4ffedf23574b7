// Package alphabet defines the symbol tables that map sequence characters
// to compact bit codes and back.
//
// An Alphabet is immutable once built. It exposes the number of valid
// symbols, the number of bits needed to encode one symbol
// (ceil(log2(size))), and a complement mapping used for reverse
// complementation of nucleotide sequences.
//
// The predefined alphabets cover the common genomics encodings:
//   - DNA: A/C/G/T at 2 bits per symbol
//   - RNA: A/C/G/U at 2 bits per symbol
//   - DNA5: A/C/G/T/N at 3 bits per symbol
//   - DNA16: full IUPAC ambiguity codes at 4 bits per symbol
//   - ASCII: raw bytes at 8 bits per symbol
//
// The complement kind of an alphabet determines which reverse-complement
// fast paths apply: DNA and RNA complement via a fixed XOR mask, DNA16
// complements by reversing the bits of each 4-bit code (each bit marks the
// presence of one base, and complementation swaps A with T and C with G),
// and everything else goes through a lookup table.
package alphabet

import (
	"fmt"
	"math/bits"

	"github.com/genobit/kmerpack/errs"
)

// ComplementKind classifies how an alphabet's complement mapping can be
// computed, which decides whether word-parallel reverse-complement paths
// are available.
type ComplementKind uint8

const (
	// ComplementTable means the complement is only available through the
	// per-symbol lookup table.
	ComplementTable ComplementKind = iota
	// ComplementXOR means complement(code) == code XOR XORMask() for every
	// valid code, so whole words can be complemented in one operation.
	ComplementXOR
	// ComplementBitReverse means complement(code) is the bit-reversal of
	// the code within its BitsPerChar() bits, so reverse-complement reduces
	// to a plain bit reversal of the packed value.
	ComplementBitReverse
)

func (k ComplementKind) String() string {
	switch k {
	case ComplementTable:
		return "Table"
	case ComplementXOR:
		return "XOR"
	case ComplementBitReverse:
		return "BitReverse"
	default:
		return "Unknown"
	}
}

// Alphabet maps sequence characters to compact codes and back.
//
// Encode maps unknown input bytes to code 0, mirroring the behavior of
// common sequence readers that fold anything unexpected onto the first
// symbol. Callers that need strict validation should pre-screen input.
type Alphabet struct {
	name    string
	symbols []byte  // code -> canonical character
	comp    []uint8 // code -> complement code
	encode  [256]uint8
	size    int
	bitsPC  uint
	kind    ComplementKind
	xorMask uint8
}

// New builds an Alphabet from a canonical symbol list and a parallel list
// of complement symbols. symbols[i] is the character for code i, and
// complement[i] is the character whose code is the complement of code i.
//
// Lowercase ASCII letters encode to the same codes as their uppercase
// forms. BitsPerChar is derived as ceil(log2(len(symbols))).
func New(name string, symbols, complement []byte) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("alphabet %s: %w", name, errs.ErrEmptyAlphabet)
	}
	if len(symbols) > 256 {
		return nil, fmt.Errorf("alphabet %s: %w: %d symbols", name, errs.ErrAlphabetTooLarge, len(symbols))
	}
	if len(complement) != len(symbols) {
		return nil, fmt.Errorf("alphabet %s: %w: %d symbols, %d complements",
			name, errs.ErrComplementMismatch, len(symbols), len(complement))
	}

	a := &Alphabet{
		name:    name,
		size:    len(symbols),
		bitsPC:  bitsFor(len(symbols)),
		symbols: append([]byte(nil), symbols...),
		comp:    make([]uint8, len(symbols)),
	}

	for code, ch := range symbols {
		a.encode[ch] = uint8(code)
		if ch >= 'A' && ch <= 'Z' {
			a.encode[ch+'a'-'A'] = uint8(code)
		}
	}
	for code, ch := range complement {
		a.comp[code] = a.encode[ch]
	}
	if err := a.checkInvolution(); err != nil {
		return nil, err
	}
	a.classifyComplement()

	return a, nil
}

// Name returns the alphabet's display name.
func (a *Alphabet) Name() string { return a.name }

// Size returns the number of valid symbols.
func (a *Alphabet) Size() int { return a.size }

// BitsPerChar returns the number of bits used to encode one symbol.
func (a *Alphabet) BitsPerChar() uint { return a.bitsPC }

// Encode maps a character to its compact code. Unmapped bytes yield 0.
func (a *Alphabet) Encode(ch byte) uint8 { return a.encode[ch] }

// Decode maps a compact code back to its canonical character.
// Codes outside [0, Size) decode to '?'.
func (a *Alphabet) Decode(code uint8) byte {
	if int(code) >= a.size {
		return '?'
	}

	return a.symbols[code]
}

// Complement returns the complement code for the given code.
// Codes outside [0, Size) are returned unchanged.
func (a *Alphabet) Complement(code uint8) uint8 {
	if int(code) >= a.size {
		return code
	}

	return a.comp[code]
}

// ComplementKind reports how the complement mapping can be computed.
func (a *Alphabet) ComplementKind() ComplementKind { return a.kind }

// XORMask returns the mask m with Complement(c) == c^m for every valid
// code. Only meaningful when ComplementKind() is ComplementXOR.
func (a *Alphabet) XORMask() uint8 { return a.xorMask }

// checkInvolution verifies complement(complement(c)) == c for all codes.
func (a *Alphabet) checkInvolution() error {
	for code := range a.size {
		if int(a.comp[a.comp[code]]) != code {
			return fmt.Errorf("alphabet %s: %w: code %d", a.name, errs.ErrComplementNotInvolution, code)
		}
	}

	return nil
}

// classifyComplement detects the XOR and bit-reverse special forms that
// enable word-parallel reverse-complement.
func (a *Alphabet) classifyComplement() {
	a.kind = ComplementTable

	// XOR form: complement(c) == c ^ m with m fixed. The mask candidate
	// comes from code 0 and must hold for every code.
	mask := a.comp[0]
	isXOR := true
	for code := range a.size {
		if a.comp[code] != uint8(code)^mask {
			isXOR = false
			break
		}
	}
	if isXOR {
		a.kind = ComplementXOR
		a.xorMask = mask

		return
	}

	// Bit-reverse form: complement(c) reverses c within bitsPC bits.
	// Requires the full code space to be populated, otherwise a reversed
	// code could fall outside the alphabet.
	if a.size != 1<<a.bitsPC {
		return
	}
	for code := range a.size {
		rev := bits.Reverse8(uint8(code)) >> (8 - a.bitsPC)
		if a.comp[code] != rev {
			return
		}
	}
	a.kind = ComplementBitReverse
}

func bitsFor(size int) uint {
	if size <= 1 {
		return 1
	}

	return uint(bits.Len(uint(size - 1)))
}

func mustNew(name string, symbols, complement []byte) *Alphabet {
	a, err := New(name, symbols, complement)
	if err != nil {
		panic(err)
	}

	return a
}

var (
	// DNA is the 2-bit A/C/G/T alphabet. Complement is A<->T, C<->G,
	// which is an XOR with 0b11 in this code assignment.
	DNA = mustNew("DNA", []byte("ACGT"), []byte("TGCA"))

	// RNA is the 2-bit A/C/G/U alphabet with the same code layout as DNA.
	RNA = mustNew("RNA", []byte("ACGU"), []byte("UGCA"))

	// DNA5 is the 3-bit A/C/G/T/N alphabet. N is self-complementary.
	DNA5 = mustNew("DNA5", []byte("ACGTN"), []byte("TGCAN"))

	// DNA16 covers the full IUPAC ambiguity codes at 4 bits per symbol.
	// Each bit marks the presence of one base (bit 0 = A, bit 1 = C,
	// bit 2 = G, bit 3 = T), so complementation is a bit reversal of the
	// 4-bit code. Code 0 is the gap character.
	DNA16 = mustNew("DNA16",
		[]byte{'-', 'A', 'C', 'M', 'G', 'R', 'S', 'V', 'T', 'W', 'Y', 'H', 'K', 'D', 'B', 'N'},
		[]byte{'-', 'T', 'G', 'K', 'C', 'Y', 'S', 'B', 'A', 'W', 'R', 'D', 'M', 'H', 'V', 'N'})

	// ASCII is the identity 8-bit alphabet. It has no biological
	// complement; Complement is the identity mapping.
	ASCII = newASCII()
)

// newASCII builds the identity byte alphabet directly; the table-based
// constructor would fold lowercase onto uppercase, which is wrong here.
func newASCII() *Alphabet {
	a := &Alphabet{
		name:    "ASCII",
		size:    256,
		bitsPC:  8,
		symbols: make([]byte, 256),
		comp:    make([]uint8, 256),
	}
	for i := range 256 {
		a.symbols[i] = byte(i)
		a.comp[i] = uint8(i)
		a.encode[i] = uint8(i)
	}
	a.kind = ComplementTable

	return a
}
