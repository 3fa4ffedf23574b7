package alphabet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/genobit/kmerpack/errs"
)

func TestPredefinedAlphabets(t *testing.T) {
	tests := []struct {
		alpha  *Alphabet
		name   string
		size   int
		bitsPC uint
		kind   ComplementKind
	}{
		{DNA, "DNA", 4, 2, ComplementXOR},
		{RNA, "RNA", 4, 2, ComplementXOR},
		{DNA5, "DNA5", 5, 3, ComplementTable},
		{DNA16, "DNA16", 16, 4, ComplementBitReverse},
		{ASCII, "ASCII", 256, 8, ComplementTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, tt.alpha.Name())
			require.Equal(t, tt.size, tt.alpha.Size())
			require.Equal(t, tt.bitsPC, tt.alpha.BitsPerChar())
			require.Equal(t, tt.kind, tt.alpha.ComplementKind())
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	t.Run("DNA codes", func(t *testing.T) {
		require.Equal(t, uint8(0), DNA.Encode('A'))
		require.Equal(t, uint8(1), DNA.Encode('C'))
		require.Equal(t, uint8(2), DNA.Encode('G'))
		require.Equal(t, uint8(3), DNA.Encode('T'))
	})

	t.Run("round trip over valid symbols", func(t *testing.T) {
		for _, a := range []*Alphabet{DNA, RNA, DNA5, DNA16, ASCII} {
			for code := 0; code < a.Size(); code++ {
				ch := a.Decode(uint8(code))
				require.Equal(t, uint8(code), a.Encode(ch),
					"%s: code %d decodes to %q", a.Name(), code, ch)
			}
		}
	})

	t.Run("lowercase folds to uppercase codes", func(t *testing.T) {
		require.Equal(t, DNA.Encode('A'), DNA.Encode('a'))
		require.Equal(t, DNA.Encode('T'), DNA.Encode('t'))
		require.Equal(t, DNA5.Encode('N'), DNA5.Encode('n'))
	})

	t.Run("unknown bytes encode to zero", func(t *testing.T) {
		require.Equal(t, uint8(0), DNA.Encode('X'))
		require.Equal(t, uint8(0), DNA.Encode(0xf7))
	})

	t.Run("out-of-range codes decode to placeholder", func(t *testing.T) {
		require.Equal(t, byte('?'), DNA.Decode(4))
		require.Equal(t, byte('?'), DNA5.Decode(7))
	})

	t.Run("ASCII is the identity and keeps case", func(t *testing.T) {
		require.Equal(t, uint8('a'), ASCII.Encode('a'))
		require.Equal(t, uint8('A'), ASCII.Encode('A'))
		require.Equal(t, byte(0x00), ASCII.Decode(0))
		require.Equal(t, byte(0xff), ASCII.Decode(0xff))
	})
}

func TestComplement(t *testing.T) {
	t.Run("DNA pairs", func(t *testing.T) {
		require.Equal(t, DNA.Encode('T'), DNA.Complement(DNA.Encode('A')))
		require.Equal(t, DNA.Encode('G'), DNA.Complement(DNA.Encode('C')))
		require.Equal(t, uint8(0b11), DNA.XORMask())
	})

	t.Run("involution for all alphabets", func(t *testing.T) {
		for _, a := range []*Alphabet{DNA, RNA, DNA5, DNA16, ASCII} {
			for code := 0; code < a.Size(); code++ {
				c := uint8(code)
				require.Equal(t, c, a.Complement(a.Complement(c)),
					"%s: code %d", a.Name(), code)
			}
		}
	})

	t.Run("DNA5 leaves N fixed", func(t *testing.T) {
		n := DNA5.Encode('N')
		require.Equal(t, n, DNA5.Complement(n))
	})

	t.Run("DNA16 complements presence bits", func(t *testing.T) {
		// A=0001 <-> T=1000, C=0010 <-> G=0100, N=1111 fixed.
		require.Equal(t, DNA16.Encode('T'), DNA16.Complement(DNA16.Encode('A')))
		require.Equal(t, DNA16.Encode('G'), DNA16.Complement(DNA16.Encode('C')))
		require.Equal(t, DNA16.Encode('N'), DNA16.Complement(DNA16.Encode('N')))
		// R (A|G) complements to Y (C|T).
		require.Equal(t, DNA16.Encode('Y'), DNA16.Complement(DNA16.Encode('R')))
	})

	t.Run("out-of-range codes pass through", func(t *testing.T) {
		require.Equal(t, uint8(9), DNA.Complement(9))
	})
}

func TestNewValidation(t *testing.T) {
	t.Run("rejects empty symbol list", func(t *testing.T) {
		_, err := New("empty", nil, nil)
		require.ErrorIs(t, err, errs.ErrEmptyAlphabet)
	})

	t.Run("rejects oversized symbol list", func(t *testing.T) {
		syms := make([]byte, 257)
		_, err := New("big", syms, syms)
		require.ErrorIs(t, err, errs.ErrAlphabetTooLarge)
	})

	t.Run("rejects length mismatch", func(t *testing.T) {
		_, err := New("mismatch", []byte("ACGT"), []byte("TGC"))
		require.ErrorIs(t, err, errs.ErrComplementMismatch)
	})

	t.Run("rejects non-involution complement", func(t *testing.T) {
		// A->B, B->C, C->A is a 3-cycle, not an involution.
		_, err := New("cycle", []byte("ABC"), []byte("BCA"))
		require.ErrorIs(t, err, errs.ErrComplementNotInvolution)
	})

	t.Run("accepts identity complement", func(t *testing.T) {
		a, err := New("id", []byte("XY"), []byte("XY"))
		require.NoError(t, err)
		require.Equal(t, uint(1), a.BitsPerChar())
	})
}

func TestBitsPerCharDerivation(t *testing.T) {
	tests := []struct {
		size int
		bits uint
	}{
		{1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4}, {16, 4}, {17, 5}, {32, 5}, {33, 6}, {64, 6}, {65, 7}, {128, 7}, {129, 8}, {256, 8},
	}

	for _, tt := range tests {
		syms := make([]byte, tt.size)
		for i := range syms {
			syms[i] = byte(i)
		}
		a, err := New("sized", syms, syms)
		require.NoError(t, err)
		require.Equal(t, tt.bits, a.BitsPerChar(), "size %d", tt.size)
	}
}
