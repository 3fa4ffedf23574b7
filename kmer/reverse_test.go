package kmer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/genobit/kmerpack/alphabet"
)

// The reversal vectors reverse the symbol order of the 112-bit value
// 0xabba56781234deadbeef01c0ffee at each symbol width. Expected values
// are the same bits re-grouped and reversed, as 16-bit words low first.
var (
	reverseInput = []uint16{0xffee, 0x01c0, 0xbeef, 0xdead, 0x1234, 0x5678, 0xabba}

	// 0xbbff0340fbbe7ab71c842d95aeea
	reverseEx2 = []uint16{0xaeea, 0x2d95, 0x1c84, 0x7ab7, 0xfbbe, 0x0340, 0xbbff}
	// 0x6bff23113ebedabd34a427952faa
	reverseEx3 = []uint16{0x2faa, 0x2795, 0x34a4, 0xdabd, 0x3ebe, 0x2311, 0x6bff}
	// 0xeeff0c10feebdaed43218765abba
	reverseEx4 = []uint16{0xabba, 0x8765, 0x4321, 0xdaed, 0xfeeb, 0x0c10, 0xeeff}
	// 0x1dff8780e77cd5f5ba40b13ad375
	reverseEx5 = []uint16{0xd375, 0xb13a, 0xba40, 0xd5f5, 0xe77c, 0x8780, 0x1dff}
	// 0xddfc18ee1777d6bda6440cf2b755
	reverseEx7 = []uint16{0xb755, 0x0cf2, 0xa644, 0xd6bd, 0x1777, 0x18ee, 0xddfc}
)

// allStrategies returns the tiers applicable to the class's symbol
// width: every tier for power-of-two widths, sequential alone otherwise.
func allStrategies(alpha *alphabet.Alphabet) []ReversalStrategy {
	switch alpha.BitsPerChar() {
	case 1, 2, 4, 8:
		return []ReversalStrategy{ReversalSequential, ReversalByteSwap, ReversalSWAR, ReversalShuffle}
	default:
		return []ReversalStrategy{ReversalSequential}
	}
}

func TestReverse112(t *testing.T) {
	cases := []struct {
		name  string
		alpha *alphabet.Alphabet
		k     int
		want  []uint16
	}{
		{"2-bit x56", alphabet.DNA, 56, reverseEx2},
		{"3-bit x37", alphabet.DNA5, 37, reverseEx3},
		{"4-bit x28", alphabet.DNA16, 28, reverseEx4},
		{"5-bit x22", alpha5, 22, reverseEx5},
		{"7-bit x16", alpha7, 16, reverseEx7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, s := range allStrategies(tc.alpha) {
				c, err := NewClass[uint16](tc.k, tc.alpha, WithReversal[uint16](s))
				require.NoError(t, err)

				in := c.FromWords(reverseInput)
				want := c.FromWords(tc.want)

				got := in.Reverse()
				require.True(t, got.Equal(want), "%s: got %v want %v",
					s, got.Words(), want.Words())
			}
		})
	}
}

func TestReverse112AcrossWordTypes(t *testing.T) {
	// The same 2-bit reversal through 8-, 32- and 64-bit internal words.
	in8 := []uint8{
		0xee, 0xff, 0xc0, 0x01, 0xef, 0xbe, 0xad, 0xde,
		0x34, 0x12, 0x78, 0x56, 0xba, 0xab,
	}
	want8 := []uint8{
		0xea, 0xae, 0x95, 0x2d, 0x84, 0x1c, 0xb7, 0x7a,
		0xbe, 0xfb, 0x40, 0x03, 0xff, 0xbb,
	}
	in32 := []uint32{0x01c0ffee, 0xdeadbeef, 0x56781234, 0xabba}
	want32 := []uint32{0x2d95aeea, 0x7ab71c84, 0x0340fbbe, 0xbbff}
	in64 := []uint64{0xdeadbeef01c0ffee, 0xabba56781234}
	want64 := []uint64{0x7ab71c842d95aeea, 0xbbff0340fbbe}

	for _, s := range allStrategies(alphabet.DNA) {
		c8, err := NewClass[uint8](56, alphabet.DNA, WithReversal[uint8](s))
		require.NoError(t, err)
		require.True(t, c8.FromWords(in8).Reverse().Equal(c8.FromWords(want8)), "uint8 %s", s)

		c32, err := NewClass[uint32](56, alphabet.DNA, WithReversal[uint32](s))
		require.NoError(t, err)
		require.True(t, c32.FromWords(in32).Reverse().Equal(c32.FromWords(want32)), "uint32 %s", s)

		c64, err := NewClass[uint64](56, alphabet.DNA, WithReversal[uint64](s))
		require.NoError(t, err)
		require.True(t, c64.FromWords(in64).Reverse().Equal(c64.FromWords(want64)), "uint64 %s", s)
	}
}

func TestReverseString(t *testing.T) {
	c := MustClass[uint64](7, alphabet.DNA)
	require.Equal(t, "ACATTAG", c.FromString("GATTACA").Reverse().String())
}

func TestReverseComplement(t *testing.T) {
	t.Run("DNA known value", func(t *testing.T) {
		for _, s := range allStrategies(alphabet.DNA) {
			c, err := NewClass[uint64](7, alphabet.DNA, WithReversal[uint64](s))
			require.NoError(t, err)
			require.Equal(t, "TGTAATC", c.FromString("GATTACA").ReverseComplement().String(), s.String())
		}
	})

	t.Run("RNA known value", func(t *testing.T) {
		c := MustClass[uint64](4, alphabet.RNA)
		require.Equal(t, "ACGU", c.FromString("ACGU").ReverseComplement().String(),
			"ACGU is its own reverse complement")
	})

	t.Run("DNA16 ambiguity codes", func(t *testing.T) {
		for _, s := range allStrategies(alphabet.DNA16) {
			c, err := NewClass[uint64](6, alphabet.DNA16, WithReversal[uint64](s))
			require.NoError(t, err)
			// R=A|G complements to Y=C|T; gaps stay gaps.
			require.Equal(t, "YN-ACG", c.FromString("CGT-NR").ReverseComplement().String(), s.String())
		}
	})

	t.Run("DNA5 goes through the table", func(t *testing.T) {
		c := MustClass[uint64](5, alphabet.DNA5)
		require.Equal(t, "NAGTC", c.FromString("GACTN").ReverseComplement().String())
	})
}

// Tier agreement: every applicable tier must reproduce the sequential
// oracle bit for bit, for both reversal and reverse complement.
func tierAgreementCase[W Word](t *testing.T, alpha *alphabet.Alphabet, k int) {
	t.Helper()

	oracle := MustClass[W](k, alpha, WithReversal[W](ReversalSequential))
	seq := randomSeq(alpha, k, int64(k)*int64(alpha.BitsPerChar()))

	wantRev := oracle.FromString(string(seq)).Reverse()
	wantRC := oracle.FromString(string(seq)).ReverseComplement()

	for _, s := range allStrategies(alpha) {
		c, err := NewClass[W](k, alpha, WithReversal[W](s))
		require.NoError(t, err)

		km := c.FromString(string(seq))
		require.True(t, km.Reverse().Equal(wantRev),
			"reverse: %s k=%d width=%d", s, k, alpha.BitsPerChar())
		require.True(t, km.ReverseComplement().Equal(wantRC),
			"reverse complement: %s k=%d width=%d", s, k, alpha.BitsPerChar())
	}
}

func TestTierAgreement(t *testing.T) {
	alpha1 := mustTestAlphabet("Bits1", 2)
	alphabets := []*alphabet.Alphabet{
		alpha1, alphabet.DNA, alphabet.DNA5, alphabet.DNA16, alpha5, alpha6, alpha7, alphabet.ASCII,
	}

	for _, alpha := range alphabets {
		t.Run(alpha.Name(), func(t *testing.T) {
			for _, k := range []int{3, 15, 31, 63, 127, 256} {
				tierAgreementCase[uint8](t, alpha, k)
				tierAgreementCase[uint16](t, alpha, k)
				tierAgreementCase[uint32](t, alpha, k)
				tierAgreementCase[uint64](t, alpha, k)
			}
		})
	}
}

func TestReverseInvolution(t *testing.T) {
	for _, alpha := range []*alphabet.Alphabet{alphabet.DNA, alphabet.DNA5, alphabet.DNA16, alphabet.ASCII} {
		t.Run(alpha.Name(), func(t *testing.T) {
			for _, k := range []int{1, 9, 33, 64} {
				c := MustClass[uint64](k, alpha)
				km := c.FromString(string(randomSeq(alpha, k, int64(k))))

				require.True(t, km.Reverse().Reverse().Equal(km), "reverse twice, k=%d", k)
				require.True(t, km.ReverseComplement().ReverseComplement().Equal(km),
					"reverse complement twice, k=%d", k)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	c := MustClass[uint64](4, alphabet.DNA)

	t.Run("picks the smaller strand", func(t *testing.T) {
		km := c.FromString("TTTT") // rc is AAAA, which is smaller
		require.Equal(t, "AAAA", km.Canonical().String())

		km = c.FromString("AAAA")
		require.Equal(t, "AAAA", km.Canonical().String())
	})

	t.Run("strand independent", func(t *testing.T) {
		km := c.FromString("GTAC")
		require.True(t, km.Canonical().Equal(km.ReverseComplement().Canonical()))
	})

	t.Run("returns an independent copy", func(t *testing.T) {
		km := c.FromString("AACG")
		can := km.Canonical()
		km.NextFromChar('T')
		require.Equal(t, "AACG", can.String())
	})
}
