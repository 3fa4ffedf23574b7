package kmer

import (
	"math/rand"

	"github.com/genobit/kmerpack/alphabet"
)

// Widths without a predefined alphabet get synthetic ones: size
// 2^width symbol bytes from the high half of the byte range (so no
// ASCII-letter case folding applies), complemented by identity.
func mustTestAlphabet(name string, size int) *alphabet.Alphabet {
	syms := make([]byte, size)
	for i := range syms {
		syms[i] = byte(0x80 + i)
	}

	a, err := alphabet.New(name, syms, syms)
	if err != nil {
		panic(err)
	}

	return a
}

var (
	alpha5 = mustTestAlphabet("Bits5", 32)
	alpha6 = mustTestAlphabet("Bits6", 64)
	alpha7 = mustTestAlphabet("Bits7", 128)
)

// randomCodes returns n symbol codes of the alphabet from a fixed seed.
func randomCodes(alpha *alphabet.Alphabet, n int) []uint8 {
	rng := rand.New(rand.NewSource(int64(alpha.Size())))
	codes := make([]uint8, n)
	for i := range codes {
		codes[i] = uint8(rng.Intn(alpha.Size()))
	}

	return codes
}

// randomSeq returns n random characters drawn from the alphabet.
func randomSeq(alpha *alphabet.Alphabet, n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = alpha.Decode(uint8(rng.Intn(alpha.Size())))
	}

	return seq
}
