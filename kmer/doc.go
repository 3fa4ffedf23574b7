// Package kmer implements the packed k-mer codec: fixed-length symbol
// strings packed into the minimum number of machine words, built from
// character or packed bit streams and advanced one symbol at a time.
//
// # Classes and values
//
// A Class describes one concrete k-mer shape: the length k, the alphabet,
// and the word type the symbols are packed into. All widths are fixed when
// the Class is built, which is also when the reversal tier is selected, so
// no validation or dispatch happens on the hot path:
//
//	class, err := kmer.NewClass[uint64](31, alphabet.DNA)
//	if err != nil {
//	    return err
//	}
//	km := class.FromString("ACGTACGTACGTACGTACGTACGTACGTACG")
//
// A Kmer is a value: the first-consumed symbol occupies the low-order bits
// of word 0 and later symbols stack toward higher bits, crossing word
// boundaries as needed. The unused high bits of the last word are padding
// and are kept at zero by every operation, so equality, ordering and
// hashing can operate on the raw word array.
//
// # Streaming
//
// FillFromPacked builds a k-mer from a packed stream of any word width,
// tracking the read position in an explicit Cursor value. NextFromPacked
// and NextFromChar slide the window one symbol forward in O(words) time:
//
//	cur := kmer.NewCursor(stream, 0)
//	km, cur := kmer.FillFromPacked(class, cur, false)
//	for i := 1; i < n; i++ {
//	    cur = kmer.NextFromPacked(&km, cur)
//	    process(km)
//	}
//
// # Reversal
//
// Reverse and ReverseComplement run on one of four interchangeable tiers
// (sequential, byte-swap table, SWAR, shuffle-table); the tier is chosen
// per Class from the symbol width and the host CPU, and every tier
// produces bit-identical results.
package kmer
