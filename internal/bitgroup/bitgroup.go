// Package bitgroup implements padding-safe operations on multi-word bit
// arrays whose payload is a sequence of fixed-width bit groups.
//
// A bit array is a little-endian word slice: word 0 holds the least
// significant bits of the value, and bit position p lives in word p/wordBits
// at in-word offset p%wordBits. Groups of bits (symbol codes) are packed
// from position 0 upward; the unused high-order bits of the last word are
// padding and must stay zero, since equality, ordering and hashing all
// operate on the full word slice.
//
// All functions treat their slices as exact-length arrays: operands of a
// binary operation must have equal length, and the caller guarantees that
// padding bits of every operand are already zero.
package bitgroup

import "unsafe"

// Word constrains the machine word types a bit array can be built from.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// WordBits returns the width of W in bits.
func WordBits[W Word]() uint {
	var w W

	return uint(unsafe.Sizeof(w)) * 8
}

// PadMask returns the mask that keeps the payload bits of the highest word
// of an array with the given total payload width. ANDing the top word with
// this mask re-zeroes the padding. A zero return means the top word is all
// padding-free (payload fills it exactly).
func PadMask[W Word](payloadBits uint) W {
	wb := WordBits[W]()
	rem := payloadBits % wb
	if rem == 0 {
		var all W

		return ^all
	}

	var one W = 1

	return one<<rem - 1
}

// Equal reports whether two equal-length bit arrays hold the same value.
func Equal[W Word](a, b []W) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Less reports whether a < b under big-endian multi-word unsigned
// comparison: the most significant word decides first.
func Less[W Word](a, b []W) bool {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// Compare returns -1, 0 or 1 as a is less than, equal to, or greater
// than b under the same ordering as Less.
func Compare[W Word](a, b []W) int {
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	return 0
}

// And stores a AND b into dst. dst may alias a or b.
func And[W Word](dst, a, b []W) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

// Or stores a OR b into dst. dst may alias a or b.
func Or[W Word](dst, a, b []W) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

// Xor stores a XOR b into dst. dst may alias a or b.
func Xor[W Word](dst, a, b []W) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// ShiftLeft shifts the array in place toward higher significance by n bits,
// carrying across word boundaries. Bits shifted past the top word are lost;
// shifting by the total width or more zeroes the array; n == 0 is the
// identity. The caller is responsible for re-masking padding afterwards.
func ShiftLeft[W Word](w []W, n uint) {
	wb := WordBits[W]()
	if n >= uint(len(w))*wb {
		clear(w)

		return
	}

	wordShift := int(n / wb)
	bitShift := n % wb

	if bitShift == 0 {
		copy(w[wordShift:], w[:len(w)-wordShift])
	} else {
		// Walk from the top so source words are read before overwrite.
		for i := len(w) - 1; i > wordShift; i-- {
			w[i] = w[i-wordShift]<<bitShift | w[i-wordShift-1]>>(wb-bitShift)
		}
		w[wordShift] = w[0] << bitShift
	}
	clear(w[:wordShift])
}

// ShiftRight shifts the array in place toward lower significance by n bits,
// carrying across word boundaries. Zeros enter at the top, so the padding
// invariant is preserved when it held before. Shifting by the total width
// or more zeroes the array; n == 0 is the identity.
func ShiftRight[W Word](w []W, n uint) {
	wb := WordBits[W]()
	if n >= uint(len(w))*wb {
		clear(w)

		return
	}

	wordShift := int(n / wb)
	bitShift := n % wb
	top := len(w) - wordShift

	if bitShift == 0 {
		copy(w, w[wordShift:])
	} else {
		for i := 0; i < top-1; i++ {
			w[i] = w[i+wordShift]>>bitShift | w[i+wordShift+1]<<(wb-bitShift)
		}
		w[top-1] = w[len(w)-1] >> bitShift
	}
	clear(w[top:])
}

// Get extracts the group of the given width starting at bit position pos.
// The group may straddle two adjacent words. width must be at most 8.
func Get[W Word](w []W, pos, width uint) uint8 {
	wb := WordBits[W]()
	idx := pos / wb
	off := pos % wb
	mask := uint8(1)<<width - 1 // width==8 wraps to 0xff

	code := uint8(w[idx] >> off)
	if off+width > wb {
		code |= uint8(w[idx+1]) << (wb - off)
	}

	return code & mask
}

// Set writes the group of the given width at bit position pos, replacing
// whatever was there. The group may straddle two adjacent words. width must
// be at most 8 and code must fit in width bits.
func Set[W Word](w []W, pos, width uint, code uint8) {
	wb := WordBits[W]()
	idx := pos / wb
	off := pos % wb

	var one W = 1
	mask := one<<width - 1 // width==wordBits wraps to all ones

	w[idx] = w[idx]&^(mask<<off) | W(code)<<off
	if off+width > wb {
		spill := wb - off
		w[idx+1] = w[idx+1]&^(mask>>spill) | W(code)>>spill
	}
}
