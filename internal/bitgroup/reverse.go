package bitgroup

// Group reversal tiers. All tiers reverse the ORDER of fixed-width bit
// groups while leaving each group's own bit pattern intact. The sequential
// tier reverses exactly k groups counted from bit 0 and produces an aligned
// result; the word-parallel tiers reverse every group in the full array
// (payload and padding alike), leaving the payload at the top, so callers
// realign with ShiftRight by the padding width and then re-mask.
//
// The parallel tiers require the group width to be a power of two no wider
// than a byte (1, 2, 4 or 8 bits); they are unreachable for other widths,
// where only the sequential tier is valid.

// ReverseSeq reverses the order of the k groups of the given width stored
// in src, writing the result into dst. It handles any group width and is
// the reference the parallel tiers are validated against. dst must be
// zeroed and must not alias src.
func ReverseSeq[W Word](dst, src []W, k, width uint) {
	for i := uint(0); i < k; i++ {
		Set(dst, (k-1-i)*width, width, Get(src, i*width, width))
	}
}

// ReverseSeqComplement is ReverseSeq with each group mapped through comp
// as it is moved. comp must cover every value a group can hold.
func ReverseSeqComplement[W Word](dst, src []W, k, width uint, comp []uint8) {
	for i := uint(0); i < k; i++ {
		Set(dst, (k-1-i)*width, width, comp[Get(src, i*width, width)])
	}
}

// ReverseBytes reverses all groups in the array by reversing the byte
// order of the full value and remapping each byte through a 256-entry
// table that reverses the groups inside it. width must be 1, 2, 4 or 8.
// dst must not alias src.
func ReverseBytes[W Word](dst, src []W, width uint) {
	tbl := byteRevTable(width)
	wb := WordBits[W]()
	n := len(src)
	for i := range dst {
		x := src[n-1-i]
		var out W
		for sh := uint(0); sh < wb; sh += 8 {
			out |= W(tbl[uint8(x>>sh)]) << (wb - 8 - sh)
		}
		dst[i] = out
	}
}

// ReverseSWAR reverses all groups in the array using in-register mask and
// shift swaps: each word's groups are reversed by halving swaps down to
// the group width, then word order is reversed across the array. width
// must be 1, 2, 4 or 8. dst must not alias src.
func ReverseSWAR[W Word](dst, src []W, width uint) {
	n := len(src)
	for i := range dst {
		dst[i] = reverseGroupsWord(src[n-1-i], width)
	}
}

// ReverseShuffle reverses all groups in the array with the byte-lane
// shuffle data flow: bytes are gathered in reverse order and each byte is
// rebuilt from two 16-entry nibble tables, the in-register equivalent of
// a vector shuffle-table lookup. width must be 1, 2, 4 or 8. dst must not
// alias src, and dst is fully overwritten.
func ReverseShuffle[W Word](dst, src []W, width uint) {
	lo, hi := nibbleRevTables(width)
	bpw := WordBits[W]() / 8
	total := uint(len(src)) * bpw

	for i := range dst {
		var out W
		base := uint(i) * bpw
		for b := uint(0); b < bpw; b++ {
			j := total - 1 - (base + b)
			sb := uint8(src[j/bpw] >> (8 * (j % bpw)))
			out |= W(lo[sb&0x0f]|hi[sb>>4]) << (8 * b)
		}
		dst[i] = out
	}
}

// swapMasks[s] keeps the lower block of each adjacent block pair of size s.
// Truncating the 64-bit pattern to a narrower word yields the mask for
// that width.
var swapMasks = [33]uint64{
	1:  0x5555555555555555,
	2:  0x3333333333333333,
	4:  0x0f0f0f0f0f0f0f0f,
	8:  0x00ff00ff00ff00ff,
	16: 0x0000ffff0000ffff,
	32: 0x00000000ffffffff,
}

// reverseGroupsWord reverses the order of width-wide groups within a
// single word by swapping adjacent blocks from the word's half size down
// to the group width.
func reverseGroupsWord[W Word](x W, width uint) W {
	for s := WordBits[W]() / 2; s >= width; s >>= 1 {
		m := W(swapMasks[s])
		x = (x>>s)&m | (x&m)<<s
	}

	return x
}

// byteRevGroups reverses the order of width-wide groups within one byte.
func byteRevGroups(b uint8, width uint) uint8 {
	groups := uint(8) / width
	mask := uint8(1)<<width - 1
	var out uint8
	for i := uint(0); i < groups; i++ {
		out |= (b >> (i * width) & mask) << ((groups - 1 - i) * width)
	}

	return out
}

var (
	byteRevTables  [4][256]uint8 // indexed by log2(width)
	nibbleLoTables [4][16]uint8
	nibbleHiTables [4][16]uint8
	log2GroupWidth = map[uint]int{1: 0, 2: 1, 4: 2, 8: 3}
)

func init() {
	for width := uint(1); width <= 8; width <<= 1 {
		li := log2GroupWidth[width]
		for b := 0; b < 256; b++ {
			byteRevTables[li][b] = byteRevGroups(uint8(b), width)
		}
		// Nibble tables: a group-reversed byte is the group-reversed low
		// nibble moved high, OR the group-reversed high nibble moved low.
		// Groups of 8 never cross a nibble, so the byte passes through.
		for n := 0; n < 16; n++ {
			if width == 8 {
				nibbleLoTables[li][n] = uint8(n)
				nibbleHiTables[li][n] = uint8(n) << 4
			} else {
				nibbleLoTables[li][n] = byteRevGroups(uint8(n), width) >> 4 << 4
				nibbleHiTables[li][n] = byteRevGroups(uint8(n)<<4, width)
			}
		}
	}
}

// ParallelWidth reports whether the group width is eligible for the
// byte-swap, SWAR and shuffle tiers.
func ParallelWidth(width uint) bool {
	_, ok := log2GroupWidth[width]

	return ok
}

func byteRevTable(width uint) *[256]uint8 {
	return &byteRevTables[log2GroupWidth[width]]
}

func nibbleRevTables(width uint) (*[16]uint8, *[16]uint8) {
	li := log2GroupWidth[width]

	return &nibbleLoTables[li], &nibbleHiTables[li]
}
