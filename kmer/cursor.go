package kmer

import "github.com/genobit/kmerpack/internal/bitgroup"

// Cursor is an explicit read position inside a packed symbol stream of
// word type S. It carries the word index and the number of already
// consumed bits inside that word, replacing the mutable in-out offset the
// streaming contract would otherwise thread by reference: every streaming
// call takes a Cursor by value and returns the advanced one.
//
// When the symbol width does not divide the stream word width, each stream
// word ends with unusable padding bits. The cursor never splits a symbol
// across that padding: once fewer than one symbol's worth of usable bits
// remain, it moves to the next word and the remainder is skipped.
type Cursor[S Word] struct {
	words []S
	index int
	off   uint
}

// NewCursor positions a cursor at the given bit offset inside the first
// word of the stream. The offset counts consumed bits and must be a
// multiple of the symbol width it will be read with.
func NewCursor[S Word](words []S, bitOffset uint) Cursor[S] {
	return Cursor[S]{words: words, off: bitOffset}
}

// WordIndex returns the index of the stream word the cursor is parked on.
func (cur Cursor[S]) WordIndex() int { return cur.index }

// BitOffset returns the number of consumed bits in the current word. It
// is less than the stream word width, except after a fill with stopOnLast
// parked the cursor on an exhausted word, where it equals the width.
func (cur Cursor[S]) BitOffset() uint { return cur.off }

// next reads one symbol code, advancing lazily: the move to the next
// stream word happens when a read no longer fits, so a cursor parked at a
// word's end never touches memory past it.
func (cur *Cursor[S]) next(width, usable uint) uint8 {
	if cur.off+width > usable {
		cur.index++
		cur.off = 0
	}
	code := uint8(cur.words[cur.index]>>cur.off) & (uint8(1)<<width - 1)
	cur.off += width

	return code
}

// normalize eagerly skips the end-of-word padding so the returned cursor
// points at the word holding the next unread symbol. Skipped when the
// caller asked to stop on the last word, since the skip may step past the
// end of the stream.
func (cur *Cursor[S]) normalize(width, usable uint) {
	if cur.off+width > usable {
		cur.index++
		cur.off = 0
	}
}

// usableBits returns how many bits of one stream word hold symbols; the
// rest is per-word padding left by symbol widths that do not divide the
// word width.
func usableBits[S Word](width uint) uint {
	wb := bitgroup.WordBits[S]()

	return wb - wb%width
}

// FillFromPacked builds one k-mer of class c by consuming K()*BitsPerChar()
// bits from the stream at cur, crossing stream words and skipping their
// padding as needed. The internal word type W and the stream word type S
// are independent.
//
// With stopOnLast true the cursor is left parked on the last word it
// consumed from even if that word is exhausted; otherwise it is advanced
// to the word of the next unread symbol, which may step one word past the
// end of the stream.
//
// Behavior is unspecified (but memory-safe only within the slice bounds)
// when fewer than K() symbols remain; callers bound their loops by a known
// symbol count.
func FillFromPacked[W, S Word](c *Class[W], cur Cursor[S], stopOnLast bool) (Kmer[W], Cursor[S]) {
	km := c.New()
	usable := usableBits[S](c.width)

	for i := uint(0); i < c.k; i++ {
		code := cur.next(c.width, usable)
		bitgroup.Set(km.words, i*c.width, c.width, code)
	}
	c.maskPad(km.words)

	if !stopOnLast {
		cur.normalize(c.width, usable)
	}

	return km, cur
}

// NextFromPacked slides km one symbol forward using the next symbol from
// the stream, in O(Words()) time, and returns the advanced cursor.
func NextFromPacked[W, S Word](km *Kmer[W], cur Cursor[S]) Cursor[S] {
	c := km.class
	usable := usableBits[S](c.width)
	code := cur.next(c.width, usable)

	bitgroup.ShiftRight(km.words, c.width)
	bitgroup.Set(km.words, (c.k-1)*c.width, c.width, code)
	c.maskPad(km.words)

	cur.normalize(c.width, usable)

	return cur
}
