package kmer

import "golang.org/x/sys/cpu"

// hasByteShuffle reports whether the host CPU offers byte-lane shuffle
// instructions (PSHUFB-class on x86, TBL-class on arm64). The probe runs
// once per class construction; the shuffle tier itself is portable Go
// with the same data flow, so this only steers tier selection.
func hasByteShuffle() bool {
	return cpu.X86.HasSSSE3 || cpu.ARM64.HasASIMD
}
