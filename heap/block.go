package heap

import "unsafe"

// noBlock is the sentinel "no link" value for rawHeader.next/prev,
// marking the end of the chain in either direction.
const noBlock = -1

// rawHeader is the fixed, pointer-free layout stamped into the first
// headerSize bytes of every block. It deliberately carries only plain
// data - size, the free flag, and chain offsets - so it can be safely
// overlaid onto the region's backing array with unsafe.Pointer.
//
// file/line/var_name diagnostics are Go strings and are therefore kept
// out of band in Heap.diags instead of inside this struct: a []byte's
// GC pointer bitmap assumes the slice holds no pointers, so a string
// header (data pointer + length) stamped into it would be invisible to
// the garbage collector and could be collected out from under a live
// block.
type rawHeader struct {
	size uint64
	next int64 // byte offset of the next block in chain order, noBlock if none
	prev int64 // byte offset of the previous block in chain order, noBlock if none
	free uint8
}

// headerSize is the number of bytes every block reserves for rawHeader,
// rounded up to a multiple of 8 so the payload that follows starts on
// an 8-byte boundary regardless of the struct's own natural size.
var headerSize = roundup(int(unsafe.Sizeof(rawHeader{})), 8)

// roundup rounds n up to the next multiple of m. m must be a power of two.
func roundup(n, m int) int { return (n + m - 1) &^ (m - 1) }

// alignUp rounds size up to the next multiple of alignment. alignment
// must be a power of two.
func alignUp(size, alignment int) int {
	return (size + alignment - 1) &^ (alignment - 1)
}

// headerAt overlays a *rawHeader onto region at the given byte offset.
func headerAt(region []byte, offset int) *rawHeader {
	return (*rawHeader)(unsafe.Pointer(&region[offset]))
}
