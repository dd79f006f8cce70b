package heap

import (
	"math"
	"testing"

	"github.com/cznic/mathutil"
)

// assertInvariants checks the chain shape every block walk must hold:
// tiling (blocks cover the region with no gaps or overlaps), chain
// order (next/prev agree), no two adjacent free blocks (coalesce should
// have merged them), and payload alignment for every allocated block.
func assertInvariants(t *testing.T, h *Heap) {
	t.Helper()

	total := 0
	prevWasFree := false
	seen := 0
	for off := h.chainHead; off != noBlock; {
		hdr := headerAt(h.region, off)
		total += int(hdr.size)
		seen++

		if hdr.free != 0 && prevWasFree {
			t.Fatalf("adjacent free blocks at offset %d", off)
		}
		prevWasFree = hdr.free != 0

		if hdr.free == 0 {
			payloadAddr := uintptr(unsafeAddr(h.region)) + uintptr(off+headerSize)
			base := uintptr(unsafeAddr(h.region))
			if (payloadAddr-base)%uintptr(h.opts.Alignment) != 0 {
				t.Fatalf("misaligned payload at offset %d", off)
			}
		}

		next := int(hdr.next)
		if next != noBlock {
			nextHdr := headerAt(h.region, next)
			if int(nextHdr.prev) != off {
				t.Fatalf("chain order broken: block %d's next %d does not point back", off, next)
			}
			if next != off+int(hdr.size) {
				t.Fatalf("tiling broken: block %d size %d does not reach next block at %d", off, hdr.size, next)
			}
		}
		off = next

		if seen > len(h.region) {
			t.Fatal("chain walk did not terminate - cycle or corruption")
		}
	}

	if total != len(h.region) {
		t.Fatalf("tiling broken: chain covers %d bytes, region is %d", total, len(h.region))
	}
}

// fuzzAllocateFree drives a seeded, deterministic allocate/verify/free
// stream against a fresh Heap: a full-cycle PRNG (mathutil.NewFC32)
// picks sizes so the sequence is reproducible across runs without
// tracking a separate "seen" set.
func fuzzAllocateFree(t *testing.T, strategy Strategy, maxSize int) {
	t.Helper()

	const heapSize = 1 << 20
	h := newTestHeap(t, heapSize)

	rng, err := mathutil.NewFC32(1, maxSize, true)
	if err != nil {
		t.Fatal(err)
	}
	rng.Seed(42)

	var ptrs [][]byte
	budget := heapSize / 2

	for budget > 0 {
		size := rng.Next()
		p, err := h.Malloc(size, site("fuzz"), strategy)
		if err != nil {
			break // heap full enough under this strategy's fragmentation
		}
		for i := range p {
			p[i] = byte(size)
		}
		ptrs = append(ptrs, p)
		budget -= size
		assertInvariants(t, h)
	}

	// Shuffle order, then free everything.
	shuffle, err := mathutil.NewFC32(0, math.MaxInt32, true)
	if err != nil {
		t.Fatal(err)
	}
	shuffle.Seed(7)
	for i := range ptrs {
		j := shuffle.Next() % len(ptrs)
		ptrs[i], ptrs[j] = ptrs[j], ptrs[i]
	}

	for _, p := range ptrs {
		if err := h.Free(p, site("fuzz")); err != nil {
			t.Fatalf("Free: %v", err)
		}
		assertInvariants(t, h)
	}

	snap := h.Snapshot()
	if len(snap) != 1 || !snap[0].Free {
		t.Fatalf("leak after balanced malloc/free sequence: %+v", snap)
	}
}

func TestFuzzAllocateFreeFirstFitSmall(t *testing.T) { fuzzAllocateFree(t, FirstFit, 512) }
func TestFuzzAllocateFreeNextFitSmall(t *testing.T)  { fuzzAllocateFree(t, NextFit, 512) }
func TestFuzzAllocateFreeBestFitSmall(t *testing.T)  { fuzzAllocateFree(t, BestFit, 512) }
func TestFuzzAllocateFreeFirstFitBig(t *testing.T)   { fuzzAllocateFree(t, FirstFit, 4096) }

// TestFirstFitMonotonicity checks that first-fit always prefers the
// lowest-address free block: free(ptr) followed by malloc(same aligned
// size, FirstFit) returns a pointer at an address <= the original,
// modulo coalescing.
func TestFirstFitMonotonicity(t *testing.T) {
	h := newTestHeap(t, 4096)

	p, err := h.Malloc(32, site("p"), FirstFit)
	if err != nil {
		t.Fatal(err)
	}
	origAddr := uintptr(unsafeAddr(p))

	if err := h.Free(p, site("p")); err != nil {
		t.Fatal(err)
	}

	q, err := h.Malloc(32, site("q"), FirstFit)
	if err != nil {
		t.Fatal(err)
	}
	if uintptr(unsafeAddr(q)) > origAddr {
		t.Fatalf("reallocation address %d should be <= original %d", unsafeAddr(q), origAddr)
	}
}

// TestFirstFitReusesFreedBlock pins: malloc(s); malloc(s); free(first);
// malloc(s) with first-fit reuses the first block (address equality).
func TestFirstFitReusesFreedBlock(t *testing.T) {
	h := newTestHeap(t, 4096)

	a, err := h.Malloc(32, site("a"), FirstFit)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.Malloc(32, site("b"), FirstFit); err != nil {
		t.Fatal(err)
	}
	if err := h.Free(a, site("a")); err != nil {
		t.Fatal(err)
	}

	c, err := h.Malloc(32, site("c"), FirstFit)
	if err != nil {
		t.Fatal(err)
	}
	if unsafeAddr(c) != unsafeAddr(a) {
		t.Fatalf("expected first-fit to reuse the freed block at the same address")
	}
}
