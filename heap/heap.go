package heap

import (
	"fmt"
)

// Heap manages a fixed-size contiguous byte region as an address-ordered
// chain of blocks, servicing variable-sized allocation and release
// requests under a choice of placement policies. Its zero value is not
// ready for use; call Init or construct with New.
//
// A Heap is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves - there is no internal
// locking, matching the single-threaded scope this package targets.
type Heap struct {
	region []byte
	opts   Options

	chainHead int // byte offset of the lowest-address block
	cursor    int // byte offset of the next-fit resume point

	diags map[int]Site // allocated block offset -> call-site diagnostics

	allocCount int
	freeCount  int
}

// New constructs a Heap and initializes it per opts.
func New(opts Options) (*Heap, error) {
	h := &Heap{}
	if err := h.Init(opts); err != nil {
		return nil, err
	}
	return h, nil
}

// Init (re)initializes h: zeroes the region and installs a single free
// block spanning it. Re-invocation is permitted and resets all state,
// destroying any outstanding allocations - tracking which allocations
// are still live across a re-init is the caller's responsibility.
func (h *Heap) Init(opts Options) error {
	if h == nil {
		return ErrInvalidArgument
	}

	opts = normalizeOptions(opts)
	if opts.Size < headerSize+opts.ArchAlignment {
		return fmt.Errorf("heap: size %d too small for a header plus %d bytes of payload: %w", opts.Size, opts.ArchAlignment, ErrInvalidArgument)
	}

	h.opts = opts
	h.region = make([]byte, opts.Size)
	h.diags = make(map[int]Site)
	h.allocCount = 0
	h.freeCount = 0

	hdr := headerAt(h.region, 0)
	hdr.size = uint64(opts.Size)
	hdr.free = 1
	hdr.next = noBlock
	hdr.prev = noBlock

	h.chainHead = 0
	h.cursor = 0

	h.opts.Logger.Printf("heap: init region of %d bytes", opts.Size)
	return nil
}

// Malloc allocates size bytes using strategy and stamps site into the
// resulting block for leak/misuse diagnostics. It returns a slice over
// exactly the granted payload - bounded to block size so appends cannot
// spill into the next block's header.
func (h *Heap) Malloc(size int, site Site, strategy Strategy) ([]byte, error) {
	if h == nil || h.region == nil {
		return nil, ErrInvalidArgument
	}
	if size <= 0 {
		return nil, fmt.Errorf("heap: malloc size must be positive, got %d: %w", size, ErrInvalidArgument)
	}

	aligned := alignUp(size, h.opts.ArchAlignment)

	var (
		offset int
		ok     bool
	)
	switch strategy {
	case FirstFit:
		offset, ok = h.findFirstFit(aligned)
	case NextFit:
		offset, ok = h.findNextFit(aligned)
	case BestFit:
		offset, ok = h.findBestFit(aligned)
	default:
		return nil, fmt.Errorf("heap: unknown strategy %v: %w", strategy, ErrInvalidArgument)
	}
	if !ok {
		h.opts.Logger.Printf("heap: no block fits %d bytes for %q (%s:%d)", size, site.VarName, site.File, site.Line)
		return nil, fmt.Errorf("heap: no block fits %d bytes for %q: %w", size, site.VarName, ErrOutOfMemory)
	}

	h.split(offset, aligned)

	h.diags[offset] = site
	h.allocCount++

	h.opts.Logger.Printf("heap: allocated %d bytes for %q at offset %d using %s (%s:%d)",
		size, site.VarName, offset, strategy, site.File, site.Line)

	return h.payload(offset), nil
}

// MallocDefault is Malloc using the Heap's configured default strategy.
func (h *Heap) MallocDefault(size int, site Site) ([]byte, error) {
	if h == nil {
		return nil, ErrInvalidArgument
	}
	return h.Malloc(size, site, h.opts.Strategy)
}

// Free releases ptr, which must have been returned by Malloc on the same
// Heap and not already freed. site is used only for diagnostic messages.
func (h *Heap) Free(ptr []byte, site Site) error {
	if h == nil || h.region == nil {
		return ErrInvalidArgument
	}

	offset, err := h.validate(ptr)
	if err != nil {
		h.opts.Logger.Printf("heap: invalid pointer for %q (%s:%d)", site.VarName, site.File, site.Line)
		return fmt.Errorf("heap: invalid pointer for %q (%s:%d): %w", site.VarName, site.File, site.Line, err)
	}

	hdr := headerAt(h.region, offset)
	if hdr.free != 0 {
		h.opts.Logger.Printf("heap: double free detected for %q (%s:%d)", site.VarName, site.File, site.Line)
		return fmt.Errorf("heap: double free of %q (%s:%d): %w", site.VarName, site.File, site.Line, ErrDoubleFree)
	}

	h.opts.Logger.Printf("heap: freed %d bytes for %q from offset %d (%s:%d)",
		int(hdr.size)-headerSize, site.VarName, offset, site.File, site.Line)

	hdr.free = 1
	delete(h.diags, offset)
	h.freeCount++

	h.coalesce(offset)
	return nil
}

// payload returns the slice view of a block's payload bytes, capped
// exactly at the block boundary.
func (h *Heap) payload(offset int) []byte {
	hdr := headerAt(h.region, offset)
	start := offset + headerSize
	end := offset + int(hdr.size)
	return h.region[start:end:end]
}

// Stats summarizes the current state of the heap: block count, bytes
// allocated vs free, the largest single free block, and lifetime
// allocation/free counts. Reported by cmd/heapdemo's dump subcommand.
type Stats struct {
	Blocks      int
	AllocBytes  int
	FreeBytes   int
	LargestFree int
	AllocCount  int
	FreeCount   int
}

// Stats computes a snapshot by walking the chain once.
func (h *Heap) Stats() Stats {
	if h == nil || h.region == nil {
		return Stats{}
	}

	var st Stats
	for offset := 0; offset < len(h.region); {
		hdr := headerAt(h.region, offset)
		payloadBytes := int(hdr.size) - headerSize
		st.Blocks++
		if hdr.free != 0 {
			st.FreeBytes += payloadBytes
			if payloadBytes > st.LargestFree {
				st.LargestFree = payloadBytes
			}
		} else {
			st.AllocBytes += payloadBytes
		}
		offset += int(hdr.size)
	}
	st.AllocCount = h.allocCount
	st.FreeCount = h.freeCount
	return st
}
