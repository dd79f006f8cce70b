package heap

import "unsafe"

// validate performs the range and alignment checks needed
// to recover a block offset from a caller-supplied pointer - everything
// except confirming the inferred header is marked allocated. That last
// check is left to Free, which needs to tell "not a valid pointer at
// all" apart from "a double free of an otherwise-valid pointer" so it
// can report the latter distinctly instead of collapsing both into one
// generic error.
//
// This does not walk the chain to confirm the inferred header is
// actually a header on it - only that it falls within the region and is
// aligned. A pointer into the interior of a large allocated block,
// offset by exactly headerSize, could still pass. Hardening that would
// mean walking from chainHead on every Free, trading an O(1) check for
// an O(n) one to catch a misuse pattern no caller in this package
// produces.
func (h *Heap) validate(ptr []byte) (int, error) {
	if h == nil || h.region == nil || ptr == nil {
		return 0, ErrInvalidArgument
	}

	// Recover the full block view even if the caller re-sliced ptr down
	// (e.g. b[:0]) before freeing it - cap still reaches back to the
	// block boundary Malloc returned.
	full := ptr[:cap(ptr)]
	if len(full) == 0 {
		return 0, ErrInvalidArgument
	}

	regionBase := uintptr(unsafe.Pointer(&h.region[0]))
	regionEnd := regionBase + uintptr(len(h.region))
	p := uintptr(unsafe.Pointer(&full[0]))

	if p < regionBase+uintptr(headerSize) || p >= regionEnd {
		return 0, ErrInvalidArgument
	}

	if (p-regionBase)%uintptr(h.opts.Alignment) != 0 {
		return 0, ErrInvalidArgument
	}

	offset := int(p-regionBase) - headerSize
	if offset < 0 || offset+headerSize > len(h.region) {
		return 0, ErrInvalidArgument
	}

	return offset, nil
}
