package heap

// coalesce merges the just-freed block at offset with its free
// neighbors: forward first (absorbing block.next if it is free), then
// backward (letting block.prev absorb the result if it is free). Both
// steps keep chainHead and cursor pointed at blocks still in the chain.
func (h *Heap) coalesce(offset int) {
	hdr := headerAt(h.region, offset)

	if hdr.next != noBlock {
		nextOffset := int(hdr.next)
		next := headerAt(h.region, nextOffset)
		if next.free != 0 {
			hdr.size += next.size
			hdr.next = next.next
			if next.next != noBlock {
				headerAt(h.region, int(next.next)).prev = int64(offset)
			}
			if h.cursor == nextOffset {
				h.cursor = offset
			}
			h.opts.Logger.Printf("heap: merged block at %d with next block, new size %d bytes", offset, hdr.size)
		}
	}

	if hdr.prev != noBlock {
		prevOffset := int(hdr.prev)
		prev := headerAt(h.region, prevOffset)
		if prev.free != 0 {
			prev.size += hdr.size
			prev.next = hdr.next
			if hdr.next != noBlock {
				headerAt(h.region, int(hdr.next)).prev = int64(prevOffset)
			}

			// This branch only runs when offset has a prev, so offset
			// can never equal chainHead here - chainHead by definition
			// has no prev. Kept anyway: it costs one comparison and
			// means this function stays correct on its own even if a
			// future caller builds a chain where that invariant no
			// longer holds.
			if h.chainHead == offset {
				h.chainHead = prevOffset
			}
			if h.cursor == offset {
				h.cursor = prevOffset
			}

			h.opts.Logger.Printf("heap: merged block at %d with previous block at %d, new size %d bytes", offset, prevOffset, prev.size)
		}
	}
}
