package heap

// split carves the free block at offset into an allocated prefix of
// alignedSize payload bytes and, room permitting, a free suffix block.
// The prefix keeps offset's own position in the chain - chainHead is
// never reassigned here, even when offset is the current head, because
// the allocated prefix still exists at that same lower address;
// retargeting chainHead to the suffix would drop the prefix off the
// front of the chain and break address ordering.
func (h *Heap) split(offset, alignedSize int) {
	hdr := headerAt(h.region, offset)

	// The suffix needs its own header plus ArchAlignment bytes of payload.
	if int(hdr.size) >= alignedSize+headerSize+headerSize+h.opts.ArchAlignment {
		suffixOffset := offset + headerSize + alignedSize
		suffix := headerAt(h.region, suffixOffset)

		suffix.size = hdr.size - uint64(headerSize) - uint64(alignedSize)
		suffix.free = 1
		suffix.next = hdr.next
		suffix.prev = int64(offset)

		if hdr.next != noBlock {
			headerAt(h.region, int(hdr.next)).prev = int64(suffixOffset)
		}

		hdr.size = uint64(alignedSize + headerSize)
		hdr.next = int64(suffixOffset)

		h.opts.Logger.Printf("heap: split block at offset %d, new free block at %d size %d bytes", offset, suffixOffset, suffix.size)
	} else {
		h.opts.Logger.Printf("heap: block at offset %d not split, marked allocated", offset)
	}

	hdr.free = 0
}
