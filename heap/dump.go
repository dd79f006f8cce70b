package heap

import (
	"fmt"
	"io"
	"os"
	"unsafe"
)

// BlockInfo is one block's externally observable shape, independent of
// the package's internal offset representation.
type BlockInfo struct {
	PayloadSize int
	Free        bool
	File        string
	Line        int
}

// Snapshot walks the region linearly and returns one BlockInfo per
// block, in address order. It is the programmatic counterpart of
// DumpTo's text table.
func (h *Heap) Snapshot() []BlockInfo {
	if h == nil || h.region == nil {
		return nil
	}

	var out []BlockInfo
	for offset := 0; offset < len(h.region); {
		hdr := headerAt(h.region, offset)
		info := BlockInfo{PayloadSize: int(hdr.size) - headerSize, Free: hdr.free != 0}
		if !info.Free {
			if site, ok := h.diags[offset]; ok {
				info.File, info.Line = site.File, site.Line
			}
		}
		out = append(out, info)
		offset += int(hdr.size)
	}
	return out
}

// DumpTo walks the region linearly and writes one line per block:
//
//	<payload_address>  <payload_size>  <Yes|No>  <file:line | "N/A" | "Unknown:0">
func (h *Heap) DumpTo(w io.Writer) error {
	if h == nil || h.region == nil {
		return ErrInvalidArgument
	}

	for offset := 0; offset < len(h.region); {
		hdr := headerAt(h.region, offset)
		payloadAddr := uintptr(unsafe.Pointer(&h.region[offset])) + uintptr(headerSize)

		free := "No"
		loc := "Unknown:0"
		switch {
		case hdr.free != 0:
			free = "Yes"
			loc = "N/A"
		default:
			if site, ok := h.diags[offset]; ok && site.File != "" {
				loc = fmt.Sprintf("%s:%d", site.File, site.Line)
			}
		}

		if _, err := fmt.Fprintf(w, "%#x  %d  %s  %s\n", payloadAddr, int(hdr.size)-headerSize, free, loc); err != nil {
			return err
		}
		offset += int(hdr.size)
	}
	return nil
}

// Print writes the allocation table, with a header row labeling each
// column, to stdout.
func (h *Heap) Print() error {
	if h == nil || h.region == nil {
		return ErrInvalidArgument
	}
	if _, err := fmt.Fprintln(os.Stdout, "Allocation Table:"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(os.Stdout, "Address\t\tSize\t\tFree\t\tFile:Line"); err != nil {
		return err
	}
	return h.DumpTo(os.Stdout)
}
