package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RafaelVVolkmer/my-alloc/heap"
	"github.com/RafaelVVolkmer/my-alloc/internal/diag"
)

func newFreeCmd(logger *func() diag.Logger) *cobra.Command {
	var flags heapFlags
	var requests []int
	var freeEvery int

	cmd := &cobra.Command{
		Use:   "free",
		Short: "allocate a sequence of requests, free every Nth one, then report the chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, strategy, err := flags.newHeap((*logger)())
			if err != nil {
				return err
			}
			if len(requests) == 0 {
				requests = []int{32, 64, 128, 32, 64}
			}
			if freeEvery <= 0 {
				freeEvery = 2
			}

			ptrs := make([][]byte, len(requests))
			for i, n := range requests {
				site := heap.Site{File: "heapdemo", Line: i, VarName: fmt.Sprintf("req%d", i)}
				p, err := h.Malloc(n, site, strategy)
				if err != nil {
					return fmt.Errorf("allocating request %d (%d bytes): %w", i, n, err)
				}
				ptrs[i] = p
			}

			for i, p := range ptrs {
				if (i+1)%freeEvery != 0 {
					continue
				}
				site := heap.Site{File: "heapdemo", Line: i, VarName: fmt.Sprintf("req%d", i)}
				if err := h.Free(p, site); err != nil {
					return fmt.Errorf("freeing request %d: %w", i, err)
				}
			}

			return h.Print()
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().IntSliceVar(&requests, "request", nil, "payload size in bytes to allocate, repeatable")
	cmd.Flags().IntVar(&freeEvery, "free-every", 2, "free every Nth allocated request (1-indexed position multiples of N)")
	return cmd
}
