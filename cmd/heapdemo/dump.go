package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RafaelVVolkmer/my-alloc/heap"
	"github.com/RafaelVVolkmer/my-alloc/internal/diag"
)

func newDumpCmd(logger *func() diag.Logger) *cobra.Command {
	var flags heapFlags
	var requests []int

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "allocate a sequence of requests and print the allocation table plus summary stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, strategy, err := flags.newHeap((*logger)())
			if err != nil {
				return err
			}
			if len(requests) == 0 {
				requests = []int{48, 16, 256}
			}

			for i, n := range requests {
				site := heap.Site{File: "heapdemo", Line: i, VarName: fmt.Sprintf("req%d", i)}
				if _, err := h.Malloc(n, site, strategy); err != nil {
					return fmt.Errorf("allocating request %d (%d bytes): %w", i, n, err)
				}
			}

			if err := h.Print(); err != nil {
				return err
			}

			st := h.Stats()
			fmt.Printf("\nblocks=%d alloc_bytes=%d free_bytes=%d largest_free=%d alloc_count=%d free_count=%d\n",
				st.Blocks, st.AllocBytes, st.FreeBytes, st.LargestFree, st.AllocCount, st.FreeCount)
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().IntSliceVar(&requests, "request", nil, "payload size in bytes to allocate, repeatable (default: 48,16,256)")
	return cmd
}
