package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/RafaelVVolkmer/my-alloc/heap"
	"github.com/RafaelVVolkmer/my-alloc/internal/diag"
)

func newBenchCmd(logger *func() diag.Logger) *cobra.Command {
	var flags heapFlags
	var iterations int
	var requestSize int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "time a malloc/free cycle repeated against a fresh region",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, strategy, err := flags.newHeap((*logger)())
			if err != nil {
				return err
			}
			if iterations <= 0 {
				iterations = 100000
			}
			if requestSize <= 0 {
				requestSize = 32
			}

			start := time.Now()
			for i := 0; i < iterations; i++ {
				site := heap.Site{File: "heapdemo", Line: i, VarName: "bench"}
				p, err := h.Malloc(requestSize, site, strategy)
				if err != nil {
					return fmt.Errorf("iteration %d: %w", i, err)
				}
				if err := h.Free(p, site); err != nil {
					return fmt.Errorf("iteration %d free: %w", i, err)
				}
			}
			elapsed := time.Since(start)

			fmt.Printf("%d malloc/free cycles of %d bytes in %s (%.0f ns/op)\n",
				iterations, requestSize, elapsed, float64(elapsed.Nanoseconds())/float64(iterations))
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().IntVar(&iterations, "iterations", 100000, "number of malloc/free cycles to run")
	cmd.Flags().IntVar(&requestSize, "request", 32, "payload size in bytes per cycle")
	return cmd
}
