package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/RafaelVVolkmer/my-alloc/heap"
	"github.com/RafaelVVolkmer/my-alloc/internal/diag"
)

// heapFlags are the Options fields every subcommand that builds its own
// Heap exposes identically, so users compose the same --size/--strategy
// flags across alloc/free/dump/bench.
type heapFlags struct {
	size      int
	align     int
	archAlign int
	strategy  string
}

func (f *heapFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.size, "size", 64<<10, "total region size in bytes")
	fs.IntVar(&f.align, "align", 8, "payload alignment in bytes")
	fs.IntVar(&f.archAlign, "arch-align", 0, "malloc rounding alignment in bytes (0 = platform default)")
	fs.StringVar(&f.strategy, "strategy", "first-fit", "placement strategy: first-fit, next-fit, or best-fit")
}

func (f *heapFlags) strategyValue() (heap.Strategy, error) {
	switch f.strategy {
	case "first-fit":
		return heap.FirstFit, nil
	case "next-fit":
		return heap.NextFit, nil
	case "best-fit":
		return heap.BestFit, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (want first-fit, next-fit, or best-fit)", f.strategy)
	}
}

func (f *heapFlags) newHeap(logger diag.Logger) (*heap.Heap, heap.Strategy, error) {
	strategy, err := f.strategyValue()
	if err != nil {
		return nil, 0, err
	}

	opts := []heap.Option{
		heap.WithSize(f.size),
		heap.WithAlignment(f.align),
		heap.WithStrategy(strategy),
		heap.WithLogger(logger),
	}
	if f.archAlign > 0 {
		opts = append(opts, heap.WithArchAlignment(f.archAlign))
	}

	h, err := heap.New(heap.NewOptions(opts...))
	return h, strategy, err
}

func newAllocCmd(logger *func() diag.Logger) *cobra.Command {
	var flags heapFlags
	var requests []int

	cmd := &cobra.Command{
		Use:   "alloc",
		Short: "build a region and allocate a sequence of requests against it",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, strategy, err := flags.newHeap((*logger)())
			if err != nil {
				return err
			}
			if len(requests) == 0 {
				requests = []int{32, 64, 128}
			}

			for i, n := range requests {
				p, err := h.Malloc(n, heap.Site{File: "heapdemo", Line: i, VarName: fmt.Sprintf("req%d", i)}, strategy)
				if err != nil {
					return fmt.Errorf("allocating request %d (%d bytes): %w", i, n, err)
				}
				fmt.Printf("allocated %d bytes for req%d at %p\n", n, i, &p[0])
			}

			return h.Print()
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().IntSliceVar(&requests, "request", nil, "payload size in bytes to allocate, repeatable (default: 32,64,128)")
	return cmd
}
