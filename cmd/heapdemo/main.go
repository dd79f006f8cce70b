// Command heapdemo is a small interactive exerciser for the heap
// package: a single process-lifetime region, driven by subcommands
// instead of a REPL, in the spirit of SeleniaProject-Orizon's
// single-purpose cmd/orizon-* binaries.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RafaelVVolkmer/my-alloc/internal/diag"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "heapdemo",
		Short:         "exercise the fixed-region heap allocator from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	var jsonLog bool
	root.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "emit allocator diagnostics as newline-delimited JSON instead of console text")

	logger := func() diag.Logger {
		if jsonLog {
			return diag.NewJSON(os.Stderr)
		}
		return diag.Default()
	}

	root.AddCommand(
		newAllocCmd(&logger),
		newFreeCmd(&logger),
		newDumpCmd(&logger),
		newBenchCmd(&logger),
		newInfoCmd(),
	)
	return root
}
