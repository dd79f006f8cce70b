package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/RafaelVVolkmer/my-alloc/internal/pagesize"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "report the host's default allocator alignment and page size",
		RunE: func(cmd *cobra.Command, args []string) error {
			arch := 8
			if runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64" {
				arch = 16
			}
			fmt.Printf("GOARCH=%s default_arch_alignment=%d os_page_size=%d\n", runtime.GOARCH, arch, pagesize.Get())
			return nil
		},
	}
}
