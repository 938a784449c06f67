package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-mclib/gateway/internal/dispatch"
)

// Version is the gateway's build version, set at build time via ldflags
// (-X main.Version=...). Defaults to "dev" for local builds.
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print gateway build and protocol information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("gateway %s\n", Version)
			fmt.Printf("  minimum protocol version: %d\n", dispatch.MinVersion)
		},
	}
}
