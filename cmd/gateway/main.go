// Command gateway runs the Minecraft Java Edition protocol edge gateway:
// a TCP listener that drives clients through the handshake, status, and
// login states, handing off to the configuration state without any
// play-phase game logic of its own.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// newRootCmd builds the gateway CLI's command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gateway",
		Short: "Minecraft Java Edition protocol edge gateway",
		Long: "gateway accepts TCP connections from Minecraft Java Edition clients and " +
			"drives each through the handshake, status, and login protocol states.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newKeygenCmd())
	root.AddCommand(newVersionCmd())
	return root
}
