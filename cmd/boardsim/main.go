// boardsim runs the firmware's boards against a simulated register file
// and prints what they write.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "boardsim",
		Short:        "Simulate blinky boards on the host",
		SilenceUsage: true,
	}
	root.AddCommand(newListCmd(), newTraceCmd())
	return root
}
