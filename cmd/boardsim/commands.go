package main

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"blinky-go/hal/boards"
	"blinky-go/hal/regs"
	"blinky-go/x/fmtx"
	"blinky-go/x/mathx"
	"blinky-go/x/strconvx"
)

const maxSteps = 64

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the boards and their build tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmtx.Fprintf(w, "BOARD\tCHIP\tLED\tWIRING\tTAG\n")
			for _, e := range boards.Catalog() {
				i := e.Info
				fmtx.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", i.Name, i.Chip, i.LED, i.LED.Polarity, i.Tag)
			}
			return w.Flush()
		},
	}
}

func newTraceCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "trace <board>",
		Short: "Print the register writes of initialize plus loop steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := boards.Lookup(args[0])
			if err != nil {
				return err
			}
			sim := regs.NewSim()
			if err := e.Simulate(sim, mathx.Clamp(steps, 0, maxSteps)); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, w := range sim.Trace() {
				fmtx.Fprintf(out, "%3d  %-16s %-8s 0x%s -> 0x%s\n", i, w.Reg, w.Op,
					strconvx.FormatUintPad(uint64(w.Value), 16, 8),
					strconvx.FormatUintPad(uint64(w.After), 16, 8))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 2, "loop transitions to run after initialize (max 64)")
	return cmd
}
