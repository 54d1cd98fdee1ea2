package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-highway/dotbench/hwy"
	"github.com/go-highway/dotbench/hwy/contrib/dot"
)

func newCapsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "caps",
		Short: "Print detected CPU features and which kernels can run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printCaps(cmd.OutOrStdout())
		},
	}
}

func printCaps(w io.Writer) error {
	f := hwy.CPUFeatures()

	fmt.Fprintf(w, "Dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(w, "Dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(w, "Dispatch name: %s\n", hwy.CurrentName())
	fmt.Fprintf(w, "Allocation: %s (align %d)\n", hwy.DefaultAllocStrategy, hwy.DefaultAlignment)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "=== golang.org/x/sys/cpu (%s) ===\n", f.GOARCH)
	switch f.GOARCH {
	case "arm64":
		fmt.Fprintf(w, "  HasASIMD:   %v (NEON baseline)\n", f.ASIMD)
		fmt.Fprintf(w, "  HasSVE:     %v (Scalable Vector Extension)\n", f.SVE)
	default:
		fmt.Fprintf(w, "  HasSSE2:    %v\n", f.SSE2)
		fmt.Fprintf(w, "  HasSSE41:   %v\n", f.SSE41)
		fmt.Fprintf(w, "  HasAVX:     %v\n", f.AVX)
		fmt.Fprintf(w, "  HasAVX2:    %v\n", f.AVX2)
		fmt.Fprintf(w, "  HasFMA:     %v\n", f.FMA)
		fmt.Fprintf(w, "  HasAVX512F: %v\n", f.AVX512F)
	}
	fmt.Fprintf(w, "  Max vector: %d bits\n", f.MaxVectorBits())
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "VARIANT\tKIND\tWIDTH\tSUPPORTED\tRUNS AS")
	for _, v := range dot.Variants() {
		kind := "scalar"
		if v.IsVector() {
			kind = "vector"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%v\t%s\n", v, kind, v.Width(), v.Supported(), v.Resolve())
	}
	return tw.Flush()
}
