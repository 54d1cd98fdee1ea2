package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-highway/dotbench/hwy"
	"github.com/go-highway/dotbench/hwy/contrib/dot"
	"github.com/go-highway/dotbench/internal/bench"
)

// runOptions holds the flags of the root command.
type runOptions struct {
	size    int
	variant string
	reps    int
	all     bool
	align   int

	// resolve maps a requested variant to the one that actually runs.
	resolve func(dot.Variant) dot.Variant
}

func newRootCommand() *cobra.Command {
	opts := runOptions{resolve: dot.Variant.Resolve}

	cmd := &cobra.Command{
		Use:   "dotbench",
		Short: "Time scalar, unrolled and SIMD dot-product kernels",
		Long: "dotbench fills a float64 buffer with a[i] = i, computes its dot product\n" +
			"with itself using the selected kernel and prints the result followed by\n" +
			"the elapsed time in microseconds.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.size, "size", "n", 100000, "number of elements")
	flags.StringVarP(&opts.variant, "variant", "v", "best", "kernel variant (see 'dotbench list')")
	flags.IntVarP(&opts.reps, "reps", "r", 1, "repetitions to average over")
	flags.BoolVar(&opts.all, "all", false, "time every variant")
	flags.IntVar(&opts.align, "align", hwy.DefaultAlignment, "buffer alignment in bytes")

	cmd.AddCommand(newCapsCommand(), newListCommand())
	return cmd
}

// runBench times each selected variant and writes the result lines to w.
// A variant without a native kernel is never reported under its own name:
// with --all it is skipped, otherwise its fallback is timed. Both cases are
// noted on errw.
func runBench(w, errw io.Writer, opts runOptions) (err error) {
	resolve := opts.resolve
	if resolve == nil {
		resolve = dot.Variant.Resolve
	}

	variants := dot.Variants()
	if !opts.all {
		v, err := dot.ParseVariant(opts.variant)
		if err != nil {
			return err
		}
		variants = []dot.Variant{v}
	}

	buf, err := hwy.Allocate[float64](hwy.DefaultAllocStrategy, opts.size, opts.align)
	if err != nil {
		return fmt.Errorf("allocate %d elements: %w", opts.size, err)
	}
	// Released exactly once, after every timed region.
	defer func() {
		if rerr := buf.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	hwy.Fill(buf.Data)
	p := newPrinter()

	for _, v := range variants {
		run := resolve(v)
		if run != v {
			if opts.all {
				fmt.Fprintf(errw, "%s: unsupported, skipped\n", v)
				continue
			}
			fmt.Fprintf(errw, "%s: unsupported, running %s\n", v, run)
		}

		res, err := bench.Run(run.Kernel(), buf.Data, buf.Data, opts.reps)
		if err != nil {
			return fmt.Errorf("%s: %w", run, err)
		}

		if opts.all {
			p.Fprintf(w, "%s\t%f\n", v, res.Sum)
			fmt.Fprintf(w, "%s\t%d\n", v, res.Micros())
			continue
		}
		p.Fprintf(w, "%f\n", res.Sum)
		fmt.Fprintf(w, "%d\n", res.Micros())
	}

	return nil
}
