package main

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/tools/imports"
)

// Generator emits unrolled dot-product kernels.
type Generator struct {
	Package   string // Output package name
	Orders    []int  // Unroll factors, each a power of two >= 2
	CacheLine int    // Cache line width in bits for the DotUnroll selector; 0 omits it
}

// float64Bits is the width of one accumulator.
const float64Bits = 64

// Generate returns the formatted source of the kernels. filename is only
// used for error positions.
func (g *Generator) Generate(filename string) ([]byte, error) {
	if g.Package == "" {
		return nil, fmt.Errorf("package name is required")
	}
	if len(g.Orders) == 0 {
		return nil, fmt.Errorf("no orders specified")
	}

	orders := slices.Clone(g.Orders)
	slices.Sort(orders)
	orders = slices.Compact(orders)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by dotgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", g.Package)

	for _, k := range orders {
		if err := validateOrder(k); err != nil {
			return nil, err
		}
		emitUnrolled(&buf, k)
	}

	switch {
	case g.CacheLine < 0:
		return nil, fmt.Errorf("cache line %d: must not be negative", g.CacheLine)
	case g.CacheLine > 0:
		emitSelector(&buf, g.CacheLine, SelectOrder(orders, g.CacheLine))
	}

	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return formatted, nil
}

// validateOrder rejects factors the pairwise combine cannot split evenly.
func validateOrder(k int) error {
	if k < 2 || k&(k-1) != 0 {
		return fmt.Errorf("order %d: must be a power of two >= 2", k)
	}
	return nil
}

// SelectOrder returns the order whose float64 accumulators together span
// cacheLine bits, or the largest order when none does.
func SelectOrder(orders []int, cacheLine int) int {
	if k := cacheLine / float64Bits; cacheLine%float64Bits == 0 && slices.Contains(orders, k) {
		return k
	}
	return slices.Max(orders)
}

// FuncName returns the name of the kernel generated for order k.
func FuncName(k int) string {
	return fmt.Sprintf("DotUnroll%d", k)
}

func emitUnrolled(buf *bytes.Buffer, k int) {
	name := FuncName(k)

	fmt.Fprintf(buf, "\n// %s computes the dot product of a and b with %d independent\n", name, k)
	fmt.Fprintf(buf, "// accumulators. Accumulator j sums the indices congruent to j mod %d, the\n", k)
	fmt.Fprintf(buf, "// n%%%d trailing elements are folded into accumulator 0 and the\n", k)
	fmt.Fprintf(buf, "// accumulators are combined pairwise.\n")
	fmt.Fprintf(buf, "func %s(a, b []float64) float64 {\n", name)
	fmt.Fprintf(buf, "\tcheckLengths(a, b)\n")
	fmt.Fprintf(buf, "\tb = b[:len(a)]\n")
	fmt.Fprintf(buf, "\tn := len(a)\n")
	fmt.Fprintf(buf, "\tend := n - n%%%d\n\n", k)

	fmt.Fprintf(buf, "\tvar %s float64\n", strings.Join(accumulators(k), ", "))
	fmt.Fprintf(buf, "\tfor i := 0; i < end; i += %d {\n", k)
	for j := range k {
		idx := "i"
		if j > 0 {
			idx = fmt.Sprintf("i+%d", j)
		}
		fmt.Fprintf(buf, "\t\tr%d += a[%s] * b[%s]\n", j, idx, idx)
	}
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "\tfor i := end; i < n; i++ {\n")
	fmt.Fprintf(buf, "\t\tr0 += a[i] * b[i]\n")
	fmt.Fprintf(buf, "\t}\n\n")

	fmt.Fprintf(buf, "\treturn %s\n", pairwise(0, k, true))
	fmt.Fprintf(buf, "}\n")
}

func accumulators(k int) []string {
	names := make([]string, k)
	for j := range names {
		names[j] = fmt.Sprintf("r%d", j)
	}
	return names
}

// pairwise returns the binary-tree sum of accumulators [lo, hi).
func pairwise(lo, hi int, top bool) string {
	if hi-lo == 1 {
		return fmt.Sprintf("r%d", lo)
	}
	mid := (lo + hi) / 2
	expr := pairwise(lo, mid, false) + " + " + pairwise(mid, hi, false)
	if top {
		return expr
	}
	return "(" + expr + ")"
}

func emitSelector(buf *bytes.Buffer, cacheLine, k int) {
	fmt.Fprintf(buf, "\n// UnrollOrder is the unroll factor used by DotUnroll, chosen for a\n")
	fmt.Fprintf(buf, "// %d-bit cache line.\n", cacheLine)
	fmt.Fprintf(buf, "const UnrollOrder = %d\n\n", k)
	fmt.Fprintf(buf, "// DotUnroll computes the dot product of a and b with %s.\n", FuncName(k))
	fmt.Fprintf(buf, "func DotUnroll(a, b []float64) float64 {\n")
	fmt.Fprintf(buf, "\treturn %s(a, b)\n", FuncName(k))
	fmt.Fprintf(buf, "}\n")
}
