package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func generatedFuncs(t *testing.T, src []byte) []string {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "gen.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}
	var names []string
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			names = append(names, fn.Name.Name)
		}
	}
	return names
}

func TestGenerate(t *testing.T) {
	gen := &Generator{Package: "dot", Orders: []int{8, 2, 4, 4}}
	src, err := gen.Generate("dot_unroll_gen.go")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.HasPrefix(string(src), "// Code generated by dotgen. DO NOT EDIT.") {
		t.Error("missing generated-code header")
	}

	want := []string{"DotUnroll2", "DotUnroll4", "DotUnroll8"}
	if diff := cmp.Diff(want, generatedFuncs(t, src)); diff != "" {
		t.Errorf("generated functions mismatch (-want +got):\n%s", diff)
	}

	for _, frag := range []string{
		"return r0 + r1\n",
		"return (r0 + r1) + (r2 + r3)\n",
		"return ((r0 + r1) + (r2 + r3)) + ((r4 + r5) + (r6 + r7))\n",
		"end := n - n%8",
		"r7 += a[i+7] * b[i+7]",
	} {
		if !strings.Contains(string(src), frag) {
			t.Errorf("generated code missing %q", frag)
		}
	}
}

func TestGenerateMatchesCheckedIn(t *testing.T) {
	path := filepath.Join("..", "..", "hwy", "contrib", "dot", "dot_unroll_gen.go")
	checkedIn, err := os.ReadFile(path)
	if err != nil {
		t.Skipf("checked-in kernels not found: %v", err)
	}

	gen := &Generator{Package: "dot", Orders: []int{2, 4, 8}, CacheLine: 256}
	src, err := gen.Generate(path)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if diff := cmp.Diff(string(checkedIn), string(src)); diff != "" {
		t.Errorf("%s is stale, run go generate (-checked-in +generated):\n%s", path, diff)
	}
}

func TestGenerateSelector(t *testing.T) {
	gen := &Generator{Package: "dot", Orders: []int{2, 4, 8}, CacheLine: 256}
	src, err := gen.Generate("dot_unroll_gen.go")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := []string{"DotUnroll2", "DotUnroll4", "DotUnroll8", "DotUnroll"}
	if diff := cmp.Diff(want, generatedFuncs(t, src)); diff != "" {
		t.Errorf("generated functions mismatch (-want +got):\n%s", diff)
	}
	for _, frag := range []string{
		"const UnrollOrder = 4\n",
		"\treturn DotUnroll4(a, b)\n",
	} {
		if !strings.Contains(string(src), frag) {
			t.Errorf("generated code missing %q", frag)
		}
	}
}

func TestSelectOrder(t *testing.T) {
	tests := []struct {
		orders    []int
		cacheLine int
		want      int
	}{
		{[]int{2, 4, 8}, 256, 4},
		{[]int{2, 4, 8}, 512, 8},
		{[]int{2, 4, 8}, 128, 2},
		{[]int{2, 4, 8}, 1024, 8},
		{[]int{4, 8}, 128, 8},
		{[]int{2, 4}, 200, 4},
	}
	for _, tt := range tests {
		if got := SelectOrder(tt.orders, tt.cacheLine); got != tt.want {
			t.Errorf("SelectOrder(%v, %d) = %d, want %d", tt.orders, tt.cacheLine, got, tt.want)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		gen  Generator
	}{
		{"no package", Generator{Orders: []int{2}}},
		{"no orders", Generator{Package: "dot"}},
		{"order one", Generator{Package: "dot", Orders: []int{1}}},
		{"not power of two", Generator{Package: "dot", Orders: []int{2, 6}}},
		{"negative", Generator{Package: "dot", Orders: []int{-4}}},
		{"negative cache line", Generator{Package: "dot", Orders: []int{4}, CacheLine: -256}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.gen.Generate("x.go"); err == nil {
				t.Error("Generate succeeded, want error")
			}
		})
	}
}

func TestParseOrders(t *testing.T) {
	got, err := parseOrders(" 2, 4,,8 ")
	if err != nil {
		t.Fatalf("parseOrders: %v", err)
	}
	if diff := cmp.Diff([]int{2, 4, 8}, got); diff != "" {
		t.Errorf("parseOrders mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"", ",", "two"} {
		if _, err := parseOrders(bad); err == nil {
			t.Errorf("parseOrders(%q) succeeded, want error", bad)
		}
	}
}

func TestPairwise(t *testing.T) {
	tests := []struct {
		k    int
		want string
	}{
		{2, "r0 + r1"},
		{4, "(r0 + r1) + (r2 + r3)"},
		{16, "(((r0 + r1) + (r2 + r3)) + ((r4 + r5) + (r6 + r7))) + (((r8 + r9) + (r10 + r11)) + ((r12 + r13) + (r14 + r15)))"},
	}
	for _, tt := range tests {
		if got := pairwise(0, tt.k, true); got != tt.want {
			t.Errorf("pairwise(%d) = %q, want %q", tt.k, got, tt.want)
		}
	}
}
