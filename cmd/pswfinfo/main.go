// Command pswfinfo prints properties of prolate spheroidal wave
// functions and optionally plots them in the terminal.
//
// Usage:
//
//	pswfinfo [flags]
//
// Examples:
//
//	pswfinfo -c 10
//	pswfinfo -c 100 -n 1,3,5
//	pswfinfo -c 25 -n 0,1 -plot
//	pswfinfo -c 10 -n 2 -coeffs
//	pswfinfo -c 10 -domain 0:4 -samples 9
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/cwbudde/algo-prolate/pswf"
)

func main() {
	bandwidth := flag.Float64("c", 10, "bandwidth parameter")
	ordersArg := flag.String("n", "0,1,2,3", "comma-separated PSWF orders")
	domainArg := flag.String("domain", "-1:1", "approximation domain as lo:hi")
	samples := flag.Int("samples", 0, "print a table of n sampled values per mode")
	plot := flag.Bool("plot", false, "render each mode as a terminal plot")
	width := flag.Int("width", 72, "plot width in columns")
	height := flag.Int("height", 14, "plot height in rows")
	coeffs := flag.Bool("coeffs", false, "print Chebyshev coefficients per mode")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pswfinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints eigenvalues and properties of prolate spheroidal wave functions.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pswfinfo -c 100 -n 1,3,5\n")
		fmt.Fprintf(os.Stderr, "  pswfinfo -c 25 -n 0,1 -plot\n")
	}
	flag.Parse()

	orders, err := parseOrders(*ordersArg)
	if err != nil {
		fatal(err)
	}

	lo, hi, err := parseDomain(*domainArg)
	if err != nil {
		fatal(err)
	}

	res, err := pswf.Compute(orders, *bandwidth, pswf.WithDomain(lo, hi))
	if err != nil {
		fatal(err)
	}

	printSummary(orders, *bandwidth, res)

	if *coeffs {
		printCoeffs(orders, res)
	}

	if *samples > 0 {
		printSamples(orders, res, lo, hi, *samples)
	}

	if *plot {
		plotModes(orders, res, lo, hi, *width, *height)
	}
}

func printSummary(orders []int, c float64, res *pswf.Result) {
	fmt.Printf("bandwidth c = %g, discretization size = %d, converged = %v\n\n",
		c, res.Size, res.Converged)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "order\teigenvalue\tdegree")
	for i, n := range orders {
		fmt.Fprintf(w, "%d\t%.12g\t%d\n", n, res.Eigenvalues[i], res.Funs[i].Degree())
	}
	w.Flush()
}

func printCoeffs(orders []int, res *pswf.Result) {
	for i, n := range orders {
		fmt.Printf("\nChebyshev coefficients, order %d:\n", n)
		for j, v := range res.Coeffs[i] {
			fmt.Printf("  T_%-3d %+.15e\n", j, v)
		}
	}
}

func printSamples(orders []int, res *pswf.Result, lo, hi float64, n int) {
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	header := "x"
	for _, ord := range orders {
		header += fmt.Sprintf("\tpsi_%d", ord)
	}
	fmt.Fprintln(w, header)

	for k := 0; k < n; k++ {
		x := lo
		if n > 1 {
			x = lo + float64(k)*(hi-lo)/float64(n-1)
		}

		row := fmt.Sprintf("%.6g", x)
		for i := range orders {
			row += fmt.Sprintf("\t%+.6e", res.Funs[i].Eval(x))
		}
		fmt.Fprintln(w, row)
	}
	w.Flush()
}

func plotModes(orders []int, res *pswf.Result, lo, hi float64, width, height int) {
	for i, n := range orders {
		vals := make([]float64, width)
		for k := range vals {
			x := lo + float64(k)*(hi-lo)/float64(width-1)
			vals[k] = res.Funs[i].Eval(x)
		}

		fmt.Printf("\npsi_%d on [%g, %g]:\n", n, lo, hi)
		fmt.Println(asciigraph.Plot(vals,
			asciigraph.Height(height),
			asciigraph.Width(width)))
	}
}

func parseOrders(s string) ([]int, error) {
	parts := strings.Split(s, ",")

	orders := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid order %q: %w", p, err)
		}
		orders = append(orders, n)
	}

	if len(orders) == 0 {
		return nil, fmt.Errorf("no orders given")
	}

	return orders, nil
}

func parseDomain(s string) (lo, hi float64, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("domain must be lo:hi, got %q", s)
	}

	lo, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid domain lower bound: %w", err)
	}

	hi, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid domain upper bound: %w", err)
	}

	return lo, hi, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
