// hist reads whitespace-separated point rows from stdin and describes
// their N-dimensional distribution.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/austin-hoover/psdist/cloud"
	"github.com/austin-hoover/psdist/grid"
)

func main() {
	bins := flag.Int("bins", 10, "bins per axis")
	nsample := flag.Int("sample", 0, "resample this many points from the histogram")
	seed := flag.Uint64("seed", 1, "random seed for -sample")
	flag.Parse()

	c := cloud.Cloud{X: readInput(os.Stdin)}
	if c.Len() == 0 {
		fmt.Fprintln(os.Stderr, "no input points")
		os.Exit(1)
	}

	fmt.Printf("N %d  dim %d\n", c.Len(), c.Dim())
	fmt.Println()

	means, stds := c.Mean(), c.Std()
	for i := 0; i < c.Dim(); i++ {
		xs := c.Col(i)
		fmt.Printf("axis %d: mean %.6g  std dev %.6g  min %.6g  max %.6g\n",
			i, means[i], stds[i], floats.Min(xs), floats.Max(xs))
	}
	fmt.Println()

	if s, err := c.Cov(); err == nil {
		fmt.Printf("covariance:\n  %v\n", mat.Formatted(s, mat.Prefix("  "), mat.Squeeze()))
		fmt.Println()
	}

	h, err := c.Hist(grid.Count(*bins))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	sp := h.Sparse()
	fmt.Printf("histogram: shape %v  sum %.6g  occupied %d/%d cells\n",
		h.Shape(), h.Sum(), sp.Len(), h.Size())

	if sp.Len() > 0 {
		mode := 0
		for i, w := range sp.Counts {
			if w > sp.Counts[mode] {
				mode = i
			}
		}
		centers := h.Centers()
		center := make([]float64, c.Dim())
		for k, i := range sp.Indices[mode] {
			center[k] = centers[k][i]
		}
		fmt.Printf("mode: cell %v  center %v  count %.6g\n",
			sp.Indices[mode], fmtRow(center), sp.Counts[mode])
	}

	if *nsample > 0 {
		pts, err := h.Sample(*nsample, rand.NewSource(*seed))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println()
		fmt.Printf("resampled %d:\n", *nsample)
		for _, p := range pts {
			fmt.Println(fmtRow(p))
		}
	}
}

func fmtRow(p []float64) string {
	fields := make([]string, len(p))
	for i, x := range p {
		fields[i] = fmt.Sprintf("%.6g", x)
	}
	return strings.Join(fields, " ")
}

func readInput(r io.Reader) [][]float64 {
	var pts [][]float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		p := make([]float64, len(fields))
		for i, f := range fields {
			value, err := strconv.ParseFloat(f, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "line %d: %v\n", line, err)
				os.Exit(1)
			}
			p[i] = value
		}
		if len(pts) > 0 && len(p) != len(pts[0]) {
			fmt.Fprintf(os.Stderr, "line %d: %d fields, want %d\n", line, len(p), len(pts[0]))
			os.Exit(1)
		}
		pts = append(pts, p)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return pts
}
