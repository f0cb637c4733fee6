// Command streamstat runs a set of streaming filters over a sequence of
// samples and prints per-filter summaries.
//
// Samples are read as whitespace-separated numbers from stdin, or generated
// with -gen:
//
//	streamstat < samples.txt
//	streamstat -gen 50
//	streamstat -window 5 -beta 0.1 < samples.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-stream/observe"
	"github.com/cwbudde/algo-stream/smooth"
	"github.com/cwbudde/algo-stream/stat"
	"github.com/cwbudde/algo-stream/stream"
	"github.com/cwbudde/algo-stream/window"
)

func main() {
	gen := flag.Int("gen", 0, "generate N hailstone samples instead of reading stdin")
	windowSize := flag.Int("window", 3, "window size for the sliding min/max/mean filters")
	beta := flag.Float64("beta", 0.25, "smoothing coefficient for the exponential mean")
	processVar := flag.Float64("process-var", 0.0001, "Kalman process noise variance")
	measureVar := flag.Float64("measure-var", 0.001, "Kalman measurement noise variance")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: streamstat [flags] < samples\n\n")
		fmt.Fprintf(os.Stderr, "Runs streaming filters over the samples and prints summaries.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var input []float64
	var err error
	if *gen > 0 {
		input = hailstone(*gen)
	} else {
		input, err = readSamples(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	if len(input) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input samples")
		os.Exit(1)
	}

	if err := run(input, *windowSize, *beta, *processVar, *measureVar); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(input []float64, windowSize int, beta, processVar, measureVar float64) error {
	minFilter, err := window.NewMin[float64](windowSize)
	if err != nil {
		return err
	}
	maxFilter, err := window.NewMax[float64](windowSize)
	if err != nil {
		return err
	}
	mean, err := window.NewMean[float64](windowSize)
	if err != nil {
		return err
	}
	expMean, err := smooth.NewMean(beta)
	if err != nil {
		return err
	}

	cfg := observe.DefaultKalmanConfig[float64]()
	cfg.ProcessVariance = processVar
	cfg.MeasurementVariance = measureVar
	kalman, err := observe.NewKalman(cfg)
	if err != nil {
		return err
	}

	var raw stat.Statistics[float64]
	var lows, highs, windowed, smoothed, estimated stat.Statistics[float64]

	for _, x := range input {
		raw.Update(x)
		feed(minFilter, &lows, x)
		feed(maxFilter, &highs, x)
		feed(mean, &windowed, x)
		feed(expMean, &smoothed, x)
		feed(kalman, &estimated, x)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "stage\tcount\tmin\tmax\tmean\tstddev")
	printRow(w, "input", raw.Finalize())
	printRow(w, fmt.Sprintf("moving min (n=%d)", windowSize), lows.Finalize())
	printRow(w, fmt.Sprintf("moving max (n=%d)", windowSize), highs.Finalize())
	printRow(w, fmt.Sprintf("moving mean (n=%d)", windowSize), windowed.Finalize())
	printRow(w, fmt.Sprintf("exp mean (beta=%g)", beta), smoothed.Finalize())
	printRow(w, "kalman", estimated.Finalize())

	return w.Flush()
}

func feed(f stream.Filter[float64, float64], sink *stat.Statistics[float64], x float64) {
	if v, ok := f.Filter(x); ok {
		sink.Update(v)
	}
}

func printRow(w *tabwriter.Writer, name string, s stat.Summary[float64]) {
	fmt.Fprintf(w, "%s\t%d\t%.3f\t%.3f\t%.3f\t%.3f\n",
		name, s.Count, s.Min, s.Max, s.Mean, s.StdDev)
}

func readSamples(f *os.File) ([]float64, error) {
	var out []float64

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", sc.Text(), err)
		}
		out = append(out, v)
	}

	return out, sc.Err()
}

// hailstone generates n steps of interleaved Collatz trajectories, a handy
// irregular test signal.
func hailstone(n int) []float64 {
	out := make([]float64, 0, n)

	seed := 1
	x := seed
	for len(out) < n {
		out = append(out, float64(x))
		if x == 1 {
			seed++
			x = seed
			continue
		}
		if x%2 == 0 {
			x /= 2
		} else {
			x = 3*x + 1
		}
	}

	return out
}
