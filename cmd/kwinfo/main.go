// Command kwinfo prints the K-weighting filter response used for
// loudness measurement.
//
// Usage:
//
//	kwinfo [flags]
//
// Without flags it tabulates the combined magnitude response at
// standard audio frequencies for a 48 kHz sample rate.
//
// Examples:
//
//	kwinfo
//	kwinfo -rate 44100
//	kwinfo -stages
//	kwinfo -from 10 -to 24000 -points 25
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-loudness/dsp/filter/kweight"
)

func main() {
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	from := flag.Float64("from", 20, "lowest tabulated frequency in Hz")
	to := flag.Float64("to", 20000, "highest tabulated frequency in Hz")
	points := flag.Int("points", 31, "number of logarithmically spaced frequencies")
	stages := flag.Bool("stages", false, "show per-stage responses alongside the total")
	coeffs := flag.Bool("coeffs", false, "print the biquad coefficients and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kwinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the K-weighting filter response for loudness measurement.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kwinfo -rate 44100\n")
		fmt.Fprintf(os.Stderr, "  kwinfo -stages\n")
		fmt.Fprintf(os.Stderr, "  kwinfo -from 10 -to 24000 -points 25\n")
	}
	flag.Parse()

	if *rate <= 0 {
		fmt.Fprintf(os.Stderr, "error: sample rate must be positive\n")
		os.Exit(1)
	}
	if *from <= 0 || *to <= *from || *to > *rate/2 {
		fmt.Fprintf(os.Stderr, "error: frequency range must satisfy 0 < from < to <= rate/2\n")
		os.Exit(1)
	}
	if *points < 2 {
		fmt.Fprintf(os.Stderr, "error: at least two frequency points required\n")
		os.Exit(1)
	}

	if *coeffs {
		printCoefficients(*rate)
		return
	}

	printResponse(*rate, *from, *to, *points, *stages)
}

func printCoefficients(rate float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Stage\tB0\tB1\tB2\tA1\tA2\n")
	fmt.Fprintf(tw, "-----\t--\t--\t--\t--\t--\n")

	names := []string{"highpass", "high-shelf"}
	for i, c := range kweight.Sections(rate) {
		fmt.Fprintf(tw, "%s\t%.10f\t%.10f\t%.10f\t%.10f\t%.10f\n",
			names[i], c.B0, c.B1, c.B2, c.A1, c.A2)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printResponse(rate, from, to float64, points int, stages bool) {
	chain := kweight.New(rate)
	sections := kweight.Sections(rate)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if stages {
		fmt.Fprintf(tw, "Freq [Hz]\tHighpass [dB]\tShelf [dB]\tTotal [dB]\n")
		fmt.Fprintf(tw, "---------\t-------------\t----------\t----------\n")
	} else {
		fmt.Fprintf(tw, "Freq [Hz]\tGain [dB]\n")
		fmt.Fprintf(tw, "---------\t---------\n")
	}

	step := math.Pow(to/from, 1/float64(points-1))

	freq := from
	for i := 0; i < points; i++ {
		total := chain.MagnitudeDB(freq, rate)

		if stages {
			fmt.Fprintf(tw, "%.1f\t%.3f\t%.3f\t%.3f\n",
				freq,
				sections[0].MagnitudeDB(freq, rate),
				sections[1].MagnitudeDB(freq, rate),
				total,
			)
		} else {
			fmt.Fprintf(tw, "%.1f\t%.3f\n", freq, total)
		}

		freq *= step
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
