// Command qrngctl is a CLI front end for the qrng generator, adapted from
// the original quantum_rng_cli.c tool. It generates draws in a requested
// range and format and can print basic statistics over the batch. Like its
// C ancestor, it is a thin demonstration shell around the core generator,
// not part of the generator's specified interface.
package main

import (
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/opd-ai/quantum-rng"
)

var cli struct {
	Count   uint64 `short:"c" default:"10" help:"Number of values to generate."`
	Min     uint64 `short:"m" default:"0" help:"Minimum value (inclusive)."`
	Max     uint64 `short:"M" help:"Maximum value (inclusive). Defaults to the widest representable value."`
	Format  string `short:"f" default:"dec" enum:"dec,hex,bin" help:"Output format: dec, hex, or bin."`
	Analyze bool   `short:"a" help:"Print summary statistics after generating."`
	Seed    string `short:"s" help:"Hex-encoded seed. Random if omitted."`
	Verbose bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	kong.Parse(&cli)

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	max := cli.Max
	if max == 0 {
		max = math.MaxUint64
	}
	if max < cli.Min {
		logger.Error("max must be >= min", "min", cli.Min, "max", max)
		os.Exit(1)
	}

	var seed []byte
	if cli.Seed != "" {
		decoded, err := hex.DecodeString(cli.Seed)
		if err != nil {
			logger.Error("invalid seed", "err", err)
			os.Exit(1)
		}
		seed = decoded
	}

	rng, err := qrng.New(seed)
	if err != nil {
		logger.Error("generator init failed", "err", err)
		os.Exit(1)
	}
	defer rng.Close()

	logger.Debug("generator ready", "min", cli.Min, "max", max, "count", cli.Count)

	values := make([]uint64, cli.Count)
	for i := range values {
		values[i] = rng.Uint64Range(cli.Min, max)
		printValue(values[i])
	}

	if cli.Analyze {
		printAnalysis(values)
	}
}

func printValue(v uint64) {
	switch cli.Format {
	case "hex":
		fmt.Printf("0x%016x\n", v)
	case "bin":
		fmt.Println(strings.Repeat("0", 64-len(strconv.FormatUint(v, 2))) + strconv.FormatUint(v, 2))
	default:
		fmt.Println(v)
	}
}

func printAnalysis(values []uint64) {
	if len(values) == 0 {
		return
	}

	min, max := values[0], values[0]
	var sum, sumSquares float64
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += float64(v)
		sumSquares += float64(v) * float64(v)
	}

	n := float64(len(values))
	mean := sum / n
	variance := sumSquares/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	stdDev := math.Sqrt(variance)

	fmt.Println()
	fmt.Println("Statistical Analysis:")
	fmt.Printf("Minimum:        %d\n", min)
	fmt.Printf("Maximum:        %d\n", max)
	fmt.Printf("Mean:           %.2f\n", mean)
	fmt.Printf("Std Deviation:  %.2f\n", stdDev)

	var ones, total int
	for _, v := range values {
		for b := 0; b < 64; b++ {
			total++
			if v&(1<<uint(b)) != 0 {
				ones++
			}
		}
	}
	fmt.Printf("Bit density:    %.4f (ones/total, 0.5 expected)\n", float64(ones)/float64(total))
}
