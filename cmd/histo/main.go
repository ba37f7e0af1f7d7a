// Package main implements a tool to bin values received from STDIN into a
// histogram with balanced breaks.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/bool64/dev/version"
	"github.com/cockroachdb/errors"
	"github.com/vearutop/histo-go"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

// config is an optional YAML preset for the flags.
type config struct {
	Bins      int       `yaml:"bins"`
	Low       *float64  `yaml:"low"`
	High      *float64  `yaml:"high"`
	Breaks    []float64 `yaml:"breaks"`
	Method    string    `yaml:"method"`
	Name      string    `yaml:"name"`
	Normalize bool      `yaml:"normalize"`
	Save      string    `yaml:"save"`
}

func loadConfig(path string) (config, error) {
	var cfg config

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}

	return cfg, nil
}

func parseBreaks(s string) ([]float64, error) {
	var breaks []float64

	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad break %q", part)
		}

		breaks = append(breaks, v)
	}

	return breaks, nil
}

func parseMethod(s string) (histo.Method, error) {
	if s == "" || s == histo.Scott.String() {
		return histo.Scott, nil
	}

	return 0, errors.Newf("unknown method %q", s)
}

func build(data, breaks []float64, bins int, low, high float64, m histo.Method) (*histo.Histo, error) {
	if len(breaks) > 0 {
		return histo.NewWithBreaks(data, breaks)
	}

	if bins > 0 {
		return histo.NewWithBreaks(data, histo.BreaksFromRangeAndBins(low, high, bins))
	}

	return histo.FromDataAndRange[uint64](data, histo.Range[float64]{Low: low, High: high}, m)
}

func main() {
	var (
		configPath = flag.String("config", "", "Optional YAML preset; explicit flags override it.")
		bins       = flag.Int("bins", 0, "Number of equal-width bins (0 derives the width from the data).")
		low        = flag.Float64("low", math.NaN(), "Lower break (default: data minimum).")
		high       = flag.Float64("high", math.NaN(), "Upper break (default: data maximum).")
		breaksArg  = flag.String("breaks", "", "Comma-separated explicit breaks; overrides -bins.")
		methodArg  = flag.String("method", "scott", "Break computation method.")
		name       = flag.String("name", "", "Histogram name used in printed and saved output.")
		normalize  = flag.Bool("normalize", false, "Normalize counts by total area before printing and saving.")
		savePath   = flag.String("save", "", "Write \"center count\" lines to this path.")
		ver        = flag.Bool("version", false, "Print version.")
	)

	flag.Parse()

	if *ver {
		fmt.Println(version.Info().Version)
		return
	}

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	var breaks []float64

	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			log.Fatal(err.Error())
		}

		if !explicit["bins"] && cfg.Bins != 0 {
			*bins = cfg.Bins
		}

		if !explicit["low"] && cfg.Low != nil {
			*low = *cfg.Low
		}

		if !explicit["high"] && cfg.High != nil {
			*high = *cfg.High
		}

		if !explicit["breaks"] {
			breaks = cfg.Breaks
		}

		if !explicit["method"] && cfg.Method != "" {
			*methodArg = cfg.Method
		}

		if !explicit["name"] && cfg.Name != "" {
			*name = cfg.Name
		}

		if !explicit["normalize"] && cfg.Normalize {
			*normalize = true
		}

		if !explicit["save"] && cfg.Save != "" {
			*savePath = cfg.Save
		}
	}

	if *breaksArg != "" {
		var err error

		breaks, err = parseBreaks(*breaksArg)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	method, err := parseMethod(*methodArg)
	if err != nil {
		log.Fatal(err.Error())
	}

	var data []float64

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if f, err := strconv.ParseFloat(scanner.Text(), 64); err == nil {
			data = append(data, f)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatal(err.Error())
	}

	if len(data) == 0 {
		log.Fatal("no numeric values on STDIN")
	}

	if math.IsNaN(*low) {
		*low = floats.Min(data)
	}

	if math.IsNaN(*high) {
		*high = floats.Max(data)
	}

	h, err := build(data, breaks, *bins, *low, *high, method)
	if err != nil {
		log.Fatal(err.Error())
	}

	h.Name = *name

	println(fmt.Sprintf("n=%d min=%g max=%g mean=%.6g stddev=%.6g",
		len(data), floats.Min(data), floats.Max(data), stat.Mean(data, nil), stat.StdDev(data, nil)))

	for _, p := range []float64{99.9, 99, 90, 75, 50} {
		percentile := h.Percentile(p)
		pFmt := "%.2f"

		if isInt(percentile) {
			pFmt = "%.0f"
		}

		println(fmt.Sprintf("%.1f%% < "+pFmt, p, percentile))
	}

	println()

	if *normalize {
		n := histo.NormalizeByArea(h)

		println(n.String())

		if *savePath != "" {
			if err := n.Save(*savePath); err != nil {
				log.Fatal(err.Error())
			}
		}

		return
	}

	println(h.String())

	if *savePath != "" {
		if err := h.Save(*savePath); err != nil {
			log.Fatal(err.Error())
		}
	}
}

func isInt(f float64) bool {
	return f == float64(int(f))
}
