// Command mstquant reduces an image to k colors by cutting the minimum
// spanning tree of its distinct colors.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/mstquant/metrics"
	"github.com/katalvlaran/mstquant/quantize"
)

const helpMessage = `
mstquant reduces the colors of an image to a palette of k representatives.

Usage: mstquant [options] <input image> <output image>

  Input formats:  png, jpeg, gif, bmp, tiff, webp
  Output formats: chosen by extension (.png .jpg .jpeg .gif .bmp .tif .tiff)

      -k          (int)     Number of colors (clusters); default 16
      -workers    (int)     Goroutines for pixel scans and the MST; default 1
      -config     (string)  TOML configuration file
      -log        (string)  Rotating log file; stderr when empty
      -metrics    (string)  Write Prometheus metrics to this text file
      -palette    (flag)    Print the palette as hex colors
  -h, -help       (flag)    Show help message
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		Errorf("%v", err)
		Shutdown()
		fmt.Fprintln(os.Stderr, "mstquant:", err)
		os.Exit(1)
	}
	Shutdown()
}

// run parses args, quantizes the input image, writes the output image and
// prints a report to stdout.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("mstquant", flag.ContinueOnError)
	fs.SetOutput(stdout)
	var (
		showHelp    bool
		showPalette bool
		k           int
		workers     int
		configPath  string
		logPath     string
		metricsPath string
	)
	fs.BoolVar(&showHelp, "help", false, "")
	fs.BoolVar(&showHelp, "h", false, "")
	fs.BoolVar(&showPalette, "palette", false, "")
	fs.IntVar(&k, "k", 0, "")
	fs.IntVar(&workers, "workers", 0, "")
	fs.StringVar(&configPath, "config", "", "")
	fs.StringVar(&logPath, "log", "", "")
	fs.StringVar(&metricsPath, "metrics", "", "")
	fs.Usage = func() { fmt.Fprint(stdout, helpMessage) }

	if err := fs.Parse(args); err != nil {
		return err
	}
	if showHelp {
		fs.Usage()
		return nil
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected <input> and <output>, got %d arguments", fs.NArg())
	}
	in, out := fs.Arg(0), fs.Arg(1)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	// Flags override the config file.
	if k != 0 {
		cfg.Clusters = k
	}
	if workers != 0 {
		cfg.Workers = workers
	}
	if logPath != "" {
		cfg.Logging.Logfile = logPath
	}
	if metricsPath != "" {
		cfg.Metrics.Textfile = metricsPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := checkOutput(out); err != nil {
		return err
	}
	cfg.Logging.SetLogger()

	start := time.Now()
	g, format, err := readImage(in)
	if err != nil {
		return err
	}
	Infof("read %s image %q: %dx%d", format, in, g.Width, g.Height)

	m := metrics.New()
	res, err := quantize.Run(g, cfg.Clusters,
		quantize.WithWorkers(cfg.Workers),
		quantize.WithObserver(m))
	if err != nil {
		return fmt.Errorf("quantizing %q: %w", in, err)
	}
	st := res.Stats
	if st.Clusters < cfg.Clusters {
		Warningf("requested %d clusters but %q has only %d distinct colors", cfg.Clusters, in, st.DistinctColors)
	}

	if err := writeImage(out, res); err != nil {
		return err
	}
	elapsed := time.Since(start)
	Infof("wrote %q in %s", out, elapsed)

	if cfg.Metrics.Textfile != "" {
		if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			Warningf("could not write metrics to %q: %v", cfg.Metrics.Textfile, err)
		}
	}

	var size uint64
	if fi, err := os.Stat(out); err == nil {
		size = uint64(fi.Size())
	}
	fmt.Fprintf(stdout, "image:           %dx%d (%s pixels)\n", st.Width, st.Height, humanize.Comma(int64(st.Pixels)))
	fmt.Fprintf(stdout, "distinct colors: %s\n", humanize.Comma(int64(st.DistinctColors)))
	fmt.Fprintf(stdout, "clusters:        %s\n", humanize.Comma(int64(st.Clusters)))
	fmt.Fprintf(stdout, "mst weight:      %s\n", humanize.Ftoa(st.MSTWeight))
	fmt.Fprintf(stdout, "output:          %s (%s) in %s\n", out, humanize.Bytes(size), elapsed.Round(time.Millisecond))
	if showPalette {
		for i, c := range res.Palette.Representatives() {
			fmt.Fprintf(stdout, "%4d %s\n", i, c.Hex())
		}
	}

	return nil
}
