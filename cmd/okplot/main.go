// Command okplot renders the tutorial figures.
//
// Run via: go run ./cmd/okplot --out out/ histogram pie
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/benoitkugler/okplot/examples"
	"github.com/benoitkugler/okplot/figure"
	"github.com/benoitkugler/okplot/theme"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("okplot", "Renders the chart examples to image files.")

	outDir   = app.Flag("out", "Output directory.").Short('o').Default(".").Envar("OKPLOT_OUT").String()
	format   = app.Flag("format", "Output format.").Short('f').Default("png").Envar("OKPLOT_FORMAT").Enum(figure.Formats()...)
	seed     = app.Flag("seed", "Seed of the random examples, 0 to seed from the clock.").Default("0").Envar("OKPLOT_SEED").Uint64()
	style    = app.Flag("style", "YAML style sheet overriding the default theme.").Envar("OKPLOT_STYLE").String()
	logLevel = app.Flag("log", "Log level: debug, info, warn, error, fatal, panic").Default("error").Envar("OKPLOT_LOG").String()
	list     = app.Flag("list", "List the available examples and exit.").Bool()

	names = app.Arg("example", "Examples to run, all of them if empty.").Strings()
)

// parseLogLevel returns the configured level, falling back
// to the default one on invalid input.
func parseLogLevel(s string) log.Level {
	level, err := log.ParseLevel(s)
	if err == nil {
		return level
	}
	log.WithField("level", s).Warn("invalid log level, using error")
	return log.ErrorLevel
}

func config() (examples.Config, error) {
	cfg := examples.DefaultConfig()
	cfg.OutDir = *outDir
	cfg.Format = *format
	cfg.Seed = *seed
	if *style != "" {
		th, err := theme.Load(*style)
		if err != nil {
			return cfg, err
		}
		cfg.Theme = th
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return cfg, errors.Wrapf(err, "creating output directory %s", cfg.OutDir)
	}
	return cfg, nil
}

func printList(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Example", "File"})
	for i, ex := range examples.All {
		table.Append([]string{strconv.Itoa(i + 1), ex.Name, ex.File + "." + *format})
	}
	table.Render()
}

func printSummary(w io.Writer, results []examples.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Example", "File", "Size", "Status"})
	for _, res := range results {
		status, size := "ok", strconv.FormatInt(res.Size, 10)
		if res.Err != nil {
			status, size = "failed", "-"
		}
		table.Append([]string{res.Name, res.Path, size, status})
	}
	table.Render()
}

func run() error {
	if *list {
		printList(os.Stdout)
		return nil
	}
	cfg, err := config()
	if err != nil {
		return err
	}
	results, err := examples.RunAll(cfg, *names...)
	if len(results) != 0 {
		printSummary(os.Stdout, results)
	}
	return err
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	log.SetLevel(parseLogLevel(*logLevel))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
