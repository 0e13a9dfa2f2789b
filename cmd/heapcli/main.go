package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/common/version"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/grafana/intheap/pkg/config"
	heapcontext "github.com/grafana/intheap/pkg/context"
	"github.com/grafana/intheap/pkg/demo"
	"github.com/grafana/intheap/pkg/util/cli"
)

var cfg struct {
	verbose    bool
	configFile string
	output     string
	heap       config.Config
	extract struct {
		count int
	}
	search struct {
		value int
	}
}

var (
	consoleOutput = os.Stderr
	logger        = log.NewLogfmtLogger(consoleOutput)
)

func main() {
	app := kingpin.New(filepath.Base(os.Args[0]), "Insert, sort, search and extract ints with a binary min-heap.").UsageWriter(os.Stdout)
	app.Version(version.Print("heapcli"))
	app.HelpFlag.Short('h')
	app.Flag("verbose", "Enable verbose logging.").Short('v').Default("0").BoolVar(&cfg.verbose)
	app.Flag("config", "YAML file with values, search and output settings.").StringVar(&cfg.configFile)
	app.Flag("output", "Output format: text or json. Overrides the config file.").Short('o').StringVar(&cfg.output)

	demoCmd := app.Command("demo", "Run the heap walkthrough on the configured values.")

	sortCmd := app.Command("sort", "Heap sort the given values.")
	sortValues := sortCmd.Arg("values", "Values to sort.").Ints()

	extractCmd := app.Command("extract", "Extract minima from a heap of the given values.")
	extractCmd.Flag("count", "Number of values to extract, 0 extracts all.").Short('n').Default("1").IntVar(&cfg.extract.count)
	extractValues := extractCmd.Arg("values", "Values to insert.").Ints()

	searchCmd := app.Command("search", "Report whether a value is in a heap of the given values.")
	searchCmd.Arg("value", "Value to look for.").Required().IntVar(&cfg.search.value)
	searchValues := searchCmd.Arg("values", "Values to insert.").Ints()

	// parse command line arguments
	parsedCmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	// enable verbose logging if requested
	if !cfg.verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}
	ctx := heapcontext.WithLogger(context.Background(), logger)
	ctx = withOutput(ctx, os.Stdout)

	// flags take precedence over the config file
	cfg.heap = config.Default()
	cfg.heap.Config = cfg.configFile
	if err := config.Load(&cfg.heap); err != nil {
		os.Exit(checkError(err))
	}
	if cfg.output != "" {
		cfg.heap.Output = cfg.output
		if err := cfg.heap.Validate(); err != nil {
			os.Exit(checkError(err))
		}
	}

	switch parsedCmd {
	case demoCmd.FullCommand():
		if cfg.heap.Output == config.OutputText {
			_ = cli.GradientBanner(banner, consoleOutput)
		}
		os.Exit(checkError(demo.Run(ctx, output(ctx), cfg.heap)))
	case sortCmd.FullCommand():
		os.Exit(checkError(sortValuesCmd(ctx, *sortValues, cfg.heap.Output)))
	case extractCmd.FullCommand():
		os.Exit(checkError(extractValuesCmd(ctx, *extractValues, cfg.extract.count, cfg.heap.Output)))
	case searchCmd.FullCommand():
		os.Exit(checkError(searchValuesCmd(ctx, *searchValues, cfg.search.value, cfg.heap.Output)))
	default:
		level.Error(logger).Log("msg", "unknown command", "cmd", parsedCmd)
	}
}

func checkError(err error) int {
	switch err {
	case nil:
		return 0
	case errNotFound:
		// The result was already printed, only the exit code is left.
	default:
		level.Error(logger).Log("msg", "command failed", "err", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return 1
}

type contextKey uint8

const (
	contextKeyOutput contextKey = iota
)

func withOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, contextKeyOutput, w)
}

func output(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(contextKeyOutput).(io.Writer); ok {
		return w
	}
	return os.Stdout
}
