package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/gostonefire/hashsimulator"
	"github.com/gostonefire/hashsimulator/internal/conf"
	"github.com/gostonefire/hashsimulator/internal/file"
	"github.com/gostonefire/hashsimulator/internal/hash"
	"github.com/gostonefire/hashsimulator/internal/model"
	"github.com/gostonefire/hashsimulator/internal/report"
	"github.com/spf13/afero"
)

func usage() {
	log.Printf("Usage: hashsim [-in file] [-size n] [-alg h1,h2,h3] [-format text|json] [-metrics file] [-config file]\n")
	log.Printf("Available hash algorithms: %s\n", strings.Join(hash.Names(), ","))
	flag.PrintDefaults()
}

func showUsageAndExit(exitcode int) {
	usage()
	os.Exit(exitcode)
}

func exitOnErr(logger logr.Logger, err error, msg string) {
	if err != nil {
		logger.Error(err, msg)
		os.Exit(1)
	}
}

// getLogger returns a stdr.Logger that implements the logr.Logger interface
// and sets the verbosity of the returned logger.
// set v to 0 for info level messages,
// 1 for debug messages and 2 for trace level message.
// any other verbosity level will default to 0.
func getLogger(v int) logr.Logger {
	logger := stdr.New(nil).WithName("hashsim")
	// bound check
	if v > conf.MaxVerbosity || v < 0 {
		v = 0
		logger.Info("Invalid verbosity, setting logger to display info level messages only.")
	}
	stdr.SetVerbosity(v)

	return logger
}

func main() {
	var configFile = flag.String("config", "", "A YAML config file, flags given on the command line override its values")
	var keysFile = flag.String("in", conf.DefaultKeysFile, "A list of keys terminated with a newline")
	var tableSize = flag.Int64("size", conf.DefaultTableSize, "Number of slots in the hash table")
	var algorithms = flag.String("alg", "h1,h2,h3", "Comma separated hash algorithms to compare")
	var format = flag.String("format", conf.DefaultFormat, "Output format (text,json)")
	var metricsFile = flag.String("metrics", "", "Write results as Prometheus metrics to this textfile")
	var verbose = flag.Int("v", 0, "Verbosity level, default to -v 0 for info level messages, -v 1 for debug messages, and -v 2 for trace level message.")
	var showHelp = flag.Bool("h", false, "Show help message")

	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if *showHelp {
		showUsageAndExit(0)
	}

	fs := afero.NewOsFs()

	// defaults, then config file, then flags that were actually given
	cfg := conf.Default()
	if *configFile != "" {
		exitOnErr(getLogger(0), conf.Load(fs, *configFile, &cfg), "failed to load config")
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.KeysFile = *keysFile
		case "size":
			cfg.TableSize = *tableSize
		case "alg":
			cfg.Algorithms = strings.Split(*algorithms, ",")
		case "format":
			cfg.Format = *format
		case "metrics":
			cfg.MetricsFile = *metricsFile
		case "v":
			cfg.Verbosity = *verbose
		}
	})

	slog := getLogger(cfg.Verbosity)
	exitOnErr(slog, cfg.Validate(), "invalid configuration")

	results, nKeys, err := run(logr.NewContext(context.Background(), slog), fs, cfg, os.Stdout)
	exitOnErr(slog, err, "failed to run simulation")

	if cfg.MetricsFile != "" {
		m := report.NewMetrics()
		m.Observe(nKeys, cfg.TableSize, results)
		exitOnErr(slog, m.WriteToTextfile(cfg.MetricsFile), "failed to write metrics")
		slog.V(1).Info("metrics written", "file", cfg.MetricsFile)
	}
}

// run reads the keys, runs every configured hash algorithm and writes the results to w
func run(ctx context.Context, fs afero.Fs, cfg conf.Config, w io.Writer) (results []model.RunResult, nKeys int, err error) {
	logger := logr.FromContextOrDiscard(ctx)

	keys, err := file.ReadKeys(fs, cfg.KeysFile)
	if err != nil {
		return
	}
	nKeys = len(keys)

	kc, err := hashsimulator.CheckKeys(keys, cfg.TableSize)
	if err != nil {
		return
	}
	if kc.NonAlphaKeys > 0 {
		logger.Info("keys with characters outside A-Z, their slots are less meaningful", "count", kc.NonAlphaKeys)
	}
	logger.Info("operating on keys",
		"file", cfg.KeysFile,
		"keys", humanize.Comma(kc.Keys),
		"distinct", humanize.Comma(kc.DistinctKeys),
		"tableSize", humanize.Comma(cfg.TableSize),
	)

	hashAlgorithms, err := hash.NewList(cfg.Algorithms)
	if err != nil {
		return
	}

	results, err = hashsimulator.RunAlgorithms(ctx, keys, cfg.TableSize, hashAlgorithms...)
	if err != nil {
		return
	}

	switch cfg.Format {
	case conf.FormatJSON:
		err = report.JSON(w, results)
	default:
		err = report.Text(w, results)
	}

	return
}
