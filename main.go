package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ewaldman/surveygen/app"
	"github.com/ewaldman/surveygen/buildinfo"
)

// //////////////////////////////////////////////////////////////////////////////
// commandLineArgs
type commandLineArgs struct {
	logLevelValue   int
	outputDirectory string
	seed            uint64
	createPlots     bool
}

func (cla *commandLineArgs) parseCommandLine(_ *slog.Logger) error {
	logLevelString := ""

	flag.StringVar(&logLevelString, "level", "INFO", "Logging verbosity level. Must be one of: {DEBUG, INFO, WARN, ERROR}.")
	flag.StringVar(&cla.outputDirectory, "output", "data", "Path to output directory for generated datasets. Created if absent.")
	flag.Uint64Var(&cla.seed, "seed", 2025, "Random seed for dataset generation.")
	flag.BoolVar(&cla.createPlots, "plots", false, "Additionally write a histogram PNG per dataset.")
	flag.Parse()

	// Parse the verbosity level
	switch strings.ToLower(logLevelString) {
	case "debug":
		cla.logLevelValue = int(slog.LevelDebug)
	case "info":
		cla.logLevelValue = int(slog.LevelInfo)
	case "warn":
		cla.logLevelValue = int(slog.LevelWarn)
	case "error":
		cla.logLevelValue = int(slog.LevelError)
	default:
		return fmt.Errorf("invalid log level specified: %s", logLevelString)
	}
	if len(cla.outputDirectory) <= 0 {
		return errors.New("empty output directory path provided")
	}
	absPath, absPathErr := filepath.Abs(cla.outputDirectory)
	if absPathErr != nil {
		return absPathErr
	}
	cla.outputDirectory = absPath
	return nil
}

// //////////////////////////////////////////////////////////////////////////////
//
// _ __  __ _(_)_ _
// | '  \/ _` | | ' \
// |_|_|_\__,_|_|_||_|
//
// //////////////////////////////////////////////////////////////////////////////
func main() {
	lvl := &slog.LevelVar{}
	lvl.Set(slog.LevelInfo)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	}))
	cla := commandLineArgs{}
	parseError := cla.parseCommandLine(logger)
	if parseError != nil {
		logger.Error("Failed to parse command line arguments", "error", parseError)
		os.Exit(-1)
	}
	lvl.Set(slog.Level(cla.logLevelValue))
	logger.Info("Welcome to surveygen!",
		"version", buildinfo.BuildInfo(),
		"go", runtime.Version())

	params := &app.Params{
		OutputDirectory: cla.outputDirectory,
		Seed:            cla.seed,
		CreatePlots:     cla.createPlots,
	}
	_, err := app.Run(params, logger)
	if err != nil {
		logger.Error("Failed to generate datasets", "error", err)
		os.Exit(-1)
	}
	logger.Info("surveygen generated")
}
