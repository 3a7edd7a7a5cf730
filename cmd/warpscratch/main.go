package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ericlevine/homowarp"
	"github.com/ericlevine/homowarp/transform"
	"github.com/ericlevine/homowarp/warp"
)

func main() {
	out := flag.String("out", "outputs", "directory the PNG files are written to")
	experiment := flag.String("experiment", homowarp.Perspective,
		"experiment to run: "+strings.Join(homowarp.Experiments(), ", ")+" or all")
	interp := flag.String("interp", "nearest", "interpolation: nearest or bilinear")
	workers := flag.Int("workers", 1, "row bands resampled concurrently")
	angle := flag.Float64("angle", 45, "rotation about the scene centre, in degrees")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: warpscratch [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Warp synthetic test images through a perspective fit composed with a\n")
		fmt.Fprintf(os.Stderr, "rotation, write them as PNG and print the matrix and its inverse.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(1)
	}

	logger := initLogger(*debug)

	interpolation, err := warp.ParseInterpolation(*interp)
	if err != nil {
		logger.WithError(err).Error("Invalid flag")
		os.Exit(1)
	}

	runner := homowarp.NewRunner(logger, *out)
	runner.Config.Angle = transform.Degrees(*angle)
	runner.Config.Warp = warp.Options{Interpolation: interpolation, Workers: *workers}

	ctx := context.Background()
	if *experiment == "all" {
		_, err = runner.RunAll(ctx)
	} else {
		_, err = runner.Run(ctx, *experiment)
	}
	if err != nil {
		logger.WithError(err).Error("Run failed")
		os.Exit(1)
	}
}

// initLogger logs to stderr so that stdout carries only the matrix literals.
func initLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	return logger
}
