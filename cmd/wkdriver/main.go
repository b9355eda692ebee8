// SPDX-License-Identifier: MIT

// Command wkdriver is the out-of-scope experiment harness: it feeds pages
// from a trace file through one of the comparison algorithms and prints
// the resulting compressed sizes.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wkpage/wk"
	"github.com/wkpage/wk/internal/harness"
)

var errUnsupportedAlgorithm = errors.New("wkdriver: unsupported algorithm")

// unknownAlgorithmExitCode is returned when algorithm does not name one of
// the supported comparison collaborators.
const unknownAlgorithmExitCode = 2

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exitErr *exitCodeError
		if asExitCodeError(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}

type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }

func asExitCodeError(err error, target **exitCodeError) bool {
	for err != nil {
		if ec, ok := err.(*exitCodeError); ok {
			*target = ec
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// defaultWBits, defaultDictSize, defaultLowBits are the parameters used
// when W_bits, D, and L are omitted from the command line.
const (
	defaultWBits    = 64
	defaultDictSize = 16
	defaultLowBits  = 10
)

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "driver <trace-file> <algorithm> [W_bits D L]",
		Short: "Replay a page trace through a comparison compressor",
		Args:  cobra.RangeArgs(2, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			wBits, dictSize, lowBits := defaultWBits, defaultDictSize, defaultLowBits
			var err error
			if len(args) > 2 {
				if wBits, err = parseIntArg(args[2], "W_bits"); err != nil {
					return err
				}
			}
			if len(args) > 3 {
				if dictSize, err = parseIntArg(args[3], "D"); err != nil {
					return err
				}
			}
			if len(args) > 4 {
				if lowBits, err = parseIntArg(args[4], "L"); err != nil {
					return err
				}
			}
			return runDriver(args[0], args[1], wBits, dictSize, lowBits, debug)
		},
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "set wk.Config.Debug and switch to a debug-level logger")

	return cmd
}

func parseIntArg(s, name string) (int, error) {
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return 0, fmt.Errorf("wkdriver: invalid %s %q: %w", name, s, err)
	}
	return v, nil
}

func runDriver(tracePath, algorithm string, wBits, dictSize, lowBits int, debug bool) error {
	newLogger := zap.NewProduction
	if debug {
		newLogger = zap.NewDevelopment
	}
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("wkdriver: building logger: %w", err)
	}
	defer logger.Sync()

	algo, err := buildAlgorithm(algorithm, wBits, dictSize, lowBits, debug)
	if errors.Is(err, errUnsupportedAlgorithm) {
		logger.Error("unknown algorithm", zap.String("algorithm", algorithm), zap.Error(err))
		return &exitCodeError{code: unknownAlgorithmExitCode, err: err}
	}
	if err != nil {
		return err
	}

	f, err := os.Open(tracePath)
	if err != nil {
		return fmt.Errorf("wkdriver: opening trace: %w", err)
	}
	defer f.Close()

	driver := &harness.Driver{
		Algorithm: algo,
		Workers:   4,
	}

	logger.Debug("starting driver run",
		zap.String("trace", tracePath),
		zap.String("algorithm", algo.Name()),
		zap.Int("workers", driver.Workers),
	)

	sizes, err := driver.Run(context.Background(), harness.NewPageReader(f))
	if err != nil {
		logger.Error("driver run failed", zap.Error(err))
		return err
	}

	logger.Debug("driver run complete", zap.Int("pages", len(sizes)))

	for i, size := range sizes {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(size)
	}
	fmt.Println()
	return nil
}

func buildAlgorithm(name string, wBits, dictSize, lowBits int, debug bool) (harness.Algorithm, error) {
	switch name {
	case "wk", "wk-huffman":
		codec, err := wk.New(wk.Config{
			WordSizeBytes:    wBits / 8,
			DictSize:         dictSize,
			NumLowBits:       lowBits,
			PackingWordBytes: wk.DefaultConfig().PackingWordBytes,
			Debug:            debug,
		})
		if err != nil {
			return nil, fmt.Errorf("wkdriver: constructing wk codec: %w", err)
		}
		if name == "wk-huffman" {
			return harness.NewWKHuffmanAlgorithm(codec), nil
		}
		return harness.NewWKAlgorithm(codec), nil
	case "lzma":
		return harness.NewLZMAAlgorithm(), nil
	case "bzip", "bzip2":
		return harness.NewBzip2Algorithm(), nil
	case "zlib", "zip":
		return harness.NewZlibAlgorithm(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedAlgorithm, name)
	}
}
