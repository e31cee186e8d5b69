// Command sysbench measures CPU, memory, disk, and cryptographic throughput
// on the local host and prints averaged wall-clock timings per category.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nvr-ai/go-sysbench/config"
	"github.com/nvr-ai/go-sysbench/suite"
	"github.com/nvr-ai/go-sysbench/workload"
)

// interruptExitCode follows the shell convention of 128 + SIGINT.
const interruptExitCode = 130

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	verbose := false

	cmd := &cobra.Command{
		Use:   "sysbench",
		Short: "System-resource micro-benchmarks",
		Long: `sysbench runs a fixed set of CPU-, memory-, disk-, and crypto-bound
micro-benchmarks, both single-threaded and fanned out across a worker pool,
and reports averaged wall-clock timings per category.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(verbose)
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "invalid configuration")
			}
			return suite.New(cfg, cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Iterations, "iterations", cfg.Iterations,
		"total iterations for the integer and floating-point categories")
	flags.IntVar(&cfg.EncryptIterations, "encrypt-iterations", cfg.EncryptIterations,
		"iterations for the SHA-256 category")
	flags.IntVar(&cfg.CompressIterations, "compress-iterations", cfg.CompressIterations,
		"round trips for the compression category")
	flags.IntVar(&cfg.FileSizeMB, "file-size", cfg.FileSizeMB,
		"disk test file size in MiB")
	flags.IntVar(&cfg.BlockSizeKB, "block-size", cfg.BlockSizeKB,
		"disk test block size in KiB")
	flags.IntVar(&cfg.ArraySize, "array-size", cfg.ArraySize,
		"element count for the memory speed category")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers,
		"parallel workers for pooled runs (default: host core count)")
	flags.IntVar(&cfg.Repeat, "repeat", cfg.Repeat,
		"measurements to average per category")
	flags.BoolVar(&cfg.MatMul, "matmul", cfg.MatMul,
		"enable the matrix-multiply category (requires the gorgonia backend)")
	flags.IntVar(&cfg.MatMulSize, "matmul-size", cfg.MatMulSize,
		"square matrix dimension for the matmul category")
	flags.IntVar(&cfg.MatMulIterations, "matmul-iterations", cfg.MatMulIterations,
		"products computed per matmul measurement")
	flags.BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	cmd.AddCommand(newListCmd())
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered workloads",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, w := range workload.All() {
				fmt.Fprintln(cmd.OutOrStdout(), w.Name())
			}
		},
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Interrupted.")
			os.Exit(interruptExitCode)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
