package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/chain"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/config"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/ops"
	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/logger"
)

var (
	pace   time.Duration
	runner *ops.Runner
	// closers run after the command finishes, whether or not it failed.
	closers []func()
)

var rootCmd = &cobra.Command{
	Use:           "poolctl",
	Short:         "Operator tool for TLOOT pools",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log, err := logger.InitLogger(cfg.Logger.LogEngine(), "poolctl", "cli", logger.WithLevel(cfg.Logger.LogLevel()))
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		client, err := chain.New(cmd.Context(), chain.OptionsFromConfig(cfg.Chain), log)
		if err != nil {
			return fmt.Errorf("init chain: %w", err)
		}
		closers = append(closers, client.Close)

		runner = ops.NewRunner(client, cmd.OutOrStdout(), pace, log)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&pace, "pace", 2*time.Second, "pause between wallets in bulk commands")

	rootCmd.AddCommand(balanceCmd, transferCmd, poolCmd, walletsCmd, rolesCmd, tokenCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func execute(ctx context.Context, args []string) error {
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
		closers = nil
	}()

	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
