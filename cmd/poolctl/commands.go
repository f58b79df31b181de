package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Show TLOOT, USDT and MNT balances",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runner.Balance(cmd.Context(), args[0])
	},
}

var transferCmd = &cobra.Command{
	Use:   "transfer <to> <amount>",
	Short: "Send MNT from the operator account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[1], err)
		}
		return runner.Transfer(cmd.Context(), args[0], amount)
	},
}

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Inspect and operate pools",
}

var poolShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one pool as the pool manager reports it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return runner.ShowPool(cmd.Context(), id)
	},
}

var poolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every pool",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runner.ListPools(cmd.Context())
	},
}

var createFlags struct {
	name            string
	poolType        string
	entry           string
	ticketPrice     string
	maxParticipants int
	days            int
}

var poolCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a pool from the operator account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		poolType := domain.PoolType(createFlags.poolType)
		if !poolType.Valid() {
			return fmt.Errorf("invalid pool type %q", createFlags.poolType)
		}
		entry, err := decimal.NewFromString(createFlags.entry)
		if err != nil {
			return fmt.Errorf("invalid entry amount: %w", err)
		}
		price, err := decimal.NewFromString(createFlags.ticketPrice)
		if err != nil {
			return fmt.Errorf("invalid ticket price: %w", err)
		}
		maxParticipants := createFlags.maxParticipants
		if poolType == domain.PoolTypeCommitToClaim {
			maxParticipants = 1
		}

		return runner.CreatePool(cmd.Context(), domain.CreatePoolTx{
			Type:            poolType,
			EventName:       createFlags.name,
			EntryAmount:     entry,
			TicketPrice:     price,
			MaxParticipants: maxParticipants,
			Deadline:        time.Now().Add(time.Duration(createFlags.days) * 24 * time.Hour),
		})
	},
}

var poolJoinCmd = &cobra.Command{
	Use:   "join <id>",
	Short: "Join a pool from the operator account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return runner.JoinPool(cmd.Context(), id)
	},
}

var fillGas string

var poolFillCmd = &cobra.Command{
	Use:   "fill <id>",
	Short: "Fill a pool with freshly generated wallets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		gas, err := decimal.NewFromString(fillGas)
		if err != nil {
			return fmt.Errorf("invalid gas amount: %w", err)
		}
		_, err = runner.FillPool(cmd.Context(), id, gas)
		return err
	},
}

var poolFinalizeCmd = &cobra.Command{
	Use:   "finalize <id>",
	Short: "Draw winners and print them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return runner.FinalizePool(cmd.Context(), id)
	},
}

var poolPayCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Complete the ticket payment of a commit-to-claim pool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return runner.CompletePayment(cmd.Context(), id)
	},
}

var walletsCmd = &cobra.Command{
	Use:   "wallets",
	Short: "Manage test wallets",
}

var walletsFlags struct {
	count int
	fund  string
}

var walletsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate wallets and optionally fund them with MNT",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fund, err := decimal.NewFromString(walletsFlags.fund)
		if err != nil {
			return fmt.Errorf("invalid fund amount: %w", err)
		}
		_, err = runner.CreateWallets(cmd.Context(), walletsFlags.count, fund)
		return err
	},
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Inspect and grant TLOOT token roles",
}

var rolesCheckCmd = &cobra.Command{
	Use:   "check <address>",
	Short: "Show which token roles an account holds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runner.CheckRoles(cmd.Context(), args[0])
	},
}

var rolesGrantCmd = &cobra.Command{
	Use:   "grant <role> <address>",
	Short: "Grant a token role such as MINTER_ROLE",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runner.GrantRole(cmd.Context(), args[0], args[1])
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "TLOOT token information",
}

var tokenInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show token name, symbol and total supply",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runner.TokenInfo(cmd.Context())
	},
}

func init() {
	f := poolCreateCmd.Flags()
	f.StringVar(&createFlags.name, "name", "Test Event", "event name")
	f.StringVar(&createFlags.poolType, "type", string(domain.PoolTypeLuckyDraw), "LUCKY_DRAW or COMMIT_TO_CLAIM")
	f.StringVar(&createFlags.entry, "entry", "10", "entry amount in USDT")
	f.StringVar(&createFlags.ticketPrice, "ticket-price", "100", "ticket price in USDT")
	f.IntVar(&createFlags.maxParticipants, "max", 10, "max participants")
	f.IntVar(&createFlags.days, "days", 7, "days until deadline")

	poolFillCmd.Flags().StringVar(&fillGas, "gas", "0.05", "MNT sent to each wallet for gas")

	walletsCreateCmd.Flags().IntVar(&walletsFlags.count, "count", 5, "number of wallets")
	walletsCreateCmd.Flags().StringVar(&walletsFlags.fund, "fund", "0", "MNT sent to each wallet")

	poolCmd.AddCommand(poolShowCmd, poolListCmd, poolCreateCmd, poolJoinCmd, poolFillCmd, poolPayCmd, poolFinalizeCmd)
	walletsCmd.AddCommand(walletsCreateCmd)
	rolesCmd.AddCommand(rolesCheckCmd, rolesGrantCmd)
	tokenCmd.AddCommand(tokenInfoCmd)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid pool id %q", s)
	}
	return id, nil
}
