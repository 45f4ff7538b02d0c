// Package swap wires the shift-exchange workflow into the CLI.
package swap

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"escala/internal/application/swap/usecases"
	"escala/internal/infrastructure/config"
	"escala/internal/infrastructure/database"
	"escala/internal/infrastructure/presence"
	"escala/internal/infrastructure/repository"
	"escala/internal/shared/biztime"
	"escala/internal/shared/db"
	"escala/internal/shared/logger"
)

var (
	configPath   string
	swapID       string
	responderID  string
	note         string
	requesterID  string
	substituteID string
	allocationID string
	reason       string
	debtID       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Shift-exchange workflow tools",
		Long:  `Request, approve and reject shift exchanges, and settle the debts they open.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newRequestCommand(),
		newApproveCommand(),
		newRejectCommand(),
		newSettleCommand(),
	)

	return cmd
}

func newRequestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Open a swap request for an allocation",
		RunE:  runRequest,
	}

	cmd.Flags().StringVar(&requesterID, "requester", "", "User holding the allocation (required)")
	cmd.Flags().StringVar(&substituteID, "substitute", "", "User taking the duty (required)")
	cmd.Flags().StringVar(&allocationID, "allocation", "", "Allocation to move (required)")
	cmd.Flags().StringVar(&reason, "reason", "", "Reason for the exchange")
	cmd.MarkFlagRequired("requester")
	cmd.MarkFlagRequired("substitute")
	cmd.MarkFlagRequired("allocation")

	return cmd
}

func newApproveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve",
		Short: "Approve a pending swap",
		RunE:  runApprove,
	}

	cmd.Flags().StringVar(&swapID, "id", "", "Swap to approve (required)")
	cmd.Flags().StringVar(&responderID, "approver", "", "User resolving the swap (required)")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("approver")

	return cmd
}

func newRejectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reject",
		Short: "Reject a pending swap",
		RunE:  runReject,
	}

	cmd.Flags().StringVar(&swapID, "id", "", "Swap to reject (required)")
	cmd.Flags().StringVar(&responderID, "approver", "", "User resolving the swap (required)")
	cmd.Flags().StringVar(&note, "note", "", "Response note")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("approver")

	return cmd
}

func newSettleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Mark a swap debt as paid",
		RunE:  runSettle,
	}

	cmd.Flags().StringVar(&debtID, "debt", "", "Debt to settle (required)")
	cmd.MarkFlagRequired("debt")

	return cmd
}

func runRequest(cmd *cobra.Command, args []string) error {
	return withEnv(func(ctx context.Context, cfg *config.Config, log logger.Interface) error {
		conn := database.Get()
		uc := usecases.NewRequestSwapUseCase(
			repository.NewSwapRepository(conn),
			repository.NewAllocationRepository(conn),
			repository.NewDayRepository(conn),
			repository.NewUserRepository(conn),
			log,
		)

		result, err := uc.Execute(ctx, usecases.RequestSwapCommand{
			RequesterID:  requesterID,
			SubstituteID: substituteID,
			AllocationID: allocationID,
			Reason:       reason,
		})
		if err != nil {
			return fmt.Errorf("swap request failed: %w", err)
		}

		fmt.Printf("Swap %s is %s\n", result.SwapID, result.Status)
		return nil
	})
}

func runApprove(cmd *cobra.Command, args []string) error {
	return withEnv(func(ctx context.Context, cfg *config.Config, log logger.Interface) error {
		presenceClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer presenceClient.Close()

		conn := database.Get()
		uc := usecases.NewApproveSwapUseCase(
			repository.NewSwapRepository(conn),
			repository.NewDebtRepository(conn),
			repository.NewAllocationRepository(conn),
			repository.NewDayRepository(conn),
			repository.NewPostRepository(conn),
			repository.NewUserRepository(conn),
			repository.NewRoleGrantRepository(conn),
			repository.NewUnavailabilityRepository(conn),
			presence.NewRedisPresenceProvider(presenceClient),
			db.NewTransactionManager(conn),
			cfg.Roster.RestIntervalDays,
			log,
		)

		result, err := uc.Execute(ctx, usecases.ApproveSwapCommand{
			SwapID:     swapID,
			ApproverID: responderID,
		})
		if err != nil {
			return fmt.Errorf("swap approval failed: %w", err)
		}

		fmt.Printf("Swap %s is %s\n", result.SwapID, result.Status)
		if len(result.Reasons) > 0 {
			fmt.Printf("  %s\n", strings.Join(result.Reasons, "; "))
		}
		if result.DebtID != "" {
			fmt.Printf("  Debt opened: %s\n", result.DebtID)
		}
		return nil
	})
}

func runReject(cmd *cobra.Command, args []string) error {
	return withEnv(func(ctx context.Context, cfg *config.Config, log logger.Interface) error {
		uc := usecases.NewRejectSwapUseCase(
			repository.NewSwapRepository(database.Get()),
			log,
		)

		result, err := uc.Execute(ctx, usecases.RejectSwapCommand{
			SwapID:      swapID,
			ResponderID: responderID,
			Note:        note,
		})
		if err != nil {
			return fmt.Errorf("swap rejection failed: %w", err)
		}

		fmt.Printf("Swap %s is %s\n", result.SwapID, result.Status)
		return nil
	})
}

func runSettle(cmd *cobra.Command, args []string) error {
	return withEnv(func(ctx context.Context, cfg *config.Config, log logger.Interface) error {
		uc := usecases.NewSettleDebtUseCase(
			repository.NewDebtRepository(database.Get()),
			log,
		)

		result, err := uc.Execute(ctx, usecases.SettleDebtCommand{DebtID: debtID})
		if err != nil {
			return fmt.Errorf("debt settlement failed: %w", err)
		}

		fmt.Printf("Debt %s is %s (paid at %s)\n", result.DebtID, result.Status, result.PaidAt)
		return nil
	})
}

func withEnv(fn func(ctx context.Context, cfg *config.Config, log logger.Interface) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Roster.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	return fn(context.Background(), cfg, logger.NewLogger())
}
