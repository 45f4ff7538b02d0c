// Package roster wires the roster generation and publishing use cases into
// the CLI, constructing the real gorm repositories and the redis presence
// provider.
package roster

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"escala/internal/application/roster/usecases"
	"escala/internal/infrastructure/config"
	"escala/internal/infrastructure/database"
	"escala/internal/infrastructure/presence"
	"escala/internal/infrastructure/repository"
	"escala/internal/shared/biztime"
	"escala/internal/shared/db"
	"escala/internal/shared/logger"
)

var (
	configPath string
	startDate  string
	endDate    string
	holidays   []string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster generation tools",
		Long:  `Generate draft allocations for a date range and publish finished drafts.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.PersistentFlags().StringVar(&startDate, "from", "", "First duty date (YYYY-MM-DD)")
	cmd.PersistentFlags().StringVar(&endDate, "to", "", "Last duty date (YYYY-MM-DD)")

	cmd.AddCommand(
		newGenerateCommand(),
		newPublishCommand(),
	)

	return cmd
}

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate draft allocations for a date range",
		RunE:  runGenerate,
	}

	cmd.Flags().StringSliceVar(&holidays, "holiday", nil, "Extra dates (YYYY-MM-DD) that run the heightened routine")

	return cmd
}

func newPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Publish draft days in a date range",
		RunE:  runPublish,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	return withEnv(func(ctx context.Context, cfg *config.Config, log logger.Interface) error {
		presenceClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer presenceClient.Close()

		conn := database.Get()
		generateDay := usecases.NewGenerateDayUseCase(
			repository.NewUserRepository(conn),
			repository.NewRoleGrantRepository(conn),
			repository.NewPostRepository(conn),
			repository.NewDayRepository(conn),
			repository.NewAllocationRepository(conn),
			repository.NewUnavailabilityRepository(conn),
			presence.NewRedisPresenceProvider(presenceClient),
			db.NewTransactionManager(conn),
			cfg.Roster.RestIntervalDays,
			log,
		)
		generatePeriod := usecases.NewGeneratePeriodUseCase(generateDay, log)

		result, err := generatePeriod.Execute(ctx, usecases.GeneratePeriodCommand{
			StartDate: startDate,
			EndDate:   endDate,
			Holidays:  holidays,
		})
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		for _, day := range result.Days {
			fmt.Printf("%s  %-10s  %d slot(s)\n", day.Date, day.Routine, len(day.Slots))
		}
		return nil
	})
}

func runPublish(cmd *cobra.Command, args []string) error {
	return withEnv(func(ctx context.Context, cfg *config.Config, log logger.Interface) error {
		conn := database.Get()
		publishPeriod := usecases.NewPublishPeriodUseCase(
			repository.NewDayRepository(conn),
			db.NewTransactionManager(conn),
			log,
		)

		result, err := publishPeriod.Execute(ctx, usecases.PublishPeriodCommand{
			StartDate: startDate,
			EndDate:   endDate,
		})
		if err != nil {
			return fmt.Errorf("publish failed: %w", err)
		}

		fmt.Printf("Published %d day(s)\n", len(result.PublishedDates))
		for _, date := range result.PublishedDates {
			fmt.Printf("  %s\n", date)
		}
		return nil
	})
}

// withEnv loads config, initializes the logger, timezone and database, then
// runs fn with the live environment.
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
