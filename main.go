package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"portfolio/internal/app"
	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"
	"portfolio/pkg/rabbitmq"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Portfolio site API",
		SilenceUsage:  true,
	}
	rootCmd.AddCommand(newServeCmd(), newCreateAdminCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel, cfg.IsProduction())
			defer log.Sync()

			return serve(cmd.Context(), cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg config.Config, log *zap.SugaredLogger) error {
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer database.Close(db)

	// --- Contact notifications are optional ---
	var notifier services.MessageNotifier
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue}, log)
		if err != nil {
			log.Warnw("RabbitMQ unavailable, contact notifications disabled", "err", err)
		} else {
			defer mqClient.Close()
			notifier = mqClient
		}
	}

	application := app.New(cfg, db, log, notifier)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infow("starting server", "addr", cfg.AppPort, "env", cfg.AppEnv)
		errCh <- application.Fiber.Listen(cfg.AppPort)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	if err := application.Fiber.Shutdown(); err != nil {
		log.Errorw("error during shutdown", "err", err)
	}
	log.Info("server gracefully stopped")
	return nil
}

func newCreateAdminCmd() *cobra.Command {
	var username, password, role string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create or update a user with a hashed password",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
			if err != nil {
				return err
			}
			defer database.Close(db)

			authService := services.NewAuthService(repositories.NewGORMUserRepository(db), cfg.JWTSecret)
			user, err := authService.CreateAdmin(cmd.Context(), username, password, role)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %s saved with role %s\n", user.Username, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "login name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "plain-text password, stored as a bcrypt hash")
	cmd.Flags().StringVar(&role, "role", models.RoleAdmin, "user role")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
