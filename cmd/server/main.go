package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	_ "github.com/lib/pq"

	"homecare-chatbot/internal/alert"
	"homecare-chatbot/internal/config"
	"homecare-chatbot/internal/core"
	"homecare-chatbot/internal/db"
	httpserver "homecare-chatbot/internal/http"
	"homecare-chatbot/internal/llm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "homecare-server",
		Short: "Post-operative home-care assessment service",
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	if cfg.IsDev() {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return log
}

func openDB(ctx context.Context, url string) (*sql.DB, error) {
	dbConn, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := dbConn.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return dbConn, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the assessment service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			dbConn, err := openDB(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer dbConn.Close()
			if err := db.Migrate(cmd.Context(), dbConn); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			repo := db.NewRepository(dbConn)

			if len(cfg.AlertRecipientURLs) == 0 {
				log.Warn().Msg("no alert recipients configured; escalations will be logged only")
			}
			dispatcher := alert.NewDispatcher(
				alert.NewWebhookSink(10*time.Second),
				cfg.AlertRecipientURLs,
				cfg.AlertQueueSize,
				log.With().Str("component", "alerts").Logger(),
			)
			dispatcher.Start()
			defer dispatcher.Stop()

			machine := core.NewMachine(repo, dispatcher, log.With().Str("component", "machine").Logger())
			sessions := core.NewStore()

			var summarizer *core.Summarizer
			if cfg.OpenAIAPIKey != "" {
				summarizer = core.NewSummarizer(llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel))
			}

			e := echo.New()
			e.HideBanner = true
			e.Use(echomw.Recover())
			e.Use(echomw.RequestID())
			srv := httpserver.NewServer(machine, sessions, repo, summarizer,
				log.With().Str("component", "http").Logger())
			srv.Register(e)

			go func() {
				addr := ":" + cfg.Port
				log.Info().Str("addr", addr).Msg("listening")
				if err := e.Start(addr); err != nil {
					log.Info().Err(err).Msg("server stopped")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := e.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown failed")
			}
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			dbConn, err := openDB(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer dbConn.Close()
			if err := db.Migrate(cmd.Context(), dbConn); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			log.Info().Msg("migrations applied")
			return nil
		},
	}
}
