package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/abhisek/edostudy/internal/config"
	"github.com/abhisek/edostudy/internal/content"
	"github.com/abhisek/edostudy/internal/evaluate"
	"github.com/abhisek/edostudy/internal/llm"
	"github.com/abhisek/edostudy/internal/observability"
	"github.com/abhisek/edostudy/internal/platform/logger"
	"github.com/abhisek/edostudy/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.ServerAddress = addr
		}
		cfg.ContentDir = resolveContentDir(cmd, cfg.ContentDir)

		log, err := logger.New(cfg.LogMode)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		if cfg.LogMode == "prod" || cfg.LogMode == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		shutdownTracing := observability.InitOTel(ctx, log, observability.OtelConfig{
			Environment: cfg.LogMode,
			Version:     version,
		})
		defer func() {
			if err := shutdownTracing(cmd.Context()); err != nil {
				log.Warn("otel shutdown failed", "error", err)
			}
		}()

		events, closeAudit, err := openAudit(cmd)
		if err != nil {
			return err
		}
		defer closeAudit()

		if llm.ConfigFromEnv().Validate() != nil {
			log.Warn("model not configured; explain grading will return 503 until " + llm.EnvAPIKey + " is set")
		}

		router := server.NewRouter(server.RouterConfig{
			Content:     content.NewDir(cfg.ContentDir, content.WithLogger(log)),
			Evaluator:   evaluate.New(llm.EnvSource{Events: events, Log: log}, evaluate.DefaultConfig(), log),
			Log:         log,
			CORSOrigins: cfg.CORSOrigins,
		})

		log.Info("content directory", "path", cfg.ContentDir)
		return server.Serve(ctx, router, server.Options{
			Addr:            cfg.ServerAddress,
			WriteTimeout:    cfg.WriteTimeout,
			ShutdownTimeout: cfg.ShutdownTimeout,
		}, log)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides SERVER_ADDRESS)")
}
