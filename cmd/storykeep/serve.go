package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/totegamma/storykeep/internal/application"
	"github.com/totegamma/storykeep/internal/config"
	"github.com/totegamma/storykeep/internal/infra/database"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		conf, err := config.Load(configPath)
		if err != nil {
			return err
		}

		var extra []echo.MiddlewareFunc
		if conf.Server.EnableTrace {
			shutdown, err := setupTraceProvider(ctx, conf.Server.TraceEndpoint, "storykeep", version)
			if err != nil {
				return errors.Wrap(err, "failed to set up tracing")
			}
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					slog.Error("failed to flush traces", slog.String("error", err.Error()))
				}
			}()
			extra = append(extra, otelecho.Middleware("storykeep"))
		}

		db, err := database.NewPostgres(conf.Server.PostgresDsn)
		if err != nil {
			return errors.Wrap(err, "failed to connect database")
		}
		if err := database.Migrate(db); err != nil {
			return errors.Wrap(err, "failed to migrate database")
		}

		rdb, err := database.NewRedis(ctx, conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
		if err != nil {
			return err
		}
		if rdb == nil {
			slog.Warn("redis is not configured; events and realtime are disabled")
		} else {
			defer rdb.Close()
		}

		app := application.New(db, rdb, conf.AuthConfig())
		e := app.Echo(extra...)

		go func() {
			slog.Info("listening", slog.String("addr", conf.Server.ListenAddr))
			if err := e.Start(conf.Server.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("server stopped", slog.String("error", err.Error()))
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
