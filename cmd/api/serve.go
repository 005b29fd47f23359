package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/comitanigiacomo/kanso-drift/internal/config"
	"github.com/comitanigiacomo/kanso-drift/internal/observability"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the weekly review worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), config.Load(v))
		},
	}

	f := cmd.Flags()
	f.Int("port", 8080, "HTTP port")
	f.String("redis-addr", "", "redis host:port (cache and shared rate limit)")
	f.String("checkin-secret", "", "HMAC secret for check-in links")
	f.Duration("checkin-ttl", 18*time.Hour, "lifetime of a check-in link")
	f.Int("rate-limit", 100, "requests per minute per client IP (0 disables)")

	_ = v.BindPFlag("port", f.Lookup("port"))
	_ = v.BindPFlag("redis_addr", f.Lookup("redis-addr"))
	_ = v.BindPFlag("checkin_secret", f.Lookup("checkin-secret"))
	_ = v.BindPFlag("checkin_ttl", f.Lookup("checkin-ttl"))
	_ = v.BindPFlag("rate_limit", f.Lookup("rate-limit"))

	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)

	app, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.Router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	app.Worker.Start(gctx)
	g.Go(func() error {
		app.Worker.Wait()
		return nil
	})

	g.Go(func() error {
		logger.Info("kanso drift listening",
			zap.String("addr", srv.Addr),
			zap.String("version", config.Version),
			zap.String("storage", cfg.StorageDriver),
			zap.String("scoring_model", cfg.ScoringModel),
			zap.String("timezone", cfg.Timezone))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}
