package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"lpg-delivery-api/config"
	"lpg-delivery-api/handlers"
	"lpg-delivery-api/middleware"
	"lpg-delivery-api/routes"
	"lpg-delivery-api/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDB(db)
	gin.SetMode(cfg.GinMode)

	rdb, err := config.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn("rate limiting disabled", "error", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	svc := services.New(services.Deps{DB: db, Log: log}, cfg.Bcrypt.Cost)
	tokens := middleware.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL)
	router := routes.NewRouter(routes.Deps{
		Handler:   handlers.New(svc, tokens, db),
		Tokens:    tokens,
		DB:        db,
		RateLimit: middleware.NewRateLimiter(cfg.RateLimit, rdb, log),
	}, middleware.RequestLogger(log), middleware.Recovery())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
