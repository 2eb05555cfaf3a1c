package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abhisek/smartlearn/internal/api"
	"github.com/spf13/cobra"
)

const (
	requestTimeout  = 60 * time.Second
	shutdownTimeout = 30 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the quiz and learning API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		slog.SetDefault(logger)

		rt, err := wire(ctx, cmd, wireOptions{logger: logger, metrics: true, publish: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		addr := rt.cfg.Addr
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}

		sessions := api.NewSessions(rt.cfg.JWTSecret, rt.cfg.SessionTTL, rt.cfg.CookieSecure)
		srv := api.NewServer(rt.engine, sessions, rt.metrics, api.WithLogger(logger))
		server := &http.Server{
			Addr: addr,
			Handler: srv.Handler(api.Config{
				AllowedOrigins: rt.cfg.AllowedOrigins,
				RequestTimeout: requestTimeout,
				Gatherer:       rt.registry,
			}),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: requestTimeout + 5*time.Second,
			IdleTimeout:  60 * time.Second,
		}

		errc := make(chan error, 1)
		go func() {
			logger.Info("listening",
				"addr", addr,
				"env", rt.cfg.Env,
				"db_driver", rt.cfg.DBDriver,
				"llm_chain", rt.cfg.LLM.Chain,
				"llm_ready", rt.llmReady,
			)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errc <- err
			}
			close(errc)
		}()

		select {
		case err, ok := <-errc:
			if ok {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides SMARTLEARN_ADDR)")
}
