package skill

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/telekom/voice-skill-sdk/config"
	"github.com/telekom/voice-skill-sdk/internal/common/logtrace"
)

// Run mounts the handlers and serves the skill until the context is
// cancelled, an interrupt arrives or the server fails.
func (s *Skill) Run(ctx context.Context) error {
	logtrace.InitLogger(config.Config().Log.Format, config.Config().Log.Level)
	slog := log.With().Str("state", "init").Logger()

	s.MountHandlers()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Config().HTTP.Port),
		Handler:           s.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info().
			Str("addr", srv.Addr).
			Str("api_base", config.Config().GetAPIBase()).
			Strs("intents", s.Intents()).
			Msg("server started")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		slog.Info().Msg("context cancelled")

	case sig := <-shutdown:
		slog.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	}

	// Give outstanding requests 5 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error().Err(err).Msg("could not stop server gracefully")
		if err := srv.Close(); err != nil {
			return fmt.Errorf("could not stop server: %w", err)
		}
	}
	slog.Info().Msg("server stopped")
	return nil
}
