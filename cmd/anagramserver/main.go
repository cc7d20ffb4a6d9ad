package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/justinas/alice"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/phrase_anagrammer/config"
	"github.com/domino14/phrase_anagrammer/internal/anagramserver"
	"github.com/domino14/phrase_anagrammer/internal/stores"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

func setLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func newRouter(cfg *config.Config, anagramServer *anagramserver.Server) http.Handler {
	var handlerOpts []connect.HandlerOption
	if cfg.SecretKey != "" {
		handlerOpts = append(handlerOpts,
			connect.WithInterceptors(NewAuthInterceptor([]byte(cfg.SecretKey))))
	} else {
		log.Warn().Msg("no-secret-key-auth-disabled")
	}

	mux := http.NewServeMux()
	path, handler := anagramserver.NewAnagrammerHandler(anagramServer, handlerOpts...)
	mux.Handle(path, handler)
	// The plain text handler has no way to carry a token.
	if cfg.SecretKey == "" {
		mux.Handle("/plain", plainTextHandler(anagramServer))
	} else {
		log.Info().Msg("plain-text-handler-disabled")
	}

	middlewares := alice.New(
		hlog.NewHandler(log.Logger),
		hlog.RequestIDHandler("req-id", "X-Request-Id"),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("request")
		}),
	)
	return middlewares.Then(mux)
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}
	setLogLevel(cfg.LogLevel)
	log.Info().Str("listen-addr", cfg.ListenAddr).Str("lexicon-path", cfg.LexiconPath).
		Int("min-word-length", cfg.MinWordLength).Bool("auth", cfg.SecretKey != "").
		Msg("anagramserver-started")

	store, err := stores.Open(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-open-store")
	}
	defer store.Close()

	anagramServer := anagramserver.NewServer(cfg, store)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: newRouter(cfg, anagramServer),
	}
	idleConnsClosed := make(chan struct{})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		// We received an interrupt signal, shut down.
		log.Info().Msg("got quit signal...")
		ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)

		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Error().Msgf("HTTP server Shutdown: %v", err)
		}
		cancel()
		close(idleConnsClosed)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("")
	}
	<-idleConnsClosed
	log.Info().Msg("server gracefully shutting down")
}
