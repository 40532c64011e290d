package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"bookstore/internal/book"
	"bookstore/internal/config"
	apphttp "bookstore/internal/http"
	"bookstore/internal/logger"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const version = "1.0.0"

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg config.Config) error {
	repo := book.NewMemoryRepo(book.SeedBooks()...)
	service := book.NewService(repo, book.NewIDGenerator(time.Now))

	router, err := apphttp.NewRouter(ctx, service, apphttp.RouterConfig{
		Version:        version,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		TrustProxy:     cfg.TrustProxy,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		EnableHSTS:     cfg.EnableHSTS,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	ls, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", ls.Addr().String()).Msg("Server started on " + displayURL(ls.Addr()))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return httpServer.Serve(ls)
	})
	eg.Go(func() error {
		<-egCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	err = eg.Wait()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// displayURL renders a listen address as a browsable localhost URL.
func displayURL(addr net.Addr) string {
	port := "3000"
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = strconv.Itoa(tcp.Port)
	}
	return "http://localhost:" + port
}
