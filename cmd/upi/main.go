// Модуль main — входная точка сервиса генерации UPI ID: читает конфигурацию,
// собирает маршруты и запускает HTTP-сервер.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sol1corejz/go-upi-generator/cmd/config"
	"github.com/sol1corejz/go-upi-generator/internal/cert"
	"github.com/sol1corejz/go-upi-generator/internal/logger"
	"github.com/sol1corejz/go-upi-generator/internal/mcptool"
	"github.com/sol1corejz/go-upi-generator/internal/middlewares"
	"github.com/sol1corejz/go-upi-generator/internal/upi"
	"github.com/sol1corejz/go-upi-generator/pkg/handlers"
)

// Информация о версии сборки, передается на этапе компиляции.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

const shutdownTimeout = 10 * time.Second

func main() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	config.ParseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Log.Error("Failed to run server", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		return
	}

	logger.Log.Info("Server Shutdown gracefully")
}

// run запускает HTTP-сервер и останавливает его при отмене ctx.
func run(ctx context.Context) error {
	if err := logger.Initialize(config.FlagLogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Log.Sync()

	srv := &http.Server{
		Addr:              config.Addr(),
		Handler:           newRouter(handlers.NewUPIServer(upi.NewGenerator(nil))),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- serve(srv)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server Shutdown failed: %w", err)
	}
	return nil
}

func serve(srv *http.Server) error {
	var err error
	if config.EnableHTTPS {
		created, certErr := cert.Ensure(config.CertificatePath, config.KeyPath)
		if certErr != nil {
			return fmt.Errorf("prepare TLS certificate: %w", certErr)
		}
		if created {
			logger.Log.Info("Generated new TLS certificate", zap.String("path", config.CertificatePath))
		}

		logger.Log.Info("Running HTTPS server", zap.String("address", srv.Addr))
		err = srv.ListenAndServeTLS(config.CertificatePath, config.KeyPath)
	} else {
		logger.Log.Info("Running server", zap.String("address", srv.Addr))
		err = srv.ListenAndServe()
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// newRouter собирает маршруты сервиса.
//
// Маршруты:
// - "/" (GET): описание сервиса.
// - "/fam" (GET, POST): генерация UPI ID по номеру телефона.
// - "/health" (GET): проверка состояния.
// - "/mcp" (SSE): инструменты MCP, если включены в конфигурации.
// - "/debug/pprof": профилирование, только для доверенной подсети.
func newRouter(srv *handlers.UPIServer) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.RequestID, logger.RequestLogger, middlewares.Recover)

	r.Group(func(r chi.Router) {
		r.Use(middlewares.GzipMiddleware)

		r.Get("/", srv.HandleHome)
		r.Get("/fam", srv.HandleFam)
		r.Post("/fam", srv.HandleFam)
		r.Get("/health", srv.HandleHealth)
	})

	if config.EnableMCP {
		h := mcptool.NewHandler(mcptool.NewServer(srv.Generator, handlers.ServiceVersion))
		r.Handle("/mcp", h)
		r.Handle("/mcp/*", h)
	}

	if config.TrustedSubnet != "" {
		r.Route("/debug/pprof", func(r chi.Router) {
			r.Use(middlewares.TrustedSubnetMiddleware(config.TrustedSubnet))
			r.HandleFunc("/", pprof.Index)
			r.HandleFunc("/cmdline", pprof.Cmdline)
			r.HandleFunc("/profile", pprof.Profile)
			r.HandleFunc("/symbol", pprof.Symbol)
			r.HandleFunc("/trace", pprof.Trace)
			r.Handle("/{name}", http.HandlerFunc(pprof.Index))
		})
	}

	return r
}
