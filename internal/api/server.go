package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
	"txstream/internal/database"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server представляет служебный HTTP-сервер.
type Server struct {
	port       string
	router     *chi.Mux
	source     TransactionSource
	journal    database.Journal // nil - журнал отключен
	httpServer *http.Server
}

// NewServer создает и настраивает новый экземпляр сервера.
func NewServer(port string, source TransactionSource, journal database.Journal) *Server {
	server := &Server{
		port:    port,
		source:  source,
		journal: journal,
	}
	server.router = server.setupRouter()
	server.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           otelhttp.NewHandler(server.router, "txstream-api"),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server
}

// Run запускает HTTP-сервер. Штатная остановка через Shutdown не считается ошибкой.
func (s *Server) Run() error {
	fmt.Printf("🚀 HTTP-сервер запущен на http://localhost%s\n", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown останавливает сервер, дожидаясь активных запросов.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// setupRouter настраивает маршрутизацию.
func (s *Server) setupRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	// Обработчики API
	transactionHandler := NewTransactionHandler(s.source)
	router.Get("/api/transactions/sample", transactionHandler.Sample)

	batchHandler := NewBatchHandler(s.journal)
	router.Get("/api/batches", batchHandler.Recent)

	return router
}
