package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/FactoryPlanner_Go/docs"
	"github.com/osse101/FactoryPlanner_Go/internal/database"
	"github.com/osse101/FactoryPlanner_Go/internal/handler"
	"github.com/osse101/FactoryPlanner_Go/internal/logger"
	"github.com/osse101/FactoryPlanner_Go/internal/metrics"
	"github.com/osse101/FactoryPlanner_Go/internal/plan"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64

	// Per-IP rate limit; zero values use RateWindow and MaxRequestsPerWindow
	RateWindow time.Duration
	RateLimit  int
}

type Server struct {
	httpServer  *http.Server
	dbPool      database.Pool
	planService plan.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, planService plan.Service, products handler.ProductCatalog, catalogVersion string) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, planService, products, catalogVersion),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		dbPool:      dbPool,
		planService: planService,
	}
}

// NewRouter builds the routing tree with the full middleware stack
func NewRouter(opts Options, dbPool database.Pool, planService plan.Service, products handler.ProductCatalog, catalogVersion string) http.Handler {
	r := chi.NewRouter()

	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.RateWindow, opts.RateLimit)

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxBody))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool, catalogVersion))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	planHandler := handler.NewPlanHandler(planService)
	savedHandler := handler.NewSavedPlanHandler(planService)
	productHandler := handler.NewProductHandler(products)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/plans", func(r chi.Router) {
			r.Post("/", savedHandler.HandleSave)
			r.Post("/generate", planHandler.HandleGenerate)
			r.Post("/swap", planHandler.HandleSwap)
			r.Post("/rescale", planHandler.HandleRescale)
			r.Post("/summary", planHandler.HandleSummary)
			r.Get("/most-viewed", savedHandler.HandleMostViewed)
			r.Get("/{id}", savedHandler.HandleGet)
			r.Delete("/{id}", savedHandler.HandleDelete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.HandleListProducts)
			r.Get("/catalog", productHandler.HandleProductCatalog)
		})
		r.Get("/recipes/{name}", productHandler.HandleGetRecipe)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/cache/stats", savedHandler.HandleCacheStats)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for probes and scrapes
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
