package transport

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goahttp "goa.design/goa/v3/http"
	"goa.design/goa/v3/http/middleware"

	"brightbooks/internal/config"
	"brightbooks/internal/metrics"
)

// NewHandler builds the complete HTTP handler: the API routes on a goa
// muxer, /metrics, and the middleware chain
// Security -> CORS -> Logging -> Prometheus -> Handler.
func NewHandler(svc *Services, cfg *config.Config) http.Handler {
	mux := goahttp.NewMuxer()

	server := New(svc, mux)
	server.Use(ClientContext(cfg.App.TrustProxyHeaders))
	server.Use(middleware.RequestID(middleware.UseXRequestIDHeaderOption(true)))
	server.Use(middleware.PopulateRequestContext())
	server.Mount(mux)

	for _, m := range server.Mounts {
		log.Printf("[HTTP] Mounted %s %s", m.Method, m.Pattern)
	}

	metricsHandler := promhttp.Handler()
	rootHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			metricsHandler.ServeHTTP(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	})

	return securityHeaders(corsHandler(cfg)(requestLogging(metrics.PrometheusMiddleware(rootHandler), cfg)), cfg)
}

// corsHandler configures CORS from the allowed origins. A wildcard origin
// disables credentials.
func corsHandler(cfg *config.Config) func(http.Handler) http.Handler {
	origins := cfg.CORS.AllowedOrigins
	wildcard := len(origins) == 0 || (len(origins) == 1 && origins[0] == "*")
	if wildcard {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: !wildcard,
		MaxAge:           cfg.CORS.MaxAge,
	})
}

// securityHeaders adds security headers to responses
func securityHeaders(handler http.Handler, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

		// HSTS (only in production with HTTPS)
		if !cfg.App.Debug && r.TLS != nil {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		handler.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture status code
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// requestLogging logs all incoming requests and their responses
func requestLogging(handler http.Handler, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip logging for health checks and scrapes to reduce noise
		if r.URL.Path == "/health" || r.URL.Path == "/metrics" {
			handler.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		handler.ServeHTTP(wrapped, r)

		log.Printf("[REQUEST] %s %s from %s -> %d (%v)", r.Method, r.URL.Path, ClientIP(r, cfg.App.TrustProxyHeaders), wrapped.statusCode, time.Since(start))
	})
}
