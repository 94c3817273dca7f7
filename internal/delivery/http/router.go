package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"groupschedule/internal/delivery/http/controllers"
	"groupschedule/internal/delivery/http/middleware"
)

// MetricsExporter observes requests and serves the scrape endpoint.
type MetricsExporter interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// RouterConfig carries the cross-cutting dependencies of the router.
type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	Metrics        MetricsExporter
}

// NewRouter initializes the HTTP router with all application routes wrapped in
// request logging, metrics, recovery and CORS (outermost first).
func NewRouter(cfg RouterConfig,
	eventController *controllers.EventController,
	responseController *controllers.ResponseController,
	healthController *controllers.HealthController,
) http.Handler {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events/{publicId}", eventController.GetEvent)
	mux.HandleFunc("PUT /events/{publicId}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /events/{publicId}", eventController.DeleteEvent)
	mux.HandleFunc("POST /events/{publicId}/verify", eventController.VerifyPassphrase)
	mux.HandleFunc("GET /events/{publicId}/export.csv", eventController.ExportCSV)
	mux.HandleFunc("POST /events/{publicId}/invitations", eventController.SendInvitations)

	// Responses
	mux.HandleFunc("POST /events/{publicId}/responses", responseController.SubmitResponse)

	// Ops
	mux.HandleFunc("GET /healthz", healthController.Health)
	mux.Handle("GET /metrics", cfg.Metrics.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Recovery sits inside logging and metrics so a recovered 500 is still
	// logged and counted.
	var handler http.Handler = mux
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = middleware.Recovery(cfg.Logger, handler)
	handler = middleware.Metrics(cfg.Metrics, handler)
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	return handler
}
