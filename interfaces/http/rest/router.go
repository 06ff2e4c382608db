package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"mindflow-backend/application/services"
	"mindflow-backend/infrastructure/di"
	"mindflow-backend/interfaces/http/rest/handlers"
	"mindflow-backend/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{
		container: container,
		logger:    container.Logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.container.Config.EnableMetrics {
		router.Use(middleware.Metrics(rt.container.Metrics))
	}

	// CORS configuration
	if rt.container.Config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.mindflow.app"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "If-None-Match", "X-Request-ID"},
			ExposedHeaders:   []string{"ETag", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health and metrics
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.container.Config.EnableMetrics {
		router.Method(http.MethodGet, "/metrics", rt.container.Metrics.Handler())
	}

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.container.JWTValidator, rt.logger))

		// Analysis endpoints
		r.Route("/analysis", func(r chi.Router) {
			analysisHandler := handlers.NewAnalysisHandler(rt.container.Analyzer, rt.logger)
			r.Post("/analyze", analysisHandler.Analyze)
			r.Post("/refine", analysisHandler.Refine)
		})

		// Document endpoints
		r.Route("/documents", func(r chi.Router) {
			documentHandler := handlers.NewDocumentHandler(
				rt.container.CommandBus,
				rt.container.QueryBus,
				rt.container.SaveNoteSaga,
				rt.logger,
			)
			r.Post("/", documentHandler.CreateDocument)
			r.Post("/save-note", documentHandler.SaveNote)
			r.Get("/", documentHandler.ListDocuments)
			r.Get("/{documentID}", documentHandler.GetDocument)
			r.Put("/{documentID}", documentHandler.UpdateDocument)
			r.Delete("/{documentID}", documentHandler.DeleteDocument)
		})

		// Task endpoints
		r.Route("/tasks", func(r chi.Router) {
			taskHandler := handlers.NewTaskHandler(rt.container.CommandBus, rt.container.QueryBus, rt.logger)
			r.Post("/", taskHandler.CreateTask)
			r.Get("/", taskHandler.ListTasks)
			r.Post("/{taskID}/toggle", taskHandler.ToggleTask)
			r.Delete("/{taskID}", taskHandler.DeleteTask)
		})

		// Category endpoints
		r.Route("/categories", func(r chi.Router) {
			categoryHandler := handlers.NewCategoryHandler(rt.container.CommandBus, rt.container.QueryBus, rt.logger)
			r.Get("/", categoryHandler.ListCategories)
			r.Post("/merge", categoryHandler.MergeCategories)
		})

		// Knowledge graph endpoint
		r.Get("/graph", handlers.NewGraphHandler(rt.container.QueryBus, rt.logger).GetGraph)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests. Ready means the blob
// store answers; a failed probe reports 503 so load balancers hold traffic.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	if _, err := rt.container.BlobStore.Exists(req.Context(), services.KeyDocuments); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"not ready"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
