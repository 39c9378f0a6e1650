// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"team-member-service/internal/metrics"
	"team-member-service/internal/model"
	"team-member-service/internal/service"
)

// MemberService описывает операции над участниками, нужные обработчикам.
type MemberService interface {
	List(ctx context.Context) ([]model.TeamMember, error)
	Get(ctx context.Context, id string) (model.TeamMember, error)
	Create(ctx context.Context, in model.MemberInput) (model.TeamMember, error)
	Update(ctx context.Context, id string, patch model.MemberPatch) (model.TeamMember, error)
	Delete(ctx context.Context, id string) error
}

// CatalogService описывает чтение проектов и задач.
type CatalogService interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, id string) (model.Project, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
}

type Handler struct {
	Members MemberService
	Catalog CatalogService
	Log     *slog.Logger

	metrics        *metrics.Metrics
	allowedOrigins []string
}

// Option настраивает Handler.
type Option func(*Handler)

// WithMetrics включает сбор метрик и маршрут /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithAllowedOrigins задаёт список origin для CORS. По умолчанию разрешены все.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Handler) {
		if len(origins) > 0 {
			h.allowedOrigins = origins
		}
	}
}

func NewHandler(members MemberService, catalog CatalogService, log *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		Members:        members,
		Catalog:        catalog,
		Log:            log,
		allowedOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	if h.metrics != nil {
		r.Use(h.metrics.Middleware)
	}
	r.Use(h.logRequests)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: "NOT_FOUND", Message: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"})
	})

	r.Get("/", h.handleIndex)
	r.Get("/health", h.handleHealth)
	if h.metrics != nil {
		r.Handle("/metrics", h.metrics.Handler())
	}

	r.Route("/team-members", func(r chi.Router) {
		r.Get("/", h.handleMemberList)
		r.Post("/", h.handleMemberCreate)
		r.Get("/{id}", h.handleMemberGet)
		r.Put("/{id}", h.handleMemberUpdate)
		r.Delete("/{id}", h.handleMemberDelete)
	})

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.handleProjectList)
		r.Get("/{id}", h.handleProjectGet)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.handleTaskList)
		r.Get("/{id}", h.handleTaskGet)
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = service.ErrInternal("internal error", err)
	}

	level := slog.LevelWarn
	if appErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.Log.Log(context.Background(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	writeJSON(w, appErr.Status, errorResponse{Code: appErr.Code, Message: appErr.Message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.Log.Debug("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{
		Message: "Welcome to the team management API. Try /team-members, /projects or /tasks.",
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
