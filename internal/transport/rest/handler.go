// Package rest provides HTTP handlers for catalog operations.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	catalogerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/service"
	"github.com/abgdnv/gocatalog/internal/store"
	"github.com/abgdnv/gocatalog/pkg/web"
	"github.com/go-chi/chi/v5"
)

// Default pagination values applied when page/limit are absent or unusable.
const (
	defaultPage  = 1
	defaultLimit = 10
)

type Handler struct {
	service service.CatalogService
	logger  *slog.Logger
}

// NewHandler creates a new instance of the catalog REST handler.
func NewHandler(service service.CatalogService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the catalog service.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/search", h.Search)
		r.Get("/stats", h.Stats)
		r.Post("/", h.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Delete("/", h.DeleteByID)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// List retrieves one page of products, optionally filtered by category.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	category := r.URL.Query().Get("category")
	page := queryIntOrDefault(r, "page", defaultPage)
	limit := queryIntOrDefault(r, "limit", defaultLimit)

	mLogger.DebugContext(r.Context(), "Received request to list products", "category", category, "page", page, "limit", limit)
	pageResult, err := h.service.List(r.Context(), category, page, limit)
	if err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully listed products", "count", len(pageResult.Products), "total", pageResult.Total)
	web.RespondJSON(w, mLogger, http.StatusOK, pageResult)
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := r.PathValue("id")

	mLogger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	payload, ok := decodeBody(w, r, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to create product", "name", payload.Name())
	created, err := h.service.Create(r.Context(), payload)
	if err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", "ID", created.ID(), "Name", created.Name())
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// Update merges the payload over an existing product.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := r.PathValue("id")
	payload, ok := decodeBody(w, r, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to update product", "ID", id)
	updated, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteByID deletes a product by its ID.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := r.PathValue("id")

	mLogger.DebugContext(r.Context(), "Received request to delete product", "ID", id)
	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}

// Search returns all products whose name contains the q parameter.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	q := r.URL.Query().Get("q")
	if q == "" {
		h.respondDomainError(w, r, mLogger, catalogerrors.NewValidation("Query parameter q is required for search"))
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to search products", "q", q)
	results, err := h.service.Search(r.Context(), q)
	if err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully searched products", "q", q, "count", len(results))
	web.RespondJSON(w, mLogger, http.StatusOK, results)
}

// Stats returns product counts grouped by category.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, stats)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// respondDomainError is the terminal error translation for every handler.
// Typed domain errors render with their own status and message; everything
// else is logged and rendered as a 500.
func (h *Handler) respondDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var domainErr *catalogerrors.Error
	if errors.As(err, &domainErr) {
		logger.WarnContext(r.Context(), "Request failed", "status", domainErr.StatusCode, "error", domainErr.Message)
		web.RespondError(w, logger, domainErr.StatusCode, domainErr.Message)
		return
	}
	logger.ErrorContext(r.Context(), "Unhandled error", "error", err)
	web.RespondError(w, logger, http.StatusInternalServerError, "Internal Server Error")
}

// decodeBody decodes a JSON request body into an open product record.
// Returns false after responding 400 when the body is not valid JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (store.Product, bool) {
	var payload store.Product
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, logger, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return payload, true
}

// queryIntOrDefault parses an optional positive integer query parameter.
// Absent, non-numeric or sub-1 values fall back to the default.
func queryIntOrDefault(r *http.Request, key string, def int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID, found := web.GetRequestID(r.Context())
	if !found {
		reqID = "unknown"
	}
	return h.logger.With("request_id", reqID)
}
