package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/app/service"
	"github.com/atinyakov/shortlink/internal/models"
	"github.com/atinyakov/shortlink/internal/storage"
)

type GetHandler struct {
	resolver service.ResolverIface
	links    service.LinkServiceIface
	stats    service.StatsIface
	logger   *zap.Logger
}

func NewGet(r service.ResolverIface, s service.LinkServiceIface, st service.StatsIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		resolver: r,
		links:    s,
		stats:    st,
		logger:   l,
	}
}

// ByCode redirects to the destination of a short code or alias and records
// the click in the background.
func (h *GetHandler) ByCode(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	code := chi.URLParam(req, "code")

	original, err := h.resolver.Follow(ctx, code, models.Visit{
		UserAgent:  req.UserAgent(),
		SourceIP:   clientIP(req),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			h.logger.Error("cannot resolve code", zap.String("code", code), zap.Error(err))
		}
		http.Error(res, "link not found", http.StatusNotFound)
		return
	}

	http.Redirect(res, req, original, http.StatusFound)
}

func (h *GetHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()
	if err := h.links.PingContext(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// Links lists the caller's links, optionally filtered by ?q= on the title.
func (h *GetHandler) Links(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	owner, ok := ownerID(req)
	if !ok {
		writeError(res, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	links, err := h.links.List(ctx, owner, req.URL.Query().Get("q"))
	if err != nil {
		h.logger.Error("cannot list links", zap.Error(err))
		writeError(res, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	response := make([]models.LinkResponse, 0, len(links))
	for _, l := range links {
		response = append(response, h.links.Response(l))
	}

	writeJSON(res, http.StatusOK, response)
}

func (h *GetHandler) Link(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	link, ok := h.ownedLink(ctx, res, req)
	if !ok {
		return
	}

	writeJSON(res, http.StatusOK, h.links.Response(*link))
}

// LinkStats handles GET /api/links/{id}/stats?limit=N.
func (h *GetHandler) LinkStats(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	limit := service.DefaultTopLimit
	if raw := req.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > service.MaxTopLimit {
			writeError(res, http.StatusBadRequest, "limit must be an integer between 1 and "+strconv.Itoa(service.MaxTopLimit))
			return
		}
		limit = n
	}

	link, ok := h.ownedLink(ctx, res, req)
	if !ok {
		return
	}

	stats, err := h.stats.LinkStats(ctx, link.ID, limit)
	if err != nil {
		h.linkError(res, err)
		return
	}

	writeJSON(res, http.StatusOK, stats)
}

// Summary handles GET /api/user/summary.
func (h *GetHandler) Summary(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	owner, ok := ownerID(req)
	if !ok {
		writeError(res, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	sum, err := h.stats.OwnerSummary(ctx, owner)
	if err != nil {
		h.logger.Error("cannot build owner summary", zap.Error(err))
		writeError(res, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	writeJSON(res, http.StatusOK, sum)
}

// InternalStats reports service-wide counters. Access is limited by
// middleware.WithSubnet.
func (h *GetHandler) InternalStats(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	stats, err := h.links.ServiceStats(ctx)
	if err != nil {
		h.logger.Error("cannot read service stats", zap.Error(err))
		writeError(res, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	writeJSON(res, http.StatusOK, stats)
}

func (h *GetHandler) ownedLink(ctx context.Context, res http.ResponseWriter, req *http.Request) (*models.Link, bool) {
	owner, ok := ownerID(req)
	if !ok {
		writeError(res, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return nil, false
	}

	link, err := h.links.Get(ctx, owner, chi.URLParam(req, "id"))
	if err != nil {
		h.linkError(res, err)
		return nil, false
	}
	return link, true
}

func (h *GetHandler) linkError(res http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(res, http.StatusNotFound, "link not found")
	case errors.Is(err, storage.ErrForbidden):
		writeError(res, http.StatusForbidden, http.StatusText(http.StatusForbidden))
	default:
		h.logger.Error("link lookup failed", zap.Error(err))
		writeError(res, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
