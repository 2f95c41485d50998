package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/app/service"
	"github.com/atinyakov/shortlink/internal/storage"
)

type DeleteHandler struct {
	links  service.LinkServiceIface
	logger *zap.Logger
}

func NewDelete(s service.LinkServiceIface, l *zap.Logger) *DeleteHandler {
	return &DeleteHandler{
		links:  s,
		logger: l,
	}
}

// DeleteLink handles DELETE /api/links/{id}. The link, its codes and its
// click events are removed synchronously.
func (h *DeleteHandler) DeleteLink(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	owner, ok := ownerID(req)
	if !ok {
		writeError(res, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	err := h.links.Delete(ctx, owner, chi.URLParam(req, "id"))
	switch {
	case err == nil:
		res.WriteHeader(http.StatusNoContent)
	case errors.Is(err, storage.ErrNotFound):
		writeError(res, http.StatusNotFound, "link not found")
	case errors.Is(err, storage.ErrForbidden):
		writeError(res, http.StatusForbidden, http.StatusText(http.StatusForbidden))
	default:
		h.logger.Error("cannot delete link", zap.Error(err))
		writeError(res, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
