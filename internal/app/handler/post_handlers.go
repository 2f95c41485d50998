package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/app/service"
	"github.com/atinyakov/shortlink/internal/models"
)

type PostHandler struct {
	links  service.LinkServiceIface
	logger *zap.Logger
}

func NewPost(s service.LinkServiceIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		links:  s,
		logger: l,
	}
}

// CreateLink handles POST /api/links.
func (h *PostHandler) CreateLink(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	owner, ok := ownerID(req)
	if !ok {
		writeError(res, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var request models.CreateLinkRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeDecodeError(res, err, h.logger)
		return
	}

	link, err := h.links.Create(ctx, owner, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidURL), errors.Is(err, service.ErrInvalidAlias):
			writeError(res, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrAliasTaken):
			h.logger.Info("custom alias already taken", zap.String("alias", request.CustomAlias))
			writeError(res, http.StatusConflict, err.Error())
		default:
			h.logger.Error("unable to create link", zap.Error(err))
			writeError(res, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	writeJSON(res, http.StatusCreated, h.links.Response(*link))
}
