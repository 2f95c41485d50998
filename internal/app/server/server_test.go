package server_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/app/server"
	"github.com/atinyakov/shortlink/internal/app/service"
)

func TestInit_FixedRoutesAreNotValidAliases(t *testing.T) {
	r := server.Init(server.Deps{Logger: zap.NewNop()})

	var segments []string
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		first := strings.SplitN(strings.TrimPrefix(route, "/"), "/", 2)[0]
		if first != "" && !strings.HasPrefix(first, "{") {
			segments = append(segments, first)
		}
		return nil
	})
	require.NoError(t, err)
	require.Contains(t, segments, "ping")
	require.Contains(t, segments, "api")

	for _, s := range segments {
		assert.ErrorIs(t, service.ValidateAlias(s), service.ErrInvalidAlias, "alias %q would shadow a route", s)
	}
}
