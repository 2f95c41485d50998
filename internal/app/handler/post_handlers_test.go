package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/app/service"
	"github.com/atinyakov/shortlink/internal/middleware"
	"github.com/atinyakov/shortlink/internal/mocks"
	"github.com/atinyakov/shortlink/internal/models"
)

func newTestPostHandler(t *testing.T) (*PostHandler, *mocks.MockLinkServiceIface) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockLinkServiceIface(ctrl)

	return NewPost(mockService, zap.NewNop()), mockService
}

func TestCreateLink(t *testing.T) {
	created := &models.Link{ID: "link-1", OwnerID: "test-user-id", OriginalURL: "https://shop.example.com/sale", ShortCode: "a7Kp2xQm", CustomAlias: "promo24"}

	tests := []struct {
		name         string
		body         string
		contentType  string
		mock         func(m *mocks.MockLinkServiceIface)
		expectedCode int
		expectedBody string
	}{
		{
			name:        "created",
			body:        `{"title":"Sale","original_url":"https://shop.example.com/sale","custom_alias":"promo24"}`,
			contentType: "application/json",
			mock: func(m *mocks.MockLinkServiceIface) {
				m.EXPECT().Create(gomock.Any(), "test-user-id", models.CreateLinkRequest{
					Title: "Sale", OriginalURL: "https://shop.example.com/sale", CustomAlias: "promo24",
				}).Return(created, nil)
				m.EXPECT().Response(*created).Return(models.LinkResponse{
					Link: *created, ShortURL: "http://localhost:8080/promo24", QRImageRef: "http://localhost:8080/promo24",
				})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "malformed json",
			body:         `{"original_url":`,
			contentType:  "application/json",
			mock:         func(*mocks.MockLinkServiceIface) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Request body contains badly-formed JSON"}`,
		},
		{
			name:         "unknown field",
			body:         `{"url":"https://example.com"}`,
			mock:         func(*mocks.MockLinkServiceIface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "wrong content type",
			body:         `https://example.com`,
			contentType:  "text/plain",
			mock:         func(*mocks.MockLinkServiceIface) {},
			expectedCode: http.StatusUnsupportedMediaType,
		},
		{
			name: "invalid alias",
			body: `{"original_url":"https://example.com","custom_alias":"a b"}`,
			mock: func(m *mocks.MockLinkServiceIface) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, service.ErrInvalidAlias)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "invalid url",
			body: `{"original_url":"notaurl"}`,
			mock: func(m *mocks.MockLinkServiceIface) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, service.ErrInvalidURL)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "alias taken",
			body: `{"original_url":"https://example.com","custom_alias":"promo24"}`,
			mock: func(m *mocks.MockLinkServiceIface) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, service.ErrAliasTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "code space exhausted",
			body: `{"original_url":"https://example.com"}`,
			mock: func(m *mocks.MockLinkServiceIface) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, service.ErrCodeSpaceExhausted)
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "store failure",
			body: `{"original_url":"https://example.com"}`,
			mock: func(m *mocks.MockLinkServiceIface) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestPostHandler(t)
			tt.mock(m)

			req := httptest.NewRequest(http.MethodPost, "/api/links", bytes.NewBufferString(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			req = middleware.InjectUserID(req, "test-user-id")

			rr := httptest.NewRecorder()
			h.CreateLink(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestCreateLink_ResponseBody(t *testing.T) {
	h, m := newTestPostHandler(t)
	created := &models.Link{ID: "link-1", ShortCode: "a7Kp2xQm", CustomAlias: "promo24"}

	m.EXPECT().Create(gomock.Any(), "test-user-id", gomock.Any()).Return(created, nil)
	m.EXPECT().Response(*created).Return(models.LinkResponse{Link: *created, ShortURL: "http://localhost:8080/promo24", QRImageRef: "http://localhost:8080/promo24"})

	req := httptest.NewRequest(http.MethodPost, "/api/links", bytes.NewBufferString(`{"original_url":"https://example.com","custom_alias":"promo24"}`))
	req = middleware.InjectUserID(req, "test-user-id")
	rr := httptest.NewRecorder()

	h.CreateLink(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp models.LinkResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "http://localhost:8080/promo24", resp.ShortURL)
	assert.Equal(t, "a7Kp2xQm", resp.ShortCode)
	assert.Equal(t, resp.ShortURL, resp.QRImageRef)
}

func TestCreateLink_NoOwner(t *testing.T) {
	h, _ := newTestPostHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/links", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	h.CreateLink(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
