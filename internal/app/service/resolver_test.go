package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/atinyakov/shortlink/internal/app/service"
	"github.com/atinyakov/shortlink/internal/mocks"
	"github.com/atinyakov/shortlink/internal/models"
	"github.com/atinyakov/shortlink/internal/storage"
)

func TestResolver_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLinkStore(ctrl)
	queue := mocks.NewMockClickQueue(ctrl)

	store.EXPECT().FindByCode(gomock.Any(), "promo24").
		Return(&models.Link{ID: "link-1", OriginalURL: "https://shop.example.com/sale"}, nil).Times(1)
	store.EXPECT().FindByCode(gomock.Any(), "nosuch").Return(nil, storage.ErrNotFound).Times(1)

	r := service.NewResolver(store, service.NewClickRecorder(queue))

	got, err := r.Resolve(context.Background(), "promo24")
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/sale", got)

	_, err = r.Resolve(context.Background(), "nosuch")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestResolver_FollowRecordsClick(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLinkStore(ctrl)
	queue := mocks.NewMockClickQueue(ctrl)

	store.EXPECT().FindByCode(gomock.Any(), "promo24").
		Return(&models.Link{ID: "link-1", OriginalURL: "https://shop.example.com/sale"}, nil)

	var job models.ClickJob
	queue.EXPECT().Enqueue(gomock.Any()).DoAndReturn(func(j models.ClickJob) bool {
		job = j
		return true
	})

	r := service.NewResolver(store, service.NewClickRecorder(queue))

	got, err := r.Follow(context.Background(), "promo24", models.Visit{UserAgent: "ua", SourceIP: "49.36.0.1"})

	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/sale", got)
	assert.Equal(t, "link-1", job.LinkID)
	assert.Equal(t, "promo24", job.Code)
	assert.Equal(t, "49.36.0.1", job.SourceIP)
	assert.WithinDuration(t, time.Now(), job.OccurredAt, time.Minute)
}

func TestResolver_FollowUnknownRecordsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLinkStore(ctrl)
	queue := mocks.NewMockClickQueue(ctrl)

	store.EXPECT().FindByCode(gomock.Any(), "nosuch").Return(nil, storage.ErrNotFound)
	queue.EXPECT().Enqueue(gomock.Any()).Times(0)

	r := service.NewResolver(store, service.NewClickRecorder(queue))

	_, err := r.Follow(context.Background(), "nosuch", models.Visit{})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestResolver_FollowSurvivesFullQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLinkStore(ctrl)
	queue := mocks.NewMockClickQueue(ctrl)

	store.EXPECT().FindByCode(gomock.Any(), "promo24").Return(&models.Link{ID: "link-1", OriginalURL: "https://a.example"}, nil)
	queue.EXPECT().Enqueue(gomock.Any()).Return(false)

	r := service.NewResolver(store, service.NewClickRecorder(queue))

	got, err := r.Follow(context.Background(), "promo24", models.Visit{})
	require.NoError(t, err)
	assert.Equal(t, "https://a.example", got)
}

func TestClickRecorder_KeepsTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mocks.NewMockClickQueue(ctrl)
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	queue.EXPECT().Enqueue(gomock.Any()).DoAndReturn(func(j models.ClickJob) bool {
		assert.Equal(t, at, j.OccurredAt)
		return true
	})

	assert.True(t, service.NewClickRecorder(queue).Record("link-1", "promo24", models.Visit{OccurredAt: at}))
}
