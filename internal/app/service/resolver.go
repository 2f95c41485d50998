package service

import (
	"context"

	"github.com/atinyakov/shortlink/internal/models"
)

// Resolver maps codes to destinations. It is on the hot path and does
// exactly one store lookup per call.
type Resolver struct {
	store    LinkStore
	recorder *ClickRecorder
}

func NewResolver(store LinkStore, recorder *ClickRecorder) *Resolver {
	return &Resolver{
		store:    store,
		recorder: recorder,
	}
}

func (r *Resolver) Resolve(ctx context.Context, code string) (string, error) {
	link, err := r.store.FindByCode(ctx, code)
	if err != nil {
		return "", err
	}
	return link.OriginalURL, nil
}

// Follow resolves code and hands the visit to the click recorder. Recording
// never delays or fails the resolution.
func (r *Resolver) Follow(ctx context.Context, code string, visit models.Visit) (string, error) {
	link, err := r.store.FindByCode(ctx, code)
	if err != nil {
		return "", err
	}

	r.recorder.Record(link.ID, code, visit)
	return link.OriginalURL, nil
}
