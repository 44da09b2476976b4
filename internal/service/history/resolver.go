package history

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/leafcare-backend/internal/domain"
)

type presigner interface {
	PresignGet(ctx context.Context, key string) (string, error)
}

// Resolver turns stored image references into URLs a client can fetch.
// It never fails: anything it cannot resolve becomes the placeholder.
type Resolver struct {
	store       presigner
	placeholder string
	log         *slog.Logger
}

// NewResolver creates a Resolver that presigns object keys with store.
func NewResolver(log *slog.Logger, store presigner, placeholder string) *Resolver {
	return &Resolver{store: store, placeholder: placeholder, log: log}
}

// Resolve returns a fetchable URL for ref.
//
// Object keys are presigned; when presigning fails the stored URL is used,
// then the placeholder. Durable URLs are returned as-is. Missing and
// ephemeral references resolve to the placeholder.
func (r *Resolver) Resolve(ctx context.Context, ref domain.ImageRef) string {
	switch ref.Kind() {
	case domain.ImageRefObject:
		url, err := r.store.PresignGet(ctx, ref.Key())
		if err == nil && url != "" {
			return url
		}
		r.log.WarnContext(ctx, "presign image failed",
			slog.String("key", ref.Key()),
			slog.Any("error", err),
		)
		if ref.URL() != "" {
			return ref.URL()
		}
		return r.placeholder
	case domain.ImageRefURL:
		return ref.URL()
	default:
		return r.placeholder
	}
}
