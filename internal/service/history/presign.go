package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/leafcare-backend/internal/domain"
	"github.com/heartmarshall/leafcare-backend/pkg/ctxutil"
)

// PresignedURL mints a retrieval URL for one of the authenticated user's
// stored images. Keys outside the user's upload prefix are forbidden.
func (s *Service) PresignedURL(ctx context.Context, key string) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", domain.NewValidationError("key", "required")
	}
	if !s.store.OwnsKey(userID, key) {
		return "", domain.ErrForbidden
	}

	url, err := s.store.PresignGet(ctx, key)
	if err != nil {
		return "", fmt.Errorf("presign %q: %w", key, err)
	}
	return url, nil
}
