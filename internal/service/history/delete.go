package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/leafcare-backend/internal/domain"
	"github.com/heartmarshall/leafcare-backend/pkg/ctxutil"
)

// Delete removes one of the authenticated user's predictions and its assets.
// A prediction owned by someone else yields domain.ErrForbidden.
//
// Stored image objects are removed afterwards on a best-effort basis;
// failures are logged and do not affect the result.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	owner, err := s.predictions.GetOwner(ctx, input.PredictionID)
	if err != nil {
		return fmt.Errorf("get prediction owner: %w", err)
	}
	if owner != userID {
		return domain.ErrForbidden
	}

	// Keys must be read before the cascade removes the asset rows.
	keys, err := s.predictions.ObjectKeys(ctx, input.PredictionID)
	if err != nil {
		s.log.WarnContext(ctx, "read object keys failed",
			slog.String("prediction_id", input.PredictionID.String()),
			slog.Any("error", err),
		)
	}

	if err := s.predictions.Delete(ctx, userID, input.PredictionID); err != nil {
		return fmt.Errorf("delete prediction: %w", err)
	}

	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			s.log.WarnContext(ctx, "delete image object failed",
				slog.String("prediction_id", input.PredictionID.String()),
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}

	s.log.InfoContext(ctx, "prediction deleted",
		slog.String("user_id", userID.String()),
		slog.String("prediction_id", input.PredictionID.String()),
		slog.Int("objects", len(keys)),
	)

	return nil
}
