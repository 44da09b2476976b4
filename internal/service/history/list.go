package history

import (
	"context"
	"fmt"

	"github.com/heartmarshall/leafcare-backend/internal/domain"
	"github.com/heartmarshall/leafcare-backend/pkg/ctxutil"
)

// List returns one page of the authenticated user's history, newest first.
// Each item's image is resolved to a fetchable URL; an image that cannot be
// resolved degrades to the placeholder without failing the page.
func (s *Service) List(ctx context.Context, input ListInput) (*domain.Page[domain.HistoryItem], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	filter, page, pageSize, err := input.normalize(s.cfg)
	if err != nil {
		return nil, err
	}

	predictions, total, err := s.predictions.List(ctx, userID, filter, pageSize, domain.Offset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}

	items := make([]domain.HistoryItem, 0, len(predictions))
	for i := range predictions {
		p := &predictions[i]
		items = append(items, domain.NewHistoryItem(p, s.images.Resolve(ctx, p.ImageRef())))
	}

	return &domain.Page[domain.HistoryItem]{
		Data:     items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
