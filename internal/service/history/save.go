package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/leafcare-backend/internal/domain"
	"github.com/heartmarshall/leafcare-backend/pkg/ctxutil"
)

// Save persists a classification result for the authenticated user.
//
// Raw image bytes are uploaded when no object key exists yet or when the
// only URL is an ephemeral browser reference. If that upload fails and the
// ephemeral reference is all there is, nothing durable can be stored and the
// save fails; otherwise it proceeds without a stored image.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.HistoryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ref, err := s.storeImage(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	top := input.Output.Top
	parsed := domain.ParseLabel(top.DisplayLabel())
	disease := domain.OrUnknown(parsed.Disease)
	plantType := domain.OrUnknown(parsed.PlantType)
	treatment := domain.RecommendTreatment(disease)

	output := input.Output
	if output.TopK == nil {
		output.TopK = []domain.Classification{}
	}
	if output.Probs == nil {
		output.Probs = []float64{}
	}

	p := &domain.Prediction{
		ID:           uuid.New(),
		UserID:       userID,
		Disease:      disease,
		Confidence:   top.Prob,
		PlantType:    &plantType,
		PlantName:    &plantType,
		Treatment:    &treatment,
		ModelVersion: s.modelVersion(strings.TrimSpace(input.ModelVersion)),
		Metadata:     output,
		Saved:        true,
		CreatedAt:    s.now().UTC(),
	}
	if ref.Key() != "" {
		key := ref.Key()
		p.ObjectKey = &key
	}
	if ref.URL() != "" {
		url := ref.URL()
		p.ImageURL = &url
		p.Assets = []domain.Asset{{
			ID:           uuid.New(),
			PredictionID: p.ID,
			URL:          url,
			ObjectKey:    p.ObjectKey,
			Type:         domain.AssetTypeImage,
			CreatedAt:    p.CreatedAt,
		}}
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.predictions.Create(txCtx, p); createErr != nil {
			return fmt.Errorf("create prediction: %w", createErr)
		}
		for i := range p.Assets {
			if assetErr := s.predictions.CreateAsset(txCtx, &p.Assets[i]); assetErr != nil {
				return fmt.Errorf("create asset: %w", assetErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "prediction saved",
		slog.String("user_id", userID.String()),
		slog.String("prediction_id", p.ID.String()),
		slog.String("disease", disease),
		slog.String("image", ref.Kind().String()),
	)

	item := domain.NewHistoryItem(p, s.images.Resolve(ctx, p.ImageRef()))
	return &item, nil
}

// storeImage settles the durable image reference of a save, uploading the
// raw bytes when needed.
func (s *Service) storeImage(ctx context.Context, userID uuid.UUID, input SaveInput) (domain.ImageRef, error) {
	key := strings.TrimSpace(input.ObjectKey)
	url := strings.TrimSpace(input.ImageURL)
	ephemeral := domain.IsEphemeralURL(url)

	if key != "" && !s.store.OwnsKey(userID, key) {
		return domain.ImageRef{}, fmt.Errorf("object key %q: %w", key, domain.ErrForbidden)
	}

	if input.ImageFile != "" && (key == "" || ephemeral) {
		data, err := decodeDataURL(input.ImageFile)
		if err != nil {
			return domain.ImageRef{}, err
		}

		stored, err := s.store.Upload(ctx, userID, data, "")
		switch {
		case err == nil:
			return domain.ObjectImageRef(stored.Key, stored.URL), nil
		case errors.Is(err, domain.ErrValidation):
			return domain.ImageRef{}, err
		case ephemeral && key == "":
			return domain.ImageRef{}, fmt.Errorf("upload image: %w", err)
		default:
			s.log.WarnContext(ctx, "image upload failed, saving without it",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}
	} else if ephemeral && key == "" {
		return domain.ImageRef{}, domain.NewValidationError("imageUrl",
			"ephemeral image reference cannot be saved, provide imageFile")
	}

	return domain.ParseImageRef(key, url), nil
}
