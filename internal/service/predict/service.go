// Package predict classifies uploaded leaf images.
package predict

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/leafcare-backend/internal/domain"
	"github.com/heartmarshall/leafcare-backend/pkg/ctxutil"
)

type classifier interface {
	Predict(ctx context.Context, image []byte, filename, contentType string) (*domain.ClassifierOutput, error)
}

type imageUploader interface {
	Upload(ctx context.Context, ownerID uuid.UUID, data []byte, filename string) (domain.StoredImage, error)
}

// Service runs images through the classifier.
type Service struct {
	classifier   classifier
	uploader     imageUploader
	modelVersion string
	log          *slog.Logger
	now          func() time.Time
}

// NewService creates a new predict service. modelVersion is reported with
// every result.
func NewService(log *slog.Logger, classifier classifier, uploader imageUploader, modelVersion string) *Service {
	if modelVersion == "" {
		modelVersion = domain.DefaultModelVersion
	}
	return &Service{
		classifier:   classifier,
		uploader:     uploader,
		modelVersion: modelVersion,
		log:          log.With("service", "predict"),
		now:          time.Now,
	}
}

// Input is an image to classify.
type Input struct {
	Image       []byte
	Filename    string
	ContentType string
}

// Validate checks all fields and collects all errors.
func (i Input) Validate() error {
	if len(i.Image) == 0 {
		return domain.NewValidationError("image", "required")
	}
	return nil
}

// Result is a classification with its derived display fields. ObjectKey and
// ImageURL are empty when the image could not be stored.
type Result struct {
	Output       domain.ClassifierOutput
	ModelVersion string
	Timestamp    time.Time
	ObjectKey    string
	ImageURL     string
	PlantType    string
	Disease      string
	Treatment    string
}

// Predict stores the image for a later save and classifies it. Storing is
// best-effort: an unreachable object store only drops ObjectKey and
// ImageURL from the result. A classifier failure fails the call.
func (s *Service) Predict(ctx context.Context, input Input) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.uploader.Upload(ctx, userID, input.Image, input.Filename)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		s.log.WarnContext(ctx, "image upload failed, classifying without storing",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
		stored = domain.StoredImage{}
	}

	out, err := s.classifier.Predict(ctx, input.Image, input.Filename, input.ContentType)
	if err != nil {
		return nil, fmt.Errorf("classify image: %w", err)
	}
	if out.Top == nil {
		return nil, domain.NewUpstreamError("inference", errors.New("response has no top prediction"))
	}

	parsed := domain.ParseLabel(out.Top.DisplayLabel())
	disease := domain.OrUnknown(parsed.Disease)

	s.log.InfoContext(ctx, "image classified",
		slog.String("user_id", userID.String()),
		slog.String("label", out.Top.DisplayLabel()),
		slog.Float64("prob", out.Top.Prob),
		slog.Bool("stored", stored.Key != ""),
	)

	return &Result{
		Output:       *out,
		ModelVersion: s.modelVersion,
		Timestamp:    s.now().UTC(),
		ObjectKey:    stored.Key,
		ImageURL:     stored.URL,
		PlantType:    domain.OrUnknown(parsed.PlantType),
		Disease:      disease,
		Treatment:    domain.RecommendTreatment(disease),
	}, nil
}
