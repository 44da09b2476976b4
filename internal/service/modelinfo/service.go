// Package modelinfo reports what the deployed classifier can recognize.
package modelinfo

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/leafcare-backend/internal/domain"
)

type labelSource interface {
	Labels(ctx context.Context) ([]domain.LabelClass, error)
}

// Config holds the static classifier metadata.
type Config struct {
	Version  string
	Accuracy float64
	// LastUpdated is a YYYY-MM-DD date; empty reports the current date.
	LastUpdated string
}

// Service aggregates model metadata with the vocabularies of the live
// label catalog.
type Service struct {
	labels labelSource
	cfg    Config
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new model info service.
func NewService(log *slog.Logger, labels labelSource, cfg Config) *Service {
	if cfg.Version == "" {
		cfg.Version = domain.DefaultModelVersion
	}
	return &Service{
		labels: labels,
		cfg:    cfg,
		log:    log.With("service", "modelinfo"),
		now:    time.Now,
	}
}

// GetModelInfo returns the model metadata and its supported plants and
// diseases. It never fails: when the catalog is unreachable or yields no
// names for a vocabulary, that vocabulary falls back to the defaults.
func (s *Service) GetModelInfo(ctx context.Context) domain.ModelInfo {
	var plants, diseases []string

	classes, err := s.labels.Labels(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "label catalog unavailable, using defaults", slog.Any("error", err))
	} else {
		plants, diseases = domain.Vocabularies(classes)
	}

	if len(diseases) == 0 {
		diseases = slices.Clone(domain.DefaultDiseases)
	}
	if len(plants) == 0 {
		plants = slices.Clone(domain.DefaultPlants)
	}

	lastUpdated := s.cfg.LastUpdated
	if lastUpdated == "" {
		lastUpdated = s.now().UTC().Format(time.DateOnly)
	}

	return domain.ModelInfo{
		Version:           s.cfg.Version,
		Accuracy:          s.cfg.Accuracy,
		LastUpdated:       lastUpdated,
		SupportedDiseases: diseases,
		SupportedPlants:   plants,
	}
}
