package history

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/leafcare-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type predictionRepo interface {
	List(ctx context.Context, userID uuid.UUID, f domain.HistoryFilter, limit, offset int) ([]domain.Prediction, int, error)
	GetOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ObjectKeys(ctx context.Context, id uuid.UUID) ([]string, error)
	Create(ctx context.Context, p *domain.Prediction) error
	CreateAsset(ctx context.Context, a *domain.Asset) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type imageStore interface {
	Upload(ctx context.Context, ownerID uuid.UUID, data []byte, filename string) (domain.StoredImage, error)
	PresignGet(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	OwnsKey(ownerID uuid.UUID, key string) bool
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the history settings the service needs.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
	// ModelVersion is recorded when a saved payload names none.
	ModelVersion   string
	PlaceholderURL string
}

// Service lists, saves and deletes a user's prediction history.
type Service struct {
	predictions predictionRepo
	store       imageStore
	images      *Resolver
	tx          txManager
	cfg         Config
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new history service.
func NewService(
	log *slog.Logger,
	predictions predictionRepo,
	store imageStore,
	tx txManager,
	cfg Config,
) *Service {
	log = log.With("service", "history")
	return &Service{
		predictions: predictions,
		store:       store,
		images:      NewResolver(log, store, cfg.PlaceholderURL),
		tx:          tx,
		cfg:         cfg,
		log:         log,
		now:         time.Now,
	}
}

// modelVersion picks the version recorded with a saved prediction.
func (s *Service) modelVersion(fromPayload string) string {
	switch {
	case fromPayload != "":
		return fromPayload
	case s.cfg.ModelVersion != "":
		return s.cfg.ModelVersion
	default:
		return domain.DefaultModelVersion
	}
}
