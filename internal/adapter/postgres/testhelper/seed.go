package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/leafcare-backend/internal/domain"
)

// PredictionOption customizes a seeded prediction before insert.
type PredictionOption func(*domain.Prediction)

// WithDisease sets disease and plant type.
func WithDisease(plantType, disease string) PredictionOption {
	return func(p *domain.Prediction) {
		p.PlantType = &plantType
		p.Disease = disease
	}
}

// WithPlantName sets the plant name.
func WithPlantName(name string) PredictionOption {
	return func(p *domain.Prediction) { p.PlantName = &name }
}

// WithCreatedAt sets the creation timestamp.
func WithCreatedAt(ts time.Time) PredictionOption {
	return func(p *domain.Prediction) { p.CreatedAt = ts.UTC().Truncate(time.Microsecond) }
}

// WithImage sets the prediction's own image columns.
func WithImage(objectKey, url string) PredictionOption {
	return func(p *domain.Prediction) {
		if objectKey != "" {
			p.ObjectKey = &objectKey
		}
		if url != "" {
			p.ImageURL = &url
		}
	}
}

// SeedPrediction inserts a prediction owned by userID and returns it.
// Defaults: "Tomato - Early Blight" with confidence 0.9, created now.
func SeedPrediction(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, opts ...PredictionOption) domain.Prediction {
	t.Helper()
	ctx := context.Background()

	plant := "Tomato"
	p := domain.Prediction{
		ID:           uuid.New(),
		UserID:       userID,
		Disease:      "Early Blight",
		Confidence:   0.9,
		PlantType:    &plant,
		ModelVersion: domain.DefaultModelVersion,
		Metadata: domain.ClassifierOutput{
			Top:   &domain.Classification{ID: 1, Raw: "Tomato___Early_blight", Label: "Tomato - Early Blight", Prob: 0.9},
			Probs: []float64{0.1, 0.9},
		},
		Saved:     true,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, opt := range opts {
		opt(&p)
	}

	meta, err := json.Marshal(p.Metadata)
	if err != nil {
		t.Fatalf("testhelper: SeedPrediction marshal metadata: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO predictions (id, user_id, disease, confidence, plant_type, plant_name, treatment,
		   model_version, image_url, object_key, metadata, saved, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.UserID, p.Disease, p.Confidence, p.PlantType, p.PlantName, p.Treatment,
		p.ModelVersion, p.ImageURL, p.ObjectKey, meta, p.Saved, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPrediction insert: %v", err)
	}

	return p
}

// SeedAsset attaches an image asset to a prediction.
func SeedAsset(t *testing.T, pool *pgxpool.Pool, predictionID uuid.UUID, url string, objectKey *string) domain.Asset {
	t.Helper()

	a := domain.Asset{
		ID:           uuid.New(),
		PredictionID: predictionID,
		URL:          url,
		ObjectKey:    objectKey,
		Type:         domain.AssetTypeImage,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO prediction_assets (id, prediction_id, url, object_key, media_type, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.PredictionID, a.URL, a.ObjectKey, string(a.Type), a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAsset insert: %v", err)
	}

	return a
}

// CountAssets returns the number of assets stored for a prediction.
func CountAssets(t *testing.T, pool *pgxpool.Pool, predictionID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM prediction_assets WHERE prediction_id = $1`, predictionID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountAssets: %v", err)
	}
	return n
}
