// Package prediction implements the prediction history repository using
// PostgreSQL. Filtered reads are composed with squirrel and scanned with
// scany; the first image asset of each prediction is joined laterally.
package prediction

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/leafcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leafcare-backend/internal/domain"
)

// Repo provides prediction persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new prediction repository. db is used whenever the context
// carries no transaction.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var predictionColumns = []string{
	"p.id", "p.user_id", "p.disease", "p.confidence", "p.plant_type", "p.plant_name",
	"p.treatment", "p.model_version", "p.image_url", "p.object_key", "p.metadata",
	"p.saved", "p.created_at",
}

var firstAssetColumns = []string{
	"fa.id AS asset_id", "fa.url AS asset_url", "fa.object_key AS asset_object_key",
	"fa.media_type AS asset_media_type", "fa.created_at AS asset_created_at",
}

const firstAssetJoin = `LEFT JOIN LATERAL (
    SELECT a.id, a.url, a.object_key, a.media_type, a.created_at
    FROM prediction_assets a
    WHERE a.prediction_id = p.id
    ORDER BY a.created_at, a.id
    LIMIT 1
) fa ON TRUE`

// predictionRow is a predictions row joined with its first asset.
type predictionRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Disease      string    `db:"disease"`
	Confidence   float64   `db:"confidence"`
	PlantType    *string   `db:"plant_type"`
	PlantName    *string   `db:"plant_name"`
	Treatment    *string   `db:"treatment"`
	ModelVersion string    `db:"model_version"`
	ImageURL     *string   `db:"image_url"`
	ObjectKey    *string   `db:"object_key"`
	Metadata     []byte    `db:"metadata"`
	Saved        bool      `db:"saved"`
	CreatedAt    time.Time `db:"created_at"`

	AssetID        *uuid.UUID `db:"asset_id"`
	AssetURL       *string    `db:"asset_url"`
	AssetObjectKey *string    `db:"asset_object_key"`
	AssetMediaType *string    `db:"asset_media_type"`
	AssetCreatedAt *time.Time `db:"asset_created_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns one page of a user's predictions matching f, newest first,
// together with the size of the whole filtered set.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.HistoryFilter, limit, offset int) ([]domain.Prediction, int, error) {
	if limit < 1 || offset < 0 {
		return nil, 0, fmt.Errorf("list bounds limit=%d offset=%d: %w", limit, offset, domain.ErrValidation)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	where := filterConditions(userID, f)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From("predictions p").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count predictions: %w", err)
	}
	if total == 0 || offset >= total {
		return []domain.Prediction{}, total, nil
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(predictionColumns...).
		Columns(firstAssetColumns...).
		From("predictions p").
		JoinClause(firstAssetJoin).
		Where(where).
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	var rows []predictionRow
	if err := pgxscan.Select(ctx, q, &rows, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list predictions: %w", err)
	}

	out := make([]domain.Prediction, 0, len(rows))
	for _, row := range rows {
		p, err := toDomain(row)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}

	return out, total, nil
}

const getOwnerSQL = `SELECT user_id FROM predictions WHERE id = $1`

// GetOwner returns the owning user of a prediction regardless of the caller.
// Returns domain.ErrNotFound if the prediction does not exist.
func (r *Repo) GetOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var owner uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getOwnerSQL, id).Scan(&owner); err != nil {
		return uuid.Nil, postgres.MapError(err, "prediction", id)
	}
	return owner, nil
}

const objectKeysSQL = `
SELECT object_key FROM predictions WHERE id = $1 AND object_key IS NOT NULL
UNION
SELECT object_key FROM prediction_assets WHERE prediction_id = $1 AND object_key IS NOT NULL`

// ObjectKeys returns the distinct object-storage keys referenced by a
// prediction and its assets.
func (r *Repo) ObjectKeys(ctx context.Context, id uuid.UUID) ([]string, error) {
	var keys []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &keys, objectKeysSQL, id); err != nil {
		return nil, fmt.Errorf("prediction %s: object keys: %w", id, err)
	}
	return keys, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new prediction. ID and CreatedAt are set by the caller.
func (r *Repo) Create(ctx context.Context, p *domain.Prediction) error {
	meta, err := json.Marshal(p.Metadata)
	if err != nil {
		return fmt.Errorf("marshal prediction metadata: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert("predictions").
		Columns("id", "user_id", "disease", "confidence", "plant_type", "plant_name", "treatment",
			"model_version", "image_url", "object_key", "metadata", "saved", "created_at").
		Values(p.ID, p.UserID, p.Disease, p.Confidence, p.PlantType, p.PlantName, p.Treatment,
			p.ModelVersion, p.ImageURL, p.ObjectKey, meta, p.Saved, p.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert prediction: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "prediction", p.ID)
	}
	return nil
}

// CreateAsset attaches an asset to an existing prediction.
// Returns domain.ErrNotFound if the prediction does not exist.
func (r *Repo) CreateAsset(ctx context.Context, a *domain.Asset) error {
	sql, args, err := postgres.Builder().
		Insert("prediction_assets").
		Columns("id", "prediction_id", "url", "object_key", "media_type", "created_at").
		Values(a.ID, a.PredictionID, a.URL, a.ObjectKey, string(a.Type), a.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert asset: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "prediction_asset", a.ID)
	}
	return nil
}

const deleteSQL = `DELETE FROM predictions WHERE id = $1 AND user_id = $2`

// Delete removes a user's prediction; its assets go with it (ON DELETE CASCADE).
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "prediction", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("prediction %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(row predictionRow) (domain.Prediction, error) {
	p := domain.Prediction{
		ID:           row.ID,
		UserID:       row.UserID,
		Disease:      row.Disease,
		Confidence:   row.Confidence,
		PlantType:    row.PlantType,
		PlantName:    row.PlantName,
		Treatment:    row.Treatment,
		ModelVersion: row.ModelVersion,
		ImageURL:     row.ImageURL,
		ObjectKey:    row.ObjectKey,
		Saved:        row.Saved,
		CreatedAt:    row.CreatedAt,
	}

	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &p.Metadata); err != nil {
			return domain.Prediction{}, fmt.Errorf("prediction %s: decode metadata: %w", row.ID, err)
		}
	}

	if row.AssetID != nil {
		a := domain.Asset{
			ID:           *row.AssetID,
			PredictionID: row.ID,
			ObjectKey:    row.AssetObjectKey,
			Type:         domain.AssetTypeImage,
		}
		if row.AssetURL != nil {
			a.URL = *row.AssetURL
		}
		if row.AssetMediaType != nil {
			a.Type = domain.AssetType(*row.AssetMediaType)
		}
		if row.AssetCreatedAt != nil {
			a.CreatedAt = *row.AssetCreatedAt
		}
		p.Assets = []domain.Asset{a}
	}

	return p, nil
}
