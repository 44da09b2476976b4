package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultModelVersion is recorded when neither the payload nor the
// configuration names a model version.
const DefaultModelVersion = "v2.1.0"

// UnknownLabel is stored when a label yields no plant type or disease.
const UnknownLabel = "Unknown"

// Classification is one ranked classifier output.
type Classification struct {
	ID    int     `json:"id"`
	Raw   string  `json:"raw"`
	Label string  `json:"label"`
	Prob  float64 `json:"prob"`
}

// DisplayLabel returns the prettified label, falling back to the raw class name.
func (c Classification) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Raw
}

// ClassifierOutput is the full response of the inference service for one image.
// It is stored verbatim as the prediction's metadata.
type ClassifierOutput struct {
	Top   *Classification  `json:"top"`
	TopK  []Classification `json:"topk"`
	Probs []float64        `json:"probs"`
}

// Prediction is a classification result owned by one user.
type Prediction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Disease      string
	Confidence   float64
	PlantType    *string
	PlantName    *string
	Treatment    *string
	ModelVersion string
	ImageURL     *string
	ObjectKey    *string
	Metadata     ClassifierOutput
	Saved        bool
	CreatedAt    time.Time

	Assets []Asset
}

// ImageRef returns the stored image reference of the prediction, preferring
// the first asset over the prediction's own columns.
func (p *Prediction) ImageRef() ImageRef {
	var key, url string
	if len(p.Assets) > 0 {
		if p.Assets[0].ObjectKey != nil {
			key = *p.Assets[0].ObjectKey
		}
		url = p.Assets[0].URL
	}
	if key == "" && p.ObjectKey != nil {
		key = *p.ObjectKey
	}
	if url == "" && p.ImageURL != nil {
		url = *p.ImageURL
	}
	return ParseImageRef(key, url)
}

// AssetType tags the media kind of an asset.
type AssetType string

const AssetTypeImage AssetType = "IMAGE"

// Asset is an image attached to a prediction. Deleted with its prediction.
type Asset struct {
	ID           uuid.UUID
	PredictionID uuid.UUID
	URL          string
	ObjectKey    *string
	Type         AssetType
	CreatedAt    time.Time
}

// HistoryItem is a prediction as presented to its owner, with the image
// reference already resolved to a fetchable URL.
type HistoryItem struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	ImageURL     string    `json:"imageUrl"`
	Disease      string    `json:"disease"`
	Confidence   float64   `json:"confidence"`
	PlantType    string    `json:"plantType"`
	PlantName    string    `json:"plantName"`
	Treatment    *string   `json:"treatment"`
	ModelVersion string    `json:"modelVersion"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewHistoryItem builds the owner-facing view of p with imageURL as its image.
func NewHistoryItem(p *Prediction, imageURL string) HistoryItem {
	item := HistoryItem{
		ID:           p.ID,
		UserID:       p.UserID,
		ImageURL:     imageURL,
		Disease:      p.Disease,
		Confidence:   p.Confidence,
		Treatment:    p.Treatment,
		ModelVersion: p.ModelVersion,
		CreatedAt:    p.CreatedAt,
	}
	if p.PlantType != nil {
		item.PlantType = *p.PlantType
	}
	if p.PlantName != nil {
		item.PlantName = *p.PlantName
	}
	if item.ModelVersion == "" {
		item.ModelVersion = DefaultModelVersion
	}
	return item
}
