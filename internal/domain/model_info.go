package domain

import (
	"slices"
	"strings"
)

// LabelClass is one entry of the classifier's label catalog.
type LabelClass struct {
	ID    int    `json:"id"`
	Raw   string `json:"raw"`
	Label string `json:"label"`
}

// ModelInfo describes the deployed classifier.
type ModelInfo struct {
	Version           string   `json:"version"`
	Accuracy          float64  `json:"accuracy"`
	LastUpdated       string   `json:"lastUpdated"`
	SupportedDiseases []string `json:"supportedDiseases"`
	SupportedPlants   []string `json:"supportedPlants"`
}

// Vocabularies used when the label catalog is unavailable or empty.
var (
	DefaultDiseases = []string{
		"Healthy", "Powdery Mildew", "Leaf Spot", "Rust",
		"Blight", "Bacterial Wilt", "Root Rot", "Mosaic Virus",
	}
	DefaultPlants = []string{"Tomato", "Potato", "Pepper", "Cucumber", "Lettuce", "Bean"}
)

// Vocabularies derives the sorted, de-duplicated plant and disease names of
// a label catalog. A plant name is only taken from delimited labels; an
// undelimited label contributes its whole text as a disease.
func Vocabularies(classes []LabelClass) (plants, diseases []string) {
	plantSet := make(map[string]struct{})
	diseaseSet := make(map[string]struct{})

	for _, c := range classes {
		label := c.Label
		if label == "" {
			label = c.Raw
		}
		parsed := ParseLabel(strings.TrimSpace(label))
		if parsed.Delimited && parsed.PlantType != "" {
			plantSet[parsed.PlantType] = struct{}{}
		}
		if parsed.Disease != "" {
			diseaseSet[parsed.Disease] = struct{}{}
		}
	}

	return sortedKeys(plantSet), sortedKeys(diseaseSet)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
