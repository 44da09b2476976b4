package domain

import "strings"

// LabelDelimiter separates plant type and disease in prettified class labels,
// e.g. "Tomato - Early Blight".
const LabelDelimiter = " - "

// ParsedLabel is a classifier label split into its plant and disease parts.
type ParsedLabel struct {
	PlantType string
	Disease   string
	// Delimited is true when the label contained LabelDelimiter.
	Delimited bool
}

// ParseLabel splits a label of the form "<Plant> - <Disease>".
//
// With the delimiter, the label is split on its first occurrence; an empty
// disease part falls back to the plant part. Without it, the whole label is
// the disease and its first word is the plant type. Empty input yields empty
// fields; callers choose the display fallback.
func ParseLabel(label string) ParsedLabel {
	if label == "" {
		return ParsedLabel{}
	}

	if left, right, ok := strings.Cut(label, LabelDelimiter); ok {
		plant := strings.TrimSpace(left)
		disease := strings.TrimSpace(right)
		if disease == "" {
			disease = plant
		}
		return ParsedLabel{PlantType: plant, Disease: disease, Delimited: true}
	}

	var plant string
	if fields := strings.Fields(label); len(fields) > 0 {
		plant = fields[0]
	}
	return ParsedLabel{PlantType: plant, Disease: strings.TrimSpace(label)}
}

// OrUnknown returns s, or UnknownLabel when s is empty.
func OrUnknown(s string) string {
	if s == "" {
		return UnknownLabel
	}
	return s
}
