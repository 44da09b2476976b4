package domain

import "strings"

type treatmentRule struct {
	keywords []string
	text     string
}

// treatmentRules are matched in order; the first rule with a keyword
// contained in the lower-cased disease wins.
var treatmentRules = []treatmentRule{
	{[]string{"healthy"}, "No treatment needed. Continue regular care and monitoring."},
	{[]string{"scab"}, "Remove infected leaves. Apply fungicide. Improve air circulation and avoid overhead watering."},
	{[]string{"rot"}, "Remove and destroy infected parts. Improve drainage. Apply appropriate fungicide."},
	{[]string{"rust"}, "Remove infected leaves. Apply sulfur-based fungicide. Ensure proper spacing for air circulation."},
	{[]string{"mildew"}, "Apply neem oil or fungicide spray. Improve air circulation and reduce humidity."},
	{[]string{"blight"}, "Remove infected plants immediately. Apply copper-based fungicide. Practice crop rotation."},
	{[]string{"spot"}, "Remove affected leaves. Apply copper fungicide. Avoid wetting foliage when watering."},
	{[]string{"curl"}, "Remove infected leaves. Control vector insects. Use resistant varieties when replanting."},
	{[]string{"whitefly"}, "Use insecticidal soap or neem oil. Introduce natural predators. Remove heavily infested leaves."},
	{[]string{"mite"}, "Spray with water to dislodge mites. Apply miticide or neem oil. Increase humidity."},
	{[]string{"virus", "mosaic"}, "Remove and destroy infected plants. Control aphid and whitefly populations. Disinfect tools."},
	{[]string{"bacterial"}, "Remove infected tissue. Apply copper-based bactericide. Improve sanitation and avoid overhead watering."},
}

// DefaultTreatment is recommended when no rule matches.
const DefaultTreatment = "Monitor plant closely. Remove affected parts. Consult with a local agricultural extension office for specific treatment."

// RecommendTreatment returns the canned treatment for a disease name.
func RecommendTreatment(disease string) string {
	d := strings.ToLower(disease)
	for _, r := range treatmentRules {
		for _, kw := range r.keywords {
			if strings.Contains(d, kw) {
				return r.text
			}
		}
	}
	return DefaultTreatment
}
