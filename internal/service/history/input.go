package history

import (
	"encoding/base64"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/leafcare-backend/internal/domain"
)

// ListInput holds the raw query of a history listing. Zero Page and
// PageSize select the defaults; empty strings do not filter.
type ListInput struct {
	Page      int
	PageSize  int
	Disease   string
	PlantType string
	Search    string
	// DateFrom and DateTo are RFC 3339 timestamps or YYYY-MM-DD dates.
	// A bare DateTo date includes that whole day.
	DateFrom string
	DateTo   string
}

// normalize validates the input and resolves it into a filter and page bounds.
func (i ListInput) normalize(cfg Config) (domain.HistoryFilter, int, int, error) {
	var errs []domain.FieldError

	page := i.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be at least 1"})
	}

	pageSize := i.PageSize
	if pageSize == 0 {
		pageSize = cfg.DefaultPageSize
	}
	if pageSize < 1 {
		errs = append(errs, domain.FieldError{Field: "pageSize", Message: "must be at least 1"})
	}
	if cfg.MaxPageSize > 0 && pageSize > cfg.MaxPageSize {
		pageSize = cfg.MaxPageSize
	}

	f := domain.HistoryFilter{
		Disease:   domain.NormalizeOptional(i.Disease),
		PlantType: domain.NormalizeOptional(i.PlantType),
		Search:    domain.NormalizeOptional(i.Search),
	}

	if from, err := parseDate(i.DateFrom, false); err != nil {
		errs = append(errs, domain.FieldError{Field: "dateFrom", Message: err.Error()})
	} else {
		f.DateFrom = from
	}
	if to, err := parseDate(i.DateTo, true); err != nil {
		errs = append(errs, domain.FieldError{Field: "dateTo", Message: err.Error()})
	} else {
		f.DateTo = to
	}
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		errs = append(errs, domain.FieldError{Field: "dateFrom", Message: "must not be after dateTo"})
	}

	if len(errs) > 0 {
		return domain.HistoryFilter{}, 0, 0, &domain.ValidationError{Errors: errs}
	}
	return f, page, pageSize, nil
}

var errBadDate = errors.New("must be an RFC 3339 timestamp or YYYY-MM-DD date")

// parseDate parses an optional date bound. A date-only upper bound is moved
// to the last instant of that day.
func parseDate(s string, endOfDay bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, errBadDate
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// SaveInput holds a classification result to persist and its image.
type SaveInput struct {
	Output       domain.ClassifierOutput
	ModelVersion string
	// ImageURL is a previously obtained URL; it may be an ephemeral
	// browser reference, which is never stored.
	ImageURL string
	// ImageFile is the raw image as a base64 data URL.
	ImageFile string
	// ObjectKey is a key the image was already uploaded under.
	ObjectKey string
}

// Validate checks all fields and collects all errors.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	if i.Output.Top == nil {
		errs = append(errs, domain.FieldError{Field: "prediction.top", Message: "required"})
	} else if p := i.Output.Top.Prob; math.IsNaN(p) || p < 0 || p > 1 {
		errs = append(errs, domain.FieldError{Field: "prediction.top.prob", Message: "must be between 0 and 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// decodeDataURL returns the bytes of a base64 data URL such as
// "data:image/jpeg;base64,/9j/4AAQ...".
func decodeDataURL(s string) ([]byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, domain.NewValidationError("imageFile", "must be a data URL")
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok || payload == "" || !strings.HasSuffix(header, ";base64") {
		return nil, domain.NewValidationError("imageFile", "must be base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, domain.NewValidationError("imageFile", "invalid base64 data")
	}
	return data, nil
}

// DeleteInput identifies a prediction to delete.
type DeleteInput struct {
	PredictionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	if i.PredictionID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
