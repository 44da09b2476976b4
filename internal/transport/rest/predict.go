package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/leafcare-backend/internal/domain"
	"github.com/heartmarshall/leafcare-backend/internal/service/predict"
)

const multipartOverhead = 1 << 20

type predictService interface {
	Predict(ctx context.Context, input predict.Input) (*predict.Result, error)
}

// PredictHandler serves POST /predict.
type PredictHandler struct {
	svc      predictService
	maxImage int64
	log      *slog.Logger
}

// NewPredictHandler creates a PredictHandler accepting images of up to
// maxImageBytes.
func NewPredictHandler(svc predictService, maxImageBytes int64, logger *slog.Logger) *PredictHandler {
	return &PredictHandler{svc: svc, maxImage: maxImageBytes, log: logger.With("handler", "predict")}
}

type predictResponse struct {
	Top          *domain.Classification  `json:"top"`
	TopK         []domain.Classification `json:"topk"`
	Probs        []float64               `json:"probs"`
	ModelVersion string                  `json:"modelVersion"`
	Timestamp    time.Time               `json:"timestamp"`
	S3Key        string                  `json:"s3Key,omitempty"`
	S3URL        string                  `json:"s3Url,omitempty"`
	PlantType    string                  `json:"plantType"`
	Disease      string                  `json:"disease"`
	Treatment    string                  `json:"treatment"`
}

// Predict reads the multipart "image" field and classifies it.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxImage+multipartOverhead)

	file, header, err := r.FormFile("image")
	if err != nil {
		if isTooLarge(err) {
			handleError(h.log, w, r, err)
			return
		}
		handleError(h.log, w, r, domain.NewValidationError("image", "no image file provided"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxImage+1))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if int64(len(data)) > h.maxImage {
		writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, "image too large")
		return
	}

	res, err := h.svc.Predict(r.Context(), predict.Input{
		Image:       data,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, predictResponse{
		Top:          res.Output.Top,
		TopK:         nonNil(res.Output.TopK),
		Probs:        nonNil(res.Output.Probs),
		ModelVersion: res.ModelVersion,
		Timestamp:    res.Timestamp,
		S3Key:        res.ObjectKey,
		S3URL:        res.ImageURL,
		PlantType:    res.PlantType,
		Disease:      res.Disease,
		Treatment:    res.Treatment,
	})
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
