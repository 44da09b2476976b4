package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/heartmarshall/leafcare-backend/internal/domain"
	"github.com/heartmarshall/leafcare-backend/internal/service/history"
)

// historyService defines the minimal interface needed by HistoryHandler.
type historyService interface {
	List(ctx context.Context, input history.ListInput) (*domain.Page[domain.HistoryItem], error)
	Save(ctx context.Context, input history.SaveInput) (*domain.HistoryItem, error)
	Delete(ctx context.Context, input history.DeleteInput) error
	PresignedURL(ctx context.Context, key string) (string, error)
}

// HistoryHandler serves the prediction history endpoints.
type HistoryHandler struct {
	svc         historyService
	maxBodySize int64
	log         *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler. maxImageBytes bounds the raw
// image; save bodies carry it base64 encoded and are bounded accordingly.
func NewHistoryHandler(svc historyService, maxImageBytes int64, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		svc:         svc,
		maxBodySize: maxImageBytes*4/3 + 64<<10,
		log:         logger.With("handler", "history"),
	}
}

type predictionPayload struct {
	domain.ClassifierOutput
	ModelVersion string `json:"modelVersion"`
}

type saveRequest struct {
	Prediction *predictionPayload `json:"prediction"`
	ImageURL   string             `json:"imageUrl"`
	ImageFile  string             `json:"imageFile"`
	S3Key      string             `json:"s3Key"`
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type presignedURLResponse struct {
	URL string `json:"url"`
}

// List handles GET /history.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var fields []domain.FieldError
	page, ok := queryInt(q.Get("page"))
	if !ok {
		fields = append(fields, domain.FieldError{Field: "page", Message: "must be an integer"})
	}
	pageSize, ok := queryInt(q.Get("pageSize"))
	if !ok {
		fields = append(fields, domain.FieldError{Field: "pageSize", Message: "must be an integer"})
	}
	if len(fields) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(fields))
		return
	}

	result, err := h.svc.List(r.Context(), history.ListInput{
		Page:      page,
		PageSize:  pageSize,
		Disease:   q.Get("disease"),
		PlantType: q.Get("plantType"),
		Search:    q.Get("search"),
		DateFrom:  q.Get("dateFrom"),
		DateTo:    q.Get("dateTo"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Save handles POST /history.
func (h *HistoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if isTooLarge(err) {
			handleError(h.log, w, r, err)
			return
		}
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return
	}

	input := history.SaveInput{
		ImageURL:  req.ImageURL,
		ImageFile: req.ImageFile,
		ObjectKey: req.S3Key,
	}
	if req.Prediction != nil {
		input.Output = req.Prediction.ClassifierOutput
		input.ModelVersion = req.Prediction.ModelVersion
	}

	item, err := h.svc.Save(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Delete handles DELETE /history/{id}.
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		// Not a prediction ID, so no such prediction.
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
		return
	}

	if err := h.svc.Delete(r.Context(), history.DeleteInput{PredictionID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Success: true, Message: "Prediction deleted successfully"})
}

// PresignedURL handles GET /storage/presigned-url?key=.
func (h *HistoryHandler) PresignedURL(w http.ResponseWriter, r *http.Request) {
	url, err := h.svc.PresignedURL(r.Context(), r.URL.Query().Get("key"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, presignedURLResponse{URL: url})
}

// queryInt parses an optional integer query value; empty yields 0.
func queryInt(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}
