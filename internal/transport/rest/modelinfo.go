package rest

import (
	"context"
	"net/http"

	"github.com/heartmarshall/leafcare-backend/internal/domain"
)

type modelInfoService interface {
	GetModelInfo(ctx context.Context) domain.ModelInfo
}

// ModelInfoHandler serves GET /model-info. It needs no session.
type ModelInfoHandler struct {
	svc modelInfoService
}

// NewModelInfoHandler creates a ModelInfoHandler.
func NewModelInfoHandler(svc modelInfoService) *ModelInfoHandler {
	return &ModelInfoHandler{svc: svc}
}

// Get returns the model metadata and supported vocabularies.
func (h *ModelInfoHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.GetModelInfo(r.Context()))
}
