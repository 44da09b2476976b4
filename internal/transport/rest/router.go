package rest

import "net/http"

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	History   *HistoryHandler
	Predict   *PredictHandler
	ModelInfo *ModelInfoHandler
	// Metrics serves the Prometheus exposition. Optional.
	Metrics http.Handler
	// PredictLimit wraps the predict route. Optional.
	PredictLimit func(http.Handler) http.Handler
}

// NewRouter registers all routes on a fresh ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	var predict http.Handler = http.HandlerFunc(h.Predict.Predict)
	if h.PredictLimit != nil {
		predict = h.PredictLimit(predict)
	}
	mux.Handle("POST /predict", predict)

	mux.HandleFunc("GET /model-info", h.ModelInfo.Get)

	mux.HandleFunc("GET /history", h.History.List)
	mux.HandleFunc("POST /history", h.History.Save)
	mux.HandleFunc("DELETE /history/{id}", h.History.Delete)
	mux.HandleFunc("GET /storage/presigned-url", h.History.PresignedURL)

	return mux
}
