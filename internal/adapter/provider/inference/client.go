// Package inference is the HTTP client of the plant-disease classifier
// service: POST /predict classifies one image, GET /labels lists the classes.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/heartmarshall/leafcare-backend/internal/config"
	"github.com/heartmarshall/leafcare-backend/internal/domain"
)

const serviceName = "inference"

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 4 << 10

// recorder receives upstream call observations.
type recorder interface {
	ObserveUpstream(service, operation string, err error, d time.Duration)
}

// Client calls the classifier service. It performs no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    recorder
	log        *slog.Logger
}

// NewClient creates a Client. httpClient may be nil, in which case a client
// with the configured timeout is used.
func NewClient(cfg config.InferenceConfig, httpClient *http.Client, metrics recorder, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		metrics:    metrics,
		log:        logger.With("adapter", serviceName),
	}
}

// apiError is the error body of the classifier service. FastAPI validation
// errors use "detail" instead of "error".
type apiError struct {
	Error  string `json:"error"`
	Detail any    `json:"detail"`
}

type labelsResponse struct {
	Classes []domain.LabelClass `json:"classes"`
}

// Predict classifies one image. The image is sent as the multipart field
// "file".
func (c *Client) Predict(ctx context.Context, image []byte, filename, contentType string) (*domain.ClassifierOutput, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if filename == "" {
		filename = "image.jpg"
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("inference: create form part: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("inference: write form part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("inference: close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &body)
	if err != nil {
		return nil, fmt.Errorf("inference: create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	var out domain.ClassifierOutput
	if err := c.do(ctx, req, "predict", &out); err != nil {
		return nil, err
	}

	if out.TopK == nil {
		out.TopK = []domain.Classification{}
	}
	if out.Probs == nil {
		out.Probs = []float64{}
	}

	c.log.DebugContext(ctx, "inference prediction",
		slog.Int("bytes", len(image)),
		slog.Int("topk", len(out.TopK)),
	)

	return &out, nil
}

// Labels returns the classifier's label catalog.
func (c *Client) Labels(ctx context.Context) ([]domain.LabelClass, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/labels", nil)
	if err != nil {
		return nil, fmt.Errorf("inference: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var out labelsResponse
	if err := c.do(ctx, req, "labels", &out); err != nil {
		return nil, err
	}
	return out.Classes, nil
}

// Ping reports whether the classifier answers with its label catalog.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Labels(ctx)
	return err
}

// do executes req and decodes a 2xx JSON body into dst. Every failure is
// returned as a *domain.UpstreamError.
func (c *Client) do(ctx context.Context, req *http.Request, op string, dst any) (err error) {
	start := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveUpstream(serviceName, op, err, time.Since(start))
		}
	}()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "inference request failed", slog.String("operation", op), slog.String("error", err.Error()))
		return domain.NewUpstreamError(serviceName, fmt.Errorf("%s: %w", op, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := readErrorMessage(resp.Body)
		c.log.WarnContext(ctx, "inference unexpected status",
			slog.String("operation", op),
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg),
		)
		return domain.NewUpstreamError(serviceName, &StatusError{Operation: op, Code: resp.StatusCode, Message: msg})
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return domain.NewUpstreamError(serviceName, fmt.Errorf("%s: decode json: %w", op, err))
	}
	return nil
}

// StatusError is a non-2xx response of the classifier service.
type StatusError struct {
	Operation string
	Code      int
	Message   string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Operation, e.Code)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Operation, e.Code, e.Message)
}

// StatusCode extracts the upstream HTTP status from err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var body apiError
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if s, ok := body.Detail.(string); ok {
			return s
		}
	}
	return ""
}
