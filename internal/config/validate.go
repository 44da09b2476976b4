package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// maxPresignTTL is the longest expiry S3 accepts for SigV4 presigned URLs.
const maxPresignTTL = 7 * 24 * time.Hour

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Inference.validate(); err != nil {
		return fmt.Errorf("inference: %w", err)
	}
	if err := c.Model.validate(); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	if err := c.History.validate(); err != nil {
		return fmt.Errorf("history: %w", err)
	}

	if c.RateLimit.PredictPerMinute <= 0 {
		return fmt.Errorf("rate_limit.predict_per_minute must be > 0 (got %d)", c.RateLimit.PredictPerMinute)
	}
	if c.RateLimit.PredictBurst <= 0 {
		return fmt.Errorf("rate_limit.predict_burst must be > 0 (got %d)", c.RateLimit.PredictBurst)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	if strings.TrimSpace(s.Bucket) == "" {
		return fmt.Errorf("bucket is required")
	}
	if s.PresignTTL <= 0 || s.PresignTTL > maxPresignTTL {
		return fmt.Errorf("presign_ttl must be in (0, %s] (got %s)", maxPresignTTL, s.PresignTTL)
	}
	if (s.AccessKeyID == "") != (s.SecretAccessKey == "") {
		return fmt.Errorf("access_key_id and secret_access_key must be set together")
	}
	if strings.Trim(s.UploadPrefix, "/") == "" {
		return fmt.Errorf("upload_prefix is required")
	}
	return nil
}

func (i *InferenceConfig) validate() error {
	u, err := url.Parse(i.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", i.BaseURL)
	}
	if i.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", i.Timeout)
	}
	return nil
}

func (m *ModelConfig) validate() error {
	if m.Accuracy < 0 || m.Accuracy > 1 {
		return fmt.Errorf("accuracy must be in [0, 1] (got %v)", m.Accuracy)
	}
	if m.LastUpdated != "" {
		if _, err := time.Parse(time.DateOnly, m.LastUpdated); err != nil {
			return fmt.Errorf("last_updated must be YYYY-MM-DD: %w", err)
		}
	}
	return nil
}

func (h *HistoryConfig) validate() error {
	if h.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", h.DefaultPageSize)
	}
	if h.MaxPageSize < h.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", h.MaxPageSize, h.DefaultPageSize)
	}
	if h.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", h.MaxUploadBytes)
	}
	return nil
}
