package objectstore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/leafcare-backend/internal/config"
	"github.com/heartmarshall/leafcare-backend/internal/domain"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type recordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        []byte
}

// fakeS3 is a minimal path-style S3 endpoint.
type fakeS3 struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
	})
	status := f.status
	f.mu.Unlock()

	if status >= 400 {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>denied</Message></Error>`)
		return
	}
	if r.Method == http.MethodDelete {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (f *fakeS3) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

type upstreamCall struct {
	op  string
	err error
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []upstreamCall
}

func (r *fakeRecorder) ObserveUpstream(_, op string, err error, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, upstreamCall{op: op, err: err})
}

func testConfig(endpoint string) config.StorageConfig {
	return config.StorageConfig{
		Region:         "us-east-1",
		Bucket:         "plant-disease-uploads",
		Endpoint:       endpoint,
		UsePathStyle:   true,
		UploadPrefix:   "predictions",
		PresignTTL:     7 * 24 * time.Hour,
		PlaceholderURL: "/placeholder.svg",
	}
}

func newTestStore(t *testing.T, endpoint string, rec recorder) *Store {
	t.Helper()
	client := s3.New(s3.Options{
		Region:           "us-east-1",
		Credentials:      credentials.NewStaticCredentialsProvider("test-key", "test-secret", ""),
		BaseEndpoint:     aws.String(endpoint),
		UsePathStyle:     true,
		RetryMaxAttempts: 1,

		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
	})
	s := NewWithClient(client, testConfig(endpoint), rec, slog.New(slog.DiscardHandler))
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return s
}

func TestStore_Upload(t *testing.T) {
	t.Parallel()

	fake := &fakeS3{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	rec := &fakeRecorder{}
	store := newTestStore(t, srv.URL, rec)
	owner := uuid.New()

	obj, err := store.Upload(context.Background(), owner, pngHeader, "leaf.jpeg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(obj.Key, "predictions/"+owner.String()+"/1700000000000-"), obj.Key)
	assert.True(t, strings.HasSuffix(obj.Key, ".png"), "extension comes from sniffed type: %s", obj.Key)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.True(t, store.OwnsKey(owner, obj.Key))

	reqs := fake.recorded()
	require.Len(t, reqs, 1, "presigning must not issue requests")
	assert.Equal(t, http.MethodPut, reqs[0].Method)
	assert.Equal(t, "/plant-disease-uploads/"+obj.Key, reqs[0].Path)
	assert.Equal(t, "image/png", reqs[0].ContentType)
	assert.Equal(t, pngHeader, reqs[0].Body)

	u, err := url.Parse(obj.URL)
	require.NoError(t, err)
	assert.Equal(t, "/plant-disease-uploads/"+obj.Key, u.Path)
	assert.Equal(t, "604800", u.Query().Get("X-Amz-Expires"))

	require.Len(t, rec.calls, 2)
	assert.Equal(t, "put", rec.calls[0].op)
	assert.Equal(t, "presign", rec.calls[1].op)
}

func TestStore_Upload_RejectsNonImage(t *testing.T) {
	t.Parallel()

	fake := &fakeS3{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	store := newTestStore(t, srv.URL, nil)

	_, err := store.Upload(context.Background(), uuid.New(), []byte("just some text"), "notes.txt")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = store.Upload(context.Background(), uuid.New(), nil, "empty.jpg")
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Empty(t, fake.recorded())
}

func TestStore_Put_UpstreamFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeS3{status: http.StatusForbidden}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	rec := &fakeRecorder{}
	store := newTestStore(t, srv.URL, rec)

	_, err := store.Upload(context.Background(), uuid.New(), pngHeader, "leaf.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)

	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, "object_store", upstream.Service)

	require.Len(t, rec.calls, 1)
	assert.Error(t, rec.calls[0].err)
}

func TestStore_PresignGet_IsOfflineAndRepeatable(t *testing.T) {
	t.Parallel()

	fake := &fakeS3{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	store := newTestStore(t, srv.URL, nil)

	key := "predictions/" + uuid.NewString() + "/1-a.jpg"
	first, err := store.PresignGet(context.Background(), key)
	require.NoError(t, err)
	second, err := store.PresignGet(context.Background(), key)
	require.NoError(t, err)

	for _, raw := range []string{first, second} {
		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "/plant-disease-uploads/"+key, u.Path)
		assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	}
	assert.Empty(t, fake.recorded(), "presigning must not touch the object")
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	fake := &fakeS3{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	store := newTestStore(t, srv.URL, nil)

	require.NoError(t, store.Delete(context.Background(), "predictions/u/1.jpg"))

	reqs := fake.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodDelete, reqs[0].Method)
	assert.Equal(t, "/plant-disease-uploads/predictions/u/1.jpg", reqs[0].Path)
}

func TestStore_OwnsKey(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, "http://localhost:9000", nil)
	owner := uuid.New()

	tests := []struct {
		key  string
		want bool
	}{
		{"predictions/" + owner.String() + "/1-a.jpg", true},
		{"predictions/" + uuid.NewString() + "/1-a.jpg", false},
		{"predictions/" + owner.String(), false},
		{"predictions/" + owner.String() + "/../other/1.jpg", false},
		{"other/" + owner.String() + "/1.jpg", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, store.OwnsKey(owner, tt.key), tt.key)
	}
}

func TestStore_Ping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "bucket reachable", status: 0},
		{name: "access denied", status: http.StatusForbidden, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := &fakeS3{status: tt.status}
			srv := httptest.NewServer(fake)
			t.Cleanup(srv.Close)
			store := newTestStore(t, srv.URL, nil)

			err := store.Ping(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUpstream)
			} else {
				assert.NoError(t, err)
			}

			reqs := fake.recorded()
			require.Len(t, reqs, 1)
			assert.Equal(t, http.MethodHead, reqs[0].Method)
			assert.Equal(t, "/plant-disease-uploads", strings.TrimSuffix(reqs[0].Path, "/"))
		})
	}
}

func TestStore_Upload_PresignFailureKeepsKey(t *testing.T) {
	t.Parallel()

	fake := &fakeS3{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	store := newTestStore(t, srv.URL, nil)

	expired := aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		return aws.Credentials{}, errors.New("credentials expired")
	})
	store.presigner = s3.NewPresignClient(s3.New(s3.Options{
		Region:       "us-east-1",
		Credentials:  expired,
		BaseEndpoint: aws.String(srv.URL),
		UsePathStyle: true,
	}))

	owner := uuid.New()
	obj, err := store.Upload(context.Background(), owner, pngHeader, "leaf.png")
	require.NoError(t, err)

	assert.True(t, store.OwnsKey(owner, obj.Key), obj.Key)
	assert.Empty(t, obj.URL)
	assert.Equal(t, "image/png", obj.ContentType)

	reqs := fake.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPut, reqs[0].Method)
	assert.Equal(t, "/plant-disease-uploads/"+obj.Key, reqs[0].Path)
}
