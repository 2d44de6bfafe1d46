package recognition

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veriface/internal/attendance/models"
	"veriface/pkg/platform/circuit"
)

func compareServer(t *testing.T, status int, response string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
}

func TestCompare_VerdictMapping(t *testing.T) {
	ctx := context.Background()

	t.Run("face match returns similar", func(t *testing.T) {
		srv := compareServer(t, http.StatusOK, `{"face_matches":[{"similarity":98.2}],"unmatched_faces":[]}`)
		defer srv.Close()

		client := New(srv.URL, "test-key", 0)
		verdict, err := client.Compare(ctx, InlineImage([]byte("a")), InlineImage([]byte("b")), 75)
		require.NoError(t, err)
		assert.Equal(t, models.VerdictSimilar, verdict)
	})

	t.Run("empty match list returns different", func(t *testing.T) {
		srv := compareServer(t, http.StatusOK, `{"face_matches":[],"unmatched_faces":[{"similarity":12.5}]}`)
		defer srv.Close()

		client := New(srv.URL, "test-key", 0)
		verdict, err := client.Compare(ctx, InlineImage([]byte("a")), InlineImage([]byte("b")), 75)
		require.NoError(t, err)
		assert.Equal(t, models.VerdictDifferent, verdict)
	})

	t.Run("missing face_matches field is indeterminate", func(t *testing.T) {
		srv := compareServer(t, http.StatusOK, `{"unmatched_faces":[]}`)
		defer srv.Close()

		client := New(srv.URL, "test-key", 0)
		_, err := client.Compare(ctx, InlineImage([]byte("a")), InlineImage([]byte("b")), 75)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIndeterminatePayload)
	})
}

func TestCompare_FailureMapping(t *testing.T) {
	ctx := context.Background()

	t.Run("404 with storage code maps to source image not found", func(t *testing.T) {
		srv := compareServer(t, http.StatusNotFound, `{"error":"storage_key_not_found"}`)
		defer srv.Close()

		client := New(srv.URL, "test-key", 0)
		_, err := client.Compare(ctx, StoredImage("enrollment", "12345"), InlineImage([]byte("b")), 75)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSourceImageNotFound)
	})

	t.Run("plain 404 is a generic failure", func(t *testing.T) {
		srv := compareServer(t, http.StatusNotFound, `not found`)
		defer srv.Close()

		client := New(srv.URL, "test-key", 0)
		_, err := client.Compare(ctx, InlineImage([]byte("a")), InlineImage([]byte("b")), 75)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSourceImageNotFound)
		assert.Contains(t, err.Error(), "status 404")
	})

	t.Run("500 is a generic failure", func(t *testing.T) {
		srv := compareServer(t, http.StatusInternalServerError, `{"error":"internal"}`)
		defer srv.Close()

		client := New(srv.URL, "test-key", 0)
		_, err := client.Compare(ctx, InlineImage([]byte("a")), InlineImage([]byte("b")), 75)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})
}

func TestCompare_Validation(t *testing.T) {
	ctx := context.Background()
	client := New("http://localhost:1", "test-key", 0)

	t.Run("zero source image is rejected", func(t *testing.T) {
		_, err := client.Compare(ctx, Image{}, InlineImage([]byte("b")), 75)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "both images are required")
	})

	t.Run("out of range threshold is rejected", func(t *testing.T) {
		_, err := client.Compare(ctx, InlineImage([]byte("a")), InlineImage([]byte("b")), 101)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})
}

func TestCompare_BreakerFailsFastWhenOpen(t *testing.T) {
	ctx := context.Background()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, "test-key", 0,
		WithBreaker(circuit.New("recognition", circuit.WithFailureThreshold(2))))

	for range 2 {
		_, err := client.Compare(ctx, InlineImage([]byte("a")), InlineImage([]byte("b")), 75)
		require.Error(t, err)
	}
	require.Equal(t, 2, calls)

	// Circuit is open now; the next call never reaches the server.
	_, err := client.Compare(ctx, InlineImage([]byte("a")), InlineImage([]byte("b")), 75)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit is open")
	assert.Equal(t, 2, calls)
}

func TestCompare_RequestShape(t *testing.T) {
	ctx := context.Background()

	var got compareRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"face_matches":[]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "secret-key", 0)
	_, err := client.Compare(ctx, StoredImage("enrollment", "12345"), InlineImage([]byte("frame")), 80)
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, 80.0, got.SimilarityThreshold)
	require.NotNil(t, got.SourceImage.Storage)
	assert.Equal(t, "enrollment", got.SourceImage.Storage.Bucket)
	assert.Equal(t, "12345", got.SourceImage.Storage.Key)
	assert.Equal(t, []byte("frame"), got.TargetImage.Bytes)
}
