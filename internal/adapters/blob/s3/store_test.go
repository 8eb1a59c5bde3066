package s3

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 responde PutObject en memoria; suficiente para el adapter.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func (f *fakeS3) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if req.Method != http.MethodPut {
		return &http.Response{StatusCode: http.StatusNotImplemented, Body: io.NopCloser(bytes.NewReader(nil)), Header: http.Header{}}, nil
	}
	b, _ := io.ReadAll(req.Body)
	key := strings.TrimPrefix(req.URL.Path, "/")
	f.objects[key] = b
	f.types[key] = req.Header.Get("Content-Type")
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewReader(nil)),
		Header:     http.Header{"Etag": {"\"etag123\""}},
	}, nil
}

func newTestStore(t *testing.T, publicBase string) (*Store, *fakeS3) {
	t.Helper()
	rt := &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
	s, err := New(context.Background(), Config{
		Region:          "us-east-1",
		Bucket:          "photos",
		Endpoint:        "https://mock.s3.local",
		PathStyle:       true,
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
		PublicBaseURL:   publicBase,
		HTTPClient:      &http.Client{Transport: rt},
	})
	require.NoError(t, err)
	return s, rt
}

func TestStore_Put(t *testing.T) {
	s, rt := newTestStore(t, "")

	obj, err := s.Put(context.Background(), "animals/a1/1-tom.jpg", strings.NewReader("jpeg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, int64(4), obj.Size)

	// el SDK puede mandar el body en aws-chunked con checksum al final
	assert.Contains(t, string(rt.objects["photos/animals/a1/1-tom.jpg"]), "jpeg")
	assert.Equal(t, "image/jpeg", rt.types["photos/animals/a1/1-tom.jpg"])
}

func TestStore_URLPresigned(t *testing.T) {
	s, _ := newTestStore(t, "")

	u, err := s.URL(context.Background(), "animals/a1/1-tom.jpg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "https://mock.s3.local/photos/animals/a1/1-tom.jpg?"))
	assert.Contains(t, u, "X-Amz-Signature=")
	assert.Contains(t, u, "X-Amz-Expires=604800")
}

func TestStore_URLPublicBase(t *testing.T) {
	s, _ := newTestStore(t, "https://cdn.example.com/photos/")

	u, err := s.URL(context.Background(), "animals/a1/1-tom.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/photos/animals/a1/1-tom.jpg", u)
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.Error(t, err)
}
