// Package memory es un blob store en proceso para dev y tests. Sirve los
// objetos por HTTP bajo el prefijo que se le indique (p.ej. /files).
package memory

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"barangay-animal-tracking/internal/ports/blobstore"
)

type object struct {
	contentType string
	body        []byte
}

type Store struct {
	mu      sync.RWMutex
	objects map[string]object

	baseURL string
}

// New: baseURL es la URL pública bajo la que se monta Handler (sin "/" final).
func New(baseURL string) *Store {
	return &Store{
		objects: make(map[string]object),
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

func (s *Store) Put(ctx context.Context, key string, body io.Reader, contentType string) (blobstore.Object, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return blobstore.Object{}, err
	}
	if contentType == "" {
		contentType = http.DetectContentType(b)
	}

	s.mu.Lock()
	s.objects[key] = object{contentType: contentType, body: b}
	s.mu.Unlock()

	return blobstore.Object{Key: key, ContentType: contentType, Size: int64(len(b))}, nil
}

func (s *Store) URL(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	_, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return "", blobstore.ErrNotFound
	}
	return s.baseURL + "/" + (&url.URL{Path: key}).EscapedPath(), nil
}

// Handler sirve GET {prefix}/{key}. Montar con http.StripPrefix o un router
// que entregue el key en r.URL.Path.
func (s *Store) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		key := strings.TrimPrefix(r.URL.Path, "/")

		s.mu.RLock()
		obj, ok := s.objects[key]
		s.mu.RUnlock()
		if !ok {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", obj.contentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(obj.body)))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = io.Copy(w, bytes.NewReader(obj.body))
		}
	})
}

var _ blobstore.Store = (*Store)(nil)
