package loki

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pushRecorder struct {
	mu       sync.Mutex
	requests []pushRequest
	paths    []string
}

func (p *pushRecorder) handler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body pushRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		p.mu.Lock()
		p.requests = append(p.requests, body)
		p.paths = append(p.paths, r.URL.Path)
		p.mu.Unlock()
		w.WriteHeader(status)
	}
}

func (p *pushRecorder) lines() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, req := range p.requests {
		for _, s := range req.Streams {
			for _, v := range s.Values {
				out = append(out, v[1])
			}
		}
	}
	return out
}

func TestNewWriterDisabled(t *testing.T) {
	assert.Nil(t, NewWriter("", map[string]string{"job": "cart"}))
}

func TestWriterPushesOnSync(t *testing.T) {
	rec := &pushRecorder{}
	srv := httptest.NewServer(rec.handler(http.StatusNoContent))
	defer srv.Close()

	w := NewWriter(srv.URL+"/", map[string]string{"job": "cart"})
	defer w.Close()

	n, err := w.Write([]byte("first\n\nsecond\n"))
	require.NoError(t, err)
	assert.Equal(t, len("first\n\nsecond\n"), n)
	require.NoError(t, w.Sync())

	assert.Equal(t, []string{"first", "second"}, rec.lines())
	rec.mu.Lock()
	assert.Equal(t, pushPath, rec.paths[0])
	assert.Equal(t, map[string]string{"job": "cart"}, rec.requests[0].Streams[0].Stream)
	rec.mu.Unlock()
}

func TestWriterFlushesWhenBufferFills(t *testing.T) {
	rec := &pushRecorder{}
	srv := httptest.NewServer(rec.handler(http.StatusNoContent))
	defer srv.Close()

	w := NewWriter(srv.URL, map[string]string{"job": "cart"})
	defer w.Close()

	for i := 0; i < flushAt; i++ {
		_, err := w.Write([]byte("line\n"))
		require.NoError(t, err)
	}
	assert.Len(t, rec.lines(), flushAt)
}

func TestWriterReportsRejectedPush(t *testing.T) {
	rec := &pushRecorder{}
	srv := httptest.NewServer(rec.handler(http.StatusBadRequest))
	defer srv.Close()

	w := NewWriter(srv.URL, map[string]string{"job": "cart"})
	_, _ = w.Write([]byte("line\n"))
	assert.ErrorContains(t, w.Close(), "unexpected status 400")
	assert.NoError(t, w.Close())
}
