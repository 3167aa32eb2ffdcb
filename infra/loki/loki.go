package loki

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	pushPath      = "/loki/api/v1/push"
	flushAt       = 20
	flushInterval = time.Second
)

// Writer buffers log lines and ships them to Loki's push API. It satisfies
// zapcore.WriteSyncer so it can be teed next to the local log output.
type Writer struct {
	url    string
	labels map[string]string
	client *http.Client

	mu     sync.Mutex
	buf    [][2]string
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

type pushRequest struct {
	Streams []stream `json:"streams"`
}

type stream struct {
	Stream map[string]string `json:"stream"`
	Values [][2]string       `json:"values"`
}

// NewWriter returns a Writer pushing to baseURL (e.g. http://loki:3100) under
// the given stream labels. It returns nil when baseURL is empty.
func NewWriter(baseURL string, labels map[string]string) *Writer {
	if baseURL == "" {
		return nil
	}
	w := &Writer{
		url:    strings.TrimSuffix(baseURL, "/") + pushPath,
		labels: labels,
		client: &http.Client{Timeout: 5 * time.Second},
		buf:    make([][2]string, 0, flushAt),
		ticker: time.NewTicker(flushInterval),
		done:   make(chan struct{}),
	}
	go w.flushLoop()
	return w
}

// Write buffers every non-empty newline separated line of p.
func (w *Writer) Write(p []byte) (int, error) {
	now := strconv.FormatInt(time.Now().UnixNano(), 10)
	w.mu.Lock()
	for _, line := range bytes.Split(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		w.buf = append(w.buf, [2]string{now, string(line)})
	}
	needFlush := len(w.buf) >= flushAt
	w.mu.Unlock()
	if needFlush {
		if err := w.flush(); err != nil {
			return len(p), err
		}
	}
	return len(p), nil
}

// Sync pushes everything buffered so far.
func (w *Writer) Sync() error {
	return w.flush()
}

func (w *Writer) flushLoop() {
	for {
		select {
		case <-w.done:
			return
		case <-w.ticker.C:
			_ = w.flush()
		}
	}
}

func (w *Writer) flush() error {
	w.mu.Lock()
	if len(w.buf) == 0 {
		w.mu.Unlock()
		return nil
	}
	values := w.buf
	w.buf = make([][2]string, 0, flushAt)
	w.mu.Unlock()

	raw, err := json.Marshal(pushRequest{Streams: []stream{{Stream: w.labels, Values: values}}})
	if err != nil {
		return fmt.Errorf("loki marshal: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, w.url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("loki request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("loki push: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("loki push: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// Close flushes the remaining buffer and stops the background flusher.
func (w *Writer) Close() error {
	w.once.Do(func() {
		w.ticker.Stop()
		close(w.done)
	})
	return w.flush()
}
