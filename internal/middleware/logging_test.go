package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

// captureLog routes the default logger into a buffer for one test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		handler    http.HandlerFunc
		wantStatus int
		wantBytes  int
		wantLevel  string
	}{
		{
			name:   "implicit 200",
			method: http.MethodGet,
			path:   "/about",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("hello"))
			},
			wantStatus: http.StatusOK,
			wantBytes:  5,
			wantLevel:  "INFO",
		},
		{
			name:   "not found",
			method: http.MethodGet,
			path:   "/missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantLevel:  "INFO",
		},
		{
			name:   "server error logs at error level",
			method: http.MethodGet,
			path:   "/case-studies/acme",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantStatus: http.StatusInternalServerError,
			wantBytes:  len("boom\n"),
			wantLevel:  "ERROR",
		},
		{
			name:   "webhook post",
			method: http.MethodPost,
			path:   "/hooks/content",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"cleared":3}`))
			},
			wantStatus: http.StatusOK,
			wantBytes:  len(`{"cleared":3}`),
			wantLevel:  "INFO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set(RequestIDHeader, "req-42")
			rr := httptest.NewRecorder()
			RequestID(Logger(tt.handler)).ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d", rr.Code, tt.wantStatus)
			}

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("decode log line %q: %v", buf.String(), err)
			}
			checks := map[string]any{
				"msg":        "http request",
				"level":      tt.wantLevel,
				"request_id": "req-42",
				"method":     tt.method,
				"path":       tt.path,
				"status":     float64(tt.wantStatus),
				"bytes":      float64(tt.wantBytes),
			}
			for k, want := range checks {
				if entry[k] != want {
					t.Errorf("%s: got %v, want %v", k, entry[k], want)
				}
			}
		})
	}
}

func TestResponseWriterFirstStatusWins(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)
	rw.Write([]byte("created"))

	if rw.statusCode != http.StatusCreated {
		t.Errorf("statusCode: got %d, want 201", rw.statusCode)
	}
	if rw.bytes != len("created") {
		t.Errorf("bytes: got %d", rw.bytes)
	}
	if rw.Unwrap() != rr {
		t.Error("Unwrap should return the underlying writer")
	}
}
