// ABOUTME: Tests for request logging middleware
// ABOUTME: Verifies request IDs, status capture, and log output

package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
)

type mockLogger struct {
	mu       sync.Mutex
	infos    []logEntry
	warns    []logEntry
	errors   []logEntry
}

type logEntry struct {
	message string
	fields  map[string]interface{}
}

func (m *mockLogger) Debug(message string, fields map[string]interface{}) {}

func (m *mockLogger) Info(message string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, logEntry{message, fields})
}

func (m *mockLogger) Warn(message string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, logEntry{message, fields})
}

func (m *mockLogger) Error(message string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, logEntry{message, fields})
}

func TestRequestLoggingMiddleware_SetsRequestIDHeader(t *testing.T) {
	logger := &mockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?query=cat", nil))

	requestID := rec.Header().Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("X-Request-ID header was not set")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Errorf("X-Request-ID %q is not a valid UUID", requestID)
	}
}

func TestRequestLoggingMiddleware_LogsStartAndCompletion(t *testing.T) {
	logger := &mockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/search?query=cat", nil))

	if len(logger.infos) != 2 {
		t.Fatalf("logged %d info entries, want 2", len(logger.infos))
	}
	if logger.infos[0].message != "Request started" {
		t.Errorf("first log message = %q, want %q", logger.infos[0].message, "Request started")
	}
	if logger.infos[1].message != "Request completed" {
		t.Errorf("second log message = %q, want %q", logger.infos[1].message, "Request completed")
	}
	if logger.infos[1].fields["status"] != http.StatusOK {
		t.Errorf("completion status = %v, want %d", logger.infos[1].fields["status"], http.StatusOK)
	}
}

func TestRequestLoggingMiddleware_CapturesErrorStatus(t *testing.T) {
	logger := &mockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/search", nil))

	if len(logger.errors) != 1 {
		t.Fatalf("logged %d error entries, want 1", len(logger.errors))
	}
	if logger.errors[0].fields["status"] != http.StatusServiceUnavailable {
		t.Errorf("error status = %v, want %d", logger.errors[0].fields["status"], http.StatusServiceUnavailable)
	}
}

func TestRequestLoggingMiddleware_ImplicitOKOnWrite(t *testing.T) {
	logger := &mockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if len(logger.errors) != 0 {
		t.Errorf("logged %d error entries, want 0", len(logger.errors))
	}
}

func TestExtractIP_XForwardedFor(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "10.0.0.1, 192.168.1.1")

	ip := extractIP(r)
	if ip != "192.168.1.1" {
		t.Errorf("extractIP = %q, want %q", ip, "192.168.1.1")
	}
}

func TestExtractIP_XRealIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Real-IP", "10.0.0.2")

	ip := extractIP(r)
	if ip != "10.0.0.2" {
		t.Errorf("extractIP = %q, want %q", ip, "10.0.0.2")
	}
}

func TestExtractIP_RemoteAddrFallback(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	ip := extractIP(r)
	if ip != r.RemoteAddr {
		t.Errorf("extractIP = %q, want %q", ip, r.RemoteAddr)
	}
}
