package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"imagetagger/internal/adapters/auth"
	"imagetagger/internal/delivery/http/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

func TestRequireAuth(t *testing.T) {
	codec := auth.NewJWTCodec("test-secret")
	token, err := codec.Issue("alice", "user", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "valid token", authHeader: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", authHeader: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty token", authHeader: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUsername, gotRole string
			handler := RequireAuth(codec)(func(w http.ResponseWriter, r *http.Request) {
				gotUsername, _ = UsernameFromContext(r.Context())
				gotRole, _ = RoleFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()
			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "alice", gotUsername)
				assert.Equal(t, "user", gotRole)
			} else {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, helpers.ErrCodeUnauthorized, envelope.Error.Code)
			}
		})
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	codec := auth.NewJWTCodec("test-secret")
	token, err := codec.Issue("alice", "user", -time.Minute)
	require.NoError(t, err)

	handler := RequireAuth(codec)(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for an expired token")
	})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		setRole    bool
		wantStatus int
	}{
		{name: "matching role", role: "admin", setRole: true, wantStatus: http.StatusOK},
		{name: "wrong role", role: "user", setRole: true, wantStatus: http.StatusForbidden},
		{name: "no identity", setRole: false, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireRole("admin")(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.setRole {
				req = req.WithContext(SetIdentity(req.Context(), "someone", tt.role))
			}
			rr := httptest.NewRecorder()
			handler(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		handler := CORS([]string{"*"}, next)
		req := httptest.NewRequest(http.MethodGet, "/groups", nil)
		req.Header.Set("Origin", "http://example.com")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, "http://example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("listed origin allowed", func(t *testing.T) {
		handler := CORS([]string{"http://localhost:3000"}, next)
		req := httptest.NewRequest(http.MethodGet, "/groups", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin gets no header", func(t *testing.T) {
		handler := CORS([]string{"http://localhost:3000"}, next)
		req := httptest.NewRequest(http.MethodGet, "/groups", nil)
		req.Header.Set("Origin", "http://evil.example")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		handler := CORS([]string{"*"}, next)
		req := httptest.NewRequest(http.MethodOptions, "/groups", nil)
		req.Header.Set("Origin", "http://example.com")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestLoggingMiddleware_PassesThrough(t *testing.T) {
	handler := LoggingMiddleware(testLogger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
