package middlewarectx

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikaa770/noire-backend/internal/http/response"
	"github.com/nikaa770/noire-backend/internal/lib/messages"
)

type policyStub struct {
	authenticated bool
}

func (p policyStub) IsAuthenticated(_ context.Context) bool {
	return p.authenticated
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestSessionGuard(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		wantCode      int
		wantNext      bool
	}{
		{name: "authenticated passes through", authenticated: true, wantCode: http.StatusOK, wantNext: true},
		{name: "guest is rejected", authenticated: false, wantCode: http.StatusUnauthorized, wantNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			guard := SessionGuard(policyStub{authenticated: tt.authenticated}, newNoopLogger())

			req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", nil)
			rr := httptest.NewRecorder()
			guard(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)

			if !tt.wantNext {
				var resp response.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, response.StatusError, resp.Status)
				assert.Equal(t, messages.NoAccount, resp.Error)
			}
		})
	}
}
