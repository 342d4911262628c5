package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nikaa770/noire-backend/internal/http/response"
	"github.com/nikaa770/noire-backend/internal/lib/messages"
	"github.com/nikaa770/noire-backend/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type ViewMock struct {
	mock.Mock
}

func (m *ViewMock) Snapshot(ctx context.Context) models.ViewState {
	args := m.Called(ctx)
	return args.Get(0).(models.ViewState)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		mockSetup   func(service *ServiceMock, view *ViewMock)
		wantCode    int
		wantStatus  string
		wantMessage string
	}{
		{
			name: "success",
			body: `{"name":"Ana","email":"ANA@X.COM","password":"p","phone":"1"}`,
			mockSetup: func(service *ServiceMock, view *ViewMock) {
				service.On("Register", mock.Anything, mock.MatchedBy(func(req models.RegisterRequest) bool {
					return req.Email == "ANA@X.COM"
				})).Return(&models.User{Name: "Ana", Username: "Ana", Email: "ana@x.com"}, nil).Once()
				view.On("Snapshot", mock.Anything).
					Return(models.ViewState{Authenticated: true, ShowChip: true, ShowLogout: true, Name: "Ana"}).Once()
			},
			wantCode:    http.StatusOK,
			wantStatus:  response.StatusOK,
			wantMessage: messages.Registered,
		},
		{
			name: "empty required field is a silent no-op",
			body: `{"name":"Ana","email":"  ","password":"p","phone":"1"}`,
			mockSetup: func(service *ServiceMock, view *ViewMock) {
				// Сервис не должен вызываться.
			},
			wantCode:   http.StatusOK,
			wantStatus: response.StatusOK,
		},
		{
			name: "whitespace-only fields are a silent no-op",
			body: `{"name":"   ","email":"","password":"","phone":""}`,
			mockSetup: func(service *ServiceMock, view *ViewMock) {
			},
			wantCode:   http.StatusOK,
			wantStatus: response.StatusOK,
		},
		{
			name:       "invalid json",
			body:       `{broken`,
			mockSetup:  func(service *ServiceMock, view *ViewMock) {},
			wantCode:   http.StatusBadRequest,
			wantStatus: response.StatusError,
		},
		{
			name: "storage failure",
			body: `{"name":"Ana","email":"ana@x.com","password":"p","phone":"1"}`,
			mockSetup: func(service *ServiceMock, view *ViewMock) {
				service.On("Register", mock.Anything, mock.Anything).
					Return(nil, errors.New("storage down")).Once()
			},
			wantCode:   http.StatusInternalServerError,
			wantStatus: response.StatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(ServiceMock)
			view := new(ViewMock)
			tt.mockSetup(service, view)

			handler := New(newNoopLogger(), service, view)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)

			var resp struct {
				Status string         `json:"status"`
				Error  string         `json:"error,omitempty"`
				Data   map[string]any `json:"data,omitempty"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, resp.Data["message"])
				assert.Equal(t, "/profile.html", resp.Data["redirect"])
				assert.Equal(t, float64(1200), resp.Data["redirect_after_ms"])
				assert.NotNil(t, resp.Data["view_state"])
			} else {
				assert.Nil(t, resp.Data, "no-op response carries no payload")
			}

			service.AssertExpectations(t)
			view.AssertExpectations(t)
		})
	}
}
