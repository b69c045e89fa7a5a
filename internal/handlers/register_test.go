package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/recipe-keeper/internal/models"
	"github.com/sbilibin2017/recipe-keeper/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	type requestBody struct {
		username string
		password string
		email    string
	}

	tests := []struct {
		name         string
		reqBody      requestBody
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
		rawBody      bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name: "success",
			reqBody: requestBody{
				username: "john",
				password: "secret",
				email:    "john@example.com",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "secret", "john@example.com").
					Return(&models.UserDB{UserID: userID, Username: "john"}, nil)
			},
			expectedCode: 201,
			expectedBody: map[string]string{
				"message": "User registered successfully",
				"user_id": userID.String(),
			},
		},
		{
			name: "user already exists",
			reqBody: requestBody{
				username: "alice",
				password: "password",
				email:    "alice@example.com",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "password", "alice@example.com").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Username already exists"},
		},
		{
			name: "internal server error",
			reqBody: requestBody{
				username: "bob",
				password: "password",
				email:    "bob@example.com",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "password", "bob@example.com").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(RegisterRequest{
					Username: tt.reqBody.username,
					Password: tt.reqBody.password,
					Email:    tt.reqBody.email,
				})
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestRegisterHandler_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: the service must not be reached.
	handler := NewRegisterHandler(NewMockRegisterer(ctrl))

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing username", RegisterRequest{Password: "secret1", Email: "a@b.com"}},
		{"short password", RegisterRequest{Username: "john", Password: "123", Email: "a@b.com"}},
		{"long password", RegisterRequest{Username: "john", Password: strings.Repeat("p", 73), Email: "a@b.com"}},
		{"bad email", RegisterRequest{Username: "john", Password: "secret1", Email: "not-an-email"}},
		{"long username", RegisterRequest{Username: strings.Repeat("u", 65), Password: "secret1", Email: "a@b.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(tt.req)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler(rr, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body)))

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var resp RegisterErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.True(t, strings.HasPrefix(resp.Error, "invalid request:"), resp.Error)
		})
	}
}
