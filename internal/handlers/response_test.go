package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/recipe-keeper/internal/services"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "catalog failure",
			err:          &services.DependencyError{Op: "search", Err: errors.New("boom")},
			expectedCode: http.StatusBadGateway,
			expectedMsg:  "could not retrieve recipe",
		},
		{
			name:         "catalog timeout",
			err:          fmt.Errorf("add bookmark: %w", &services.DependencyError{Op: "recipe detail", Err: context.DeadlineExceeded}),
			expectedCode: http.StatusBadGateway,
			expectedMsg:  "could not retrieve recipe",
		},
		{
			name:         "incomplete recipe",
			err:          services.ErrIncompleteRecipe,
			expectedCode: http.StatusBadGateway,
			expectedMsg:  "could not retrieve recipe",
		},
		{
			name:         "not found",
			err:          services.ErrNotFound,
			expectedCode: http.StatusNotFound,
			expectedMsg:  "recipe not found",
		},
		{
			name:         "store failure",
			err:          &services.StorageError{Op: "save bookmark", Err: errors.New("conn reset")},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Internal server error",
		},
		{
			name:         "unauthenticated",
			err:          services.ErrUnauthenticated,
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "unauthorized",
		},
		{
			name:         "empty recipe id",
			err:          services.ErrInvalidRecipeID,
			expectedCode: http.StatusBadRequest,
			expectedMsg:  services.ErrInvalidRecipeID.Error(),
		},
		{
			name:         "empty query",
			err:          services.ErrEmptyQuery,
			expectedCode: http.StatusBadRequest,
			expectedMsg:  services.ErrEmptyQuery.Error(),
		},
		{
			name:         "unknown error",
			err:          errors.New("???"),
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeServiceError(rr, tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp.Error)
		})
	}
}
