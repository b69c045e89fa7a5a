package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/recipe-keeper/internal/middlewares"
	"github.com/sbilibin2017/recipe-keeper/internal/models"
	"github.com/sbilibin2017/recipe-keeper/internal/services"
)

func withUser(r *http.Request, user *models.UserDB) *http.Request {
	return r.WithContext(middlewares.WithUser(r.Context(), user))
}

func TestAddBookmarkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "john", Email: "john@example.com"}

	tests := []struct {
		name         string
		body         string
		anonymous    bool
		mockSetup    func(m *MockBookmarker)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "created",
			body: `{"recipe_id":"262682"}`,
			mockSetup: func(m *MockBookmarker) {
				m.EXPECT().AddBookmark(gomock.Any(), user.UserID, "262682").Return(services.BookmarkCreated, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]string{"recipe_id": "262682", "status": "created"},
		},
		{
			name: "already exists",
			body: `{"recipe_id":"262682"}`,
			mockSetup: func(m *MockBookmarker) {
				m.EXPECT().AddBookmark(gomock.Any(), user.UserID, "262682").Return(services.BookmarkAlreadyExists, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"recipe_id": "262682", "status": "already_exists"},
		},
		{
			name: "unknown recipe",
			body: `{"recipe_id":"999999999"}`,
			mockSetup: func(m *MockBookmarker) {
				m.EXPECT().AddBookmark(gomock.Any(), user.UserID, "999999999").Return(services.BookmarkOutcome(0), services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]string{"error": "recipe not found"},
		},
		{
			name: "catalog down",
			body: `{"recipe_id":"262682"}`,
			mockSetup: func(m *MockBookmarker) {
				m.EXPECT().AddBookmark(gomock.Any(), user.UserID, "262682").
					Return(services.BookmarkOutcome(0), &services.DependencyError{Op: "recipe detail", Err: errors.New("503")})
			},
			expectedCode: http.StatusBadGateway,
			expectedBody: map[string]string{"error": "could not retrieve recipe"},
		},
		{
			name: "store failure",
			body: `{"recipe_id":"262682"}`,
			mockSetup: func(m *MockBookmarker) {
				m.EXPECT().AddBookmark(gomock.Any(), user.UserID, "262682").
					Return(services.BookmarkOutcome(0), &services.StorageError{Op: "save bookmark", Err: errors.New("conn reset")})
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         `{recipe_id}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
		{
			name:         "missing recipe id",
			body:         `{}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "anonymous",
			body:         `{"recipe_id":"262682"}`,
			anonymous:    true,
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]string{"error": "unauthorized"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBookmarker(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/bookmarks", bytes.NewBufferString(tt.body))
			if !tt.anonymous {
				req = withUser(req, user)
			}
			rr := httptest.NewRecorder()
			NewAddBookmarkHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedBody, resp)
			}
		})
	}
}

func TestListBookmarksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "john", Email: "john@example.com"}
	recipes := []models.BookmarkedRecipe{
		{BookmarkID: uuid.New(), RecipeID: "262682", Name: "Thai Sweet Potato Veggie Burgers", BookmarkedAt: time.Unix(1700000000, 0).UTC()},
		{BookmarkID: uuid.New(), RecipeID: "227961", Name: "Cajun Spiced Black Bean Burger", BookmarkedAt: time.Unix(1700000100, 0).UTC()},
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockBookmarker(ctrl)
		mockSvc.EXPECT().ListBookmarks(gomock.Any(), user.UserID).Return(recipes, nil)

		rr := httptest.NewRecorder()
		NewListBookmarksHandler(mockSvc).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/bookmarks", nil), user))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp BookmarksResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "john", resp.Username)
		assert.Equal(t, "john@example.com", resp.Email)
		assert.Equal(t, recipes, resp.Recipes)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		mockSvc := NewMockBookmarker(ctrl)
		mockSvc.EXPECT().ListBookmarks(gomock.Any(), user.UserID).Return([]models.BookmarkedRecipe{}, nil)

		rr := httptest.NewRecorder()
		NewListBookmarksHandler(mockSvc).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/bookmarks", nil), user))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"recipes":[]`)
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc := NewMockBookmarker(ctrl)
		mockSvc.EXPECT().ListBookmarks(gomock.Any(), user.UserID).
			Return(nil, &services.StorageError{Op: "list bookmarks", Err: errors.New("conn reset")})

		rr := httptest.NewRecorder()
		NewListBookmarksHandler(mockSvc).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/bookmarks", nil), user))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewListBookmarksHandler(NewMockBookmarker(ctrl)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/bookmarks", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestBookmarkImagesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "john"}

	tests := []struct {
		name         string
		images       []string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "images",
			images:       []string{"https://img/1.jpg", "https://img/2.jpg"},
			expectedCode: http.StatusOK,
			expectedBody: `{"images":["https://img/1.jpg","https://img/2.jpg"]}`,
		},
		{
			name:         "no bookmarks",
			expectedCode: http.StatusOK,
			expectedBody: `{"images":[]}`,
		},
		{
			name:         "store failure",
			err:          &services.StorageError{Op: "list bookmarks", Err: errors.New("conn reset")},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBookmarker(ctrl)
			mockSvc.EXPECT().BookmarkImages(gomock.Any(), user.UserID).Return(tt.images, tt.err)

			rr := httptest.NewRecorder()
			NewBookmarkImagesHandler(mockSvc).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/bookmarks/images", nil), user))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
