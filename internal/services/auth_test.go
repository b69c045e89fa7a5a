package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/recipe-keeper/internal/models"
	"github.com/sbilibin2017/recipe-keeper/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name         string
		username     string
		password     string
		email        string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pass123",
			email:    "alice@example.com",
		},
		{
			name:         "user already exists",
			username:     "bob",
			password:     "pass123",
			email:        "bob@example.com",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pass123",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			password:  "pass123",
			email:     "carol@example.com",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
		{
			name:      "lost registration race",
			username:  "dan",
			password:  "pass123",
			email:     "dan@example.com",
			writerErr: models.ErrAlreadyExists,
			wantErr:   services.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, gomock.Any(), tt.email).
					DoAndReturn(func(_ context.Context, username, hash, email string) (*models.UserDB, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						return &models.UserDB{UserID: uuid.New(), Username: username, Email: email, PasswordHash: hash}, nil
					})
			}

			user, err := svc.Register(context.Background(), tt.username, tt.password, tt.email)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()

	tests := []struct {
		name      string
		username  string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		expectJWT string
		loginPass string
	}{
		{
			name:      "successful login",
			username:  "alice",
			user:      &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)},
			expectJWT: "token123",
			loginPass: password,
		},
		{
			name:      "user does not exist",
			username:  "bob",
			wantErr:   services.ErrUserDoesNotExist,
			loginPass: password,
		},
		{
			name:      "invalid password",
			username:  "carol",
			user:      &models.UserDB{UserID: uuid.New(), Username: "carol", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "wrongpass",
		},
		{
			name:      "reader error",
			username:  "eve",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			loginPass: password,
		},
		{
			name:      "JWT generation error",
			username:  "dan",
			user:      &models.UserDB{UserID: userID, Username: "dan", PasswordHash: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
			loginPass: password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID).
					Return(tt.expectJWT, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}
