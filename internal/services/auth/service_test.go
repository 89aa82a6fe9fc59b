package auth

import (
	"context"
	"errors"
	"testing"

	apperrors "officedesk/internal/errors"
	"officedesk/internal/models"
	"officedesk/internal/repositories"
	"officedesk/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-access")
	t.Setenv("REFRESH_SECRET", "test-refresh")

	employee := &models.User{
		ID:           "u-1",
		Email:        "sam@company.com",
		Name:         "Sam",
		Password:     hashed(t, "secret1"),
		Role:         models.RoleEmployee,
		Designation:  models.DesignationUpseller,
		TokenVersion: 2,
	}

	tests := []struct {
		name      string
		email     string
		password  string
		role      string
		setupMock func(*MockUserRepository)
		wantErr   error
	}{
		{
			name:     "employee logs in",
			email:    " Sam@Company.com ",
			password: "secret1",
			role:     models.RoleEmployee,
			setupMock: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "sam@company.com").Return(employee, nil)
			},
		},
		{
			name:     "wrong role is rejected",
			email:    "sam@company.com",
			password: "secret1",
			role:     models.RoleSuperAdmin,
			setupMock: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "sam@company.com").Return(employee, nil)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "sam@company.com",
			password: "nope",
			role:     models.RoleEmployee,
			setupMock: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "sam@company.com").Return(employee, nil)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "ghost@company.com",
			password: "secret1",
			role:     models.RoleEmployee,
			setupMock: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "ghost@company.com").Return(nil, repositories.ErrUserNotFound)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:      "missing password",
			email:     "sam@company.com",
			role:      models.RoleEmployee,
			setupMock: func(m *MockUserRepository) {},
			wantErr:   apperrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := NewService(repo)

			user, tokens, err := svc.Login(context.Background(), tt.email, tt.password, tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tokens)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, employee.ID, user.ID)

			_, claims, err := utils.ParseToken(tokens.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, "u-1", claims.UserID)
			assert.Equal(t, 2, claims.TokenVersion)
			assert.True(t, claims.HasPermission(models.PermissionPaymentLinkWrite))
			repo.AssertExpectations(t)
		})
	}
}

func TestRefreshTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-access")
	t.Setenv("REFRESH_SECRET", "test-refresh")

	user := &models.User{ID: "u-1", Email: "sam@company.com", Role: models.RoleEmployee, TokenVersion: 1}
	_, refresh, err := utils.GenerateTokens(ClaimsFor(user))
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		setupMock func(*MockUserRepository)
		wantErr   bool
	}{
		{
			name:  "valid token",
			token: refresh,
			setupMock: func(m *MockUserRepository) {
				m.On("GetByID", mock.Anything, "u-1").Return(user, nil)
			},
		},
		{
			name:  "revoked by logout",
			token: refresh,
			setupMock: func(m *MockUserRepository) {
				bumped := *user
				bumped.TokenVersion = 2
				m.On("GetByID", mock.Anything, "u-1").Return(&bumped, nil)
			},
			wantErr: true,
		},
		{
			name:      "garbage token",
			token:     "garbage",
			setupMock: func(m *MockUserRepository) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			tokens, err := NewService(repo).RefreshTokens(context.Background(), tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, tokens.AccessToken)
			assert.NotEmpty(t, tokens.RefreshToken)
		})
	}
}

func TestLogoutBumpsTokenVersion(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("IncrementTokenVersion", mock.Anything, "u-1").Return(nil)

	require.NoError(t, NewService(repo).Logout(context.Background(), "u-1"))
	repo.AssertExpectations(t)
}

func TestChangePassword(t *testing.T) {
	user := &models.User{ID: "u-1", Password: hashed(t, "old-secret"), TokenVersion: 4}

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByID", mock.Anything, "u-1").Return(user, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.TokenVersion == 5 &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("new-secret")) == nil
		})).Return(nil)

		err := NewService(repo).ChangePassword(context.Background(), "u-1", "old-secret", "new-secret")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("wrong old password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByID", mock.Anything, "u-1").Return(&models.User{ID: "u-1", Password: hashed(t, "old-secret")}, nil)

		err := NewService(repo).ChangePassword(context.Background(), "u-1", "wrong", "new-secret")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("too short", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByID", mock.Anything, "u-1").Return(&models.User{ID: "u-1", Password: hashed(t, "old-secret")}, nil)

		err := NewService(repo).ChangePassword(context.Background(), "u-1", "old-secret", "abc")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestGetUserTokenVersion(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByID", mock.Anything, "u-1").Return(&models.User{ID: "u-1", TokenVersion: 7}, nil)
	repo.On("GetByID", mock.Anything, "gone").Return(nil, repositories.ErrUserNotFound)
	svc := NewService(repo)

	v, err := svc.GetUserTokenVersion(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = svc.GetUserTokenVersion(context.Background(), "gone")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.False(t, errors.Is(err, apperrors.ErrInvalidInput))
}
