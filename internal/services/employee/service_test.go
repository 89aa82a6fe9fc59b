package employee

import (
	"context"
	"testing"

	apperrors "officedesk/internal/errors"
	"officedesk/internal/models"
	"officedesk/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	valid := func() *models.CreateEmployeeInput {
		return &models.CreateEmployeeInput{
			Name:        "Priya",
			Email:       "Priya@Company.com",
			Password:    "secret1",
			Designation: models.DesignationFrontSeller,
		}
	}

	tests := []struct {
		name      string
		input     func() *models.CreateEmployeeInput
		setupMock func(*MockUserRepository)
		wantErr   error
	}{
		{
			name:  "creates employee",
			input: valid,
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.Email == "priya@company.com" &&
						u.Role == models.RoleEmployee &&
						u.CreatedBy != nil && *u.CreatedBy == "admin-1" &&
						bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")) == nil
				})).Return(nil)
			},
		},
		{
			name: "short password",
			input: func() *models.CreateEmployeeInput {
				in := valid()
				in.Password = "12345"
				return in
			},
			setupMock: func(m *MockUserRepository) {},
			wantErr:   apperrors.ErrInvalidInput,
		},
		{
			name: "unknown designation",
			input: func() *models.CreateEmployeeInput {
				in := valid()
				in.Designation = "Astronaut"
				return in
			},
			setupMock: func(m *MockUserRepository) {},
			wantErr:   apperrors.ErrInvalidInput,
		},
		{
			name:  "duplicate email",
			input: valid,
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(repositories.ErrEmailTaken)
			},
			wantErr: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			user, err := NewService(repo).Create(context.Background(), tt.input(), "admin-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Priya", user.Name)
			repo.AssertExpectations(t)
		})
	}
}

func TestListOnlyEmployees(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("List", mock.Anything, repositories.UserFilter{
		Role: models.RoleEmployee, Search: "pri", Offset: 10, Limit: 10,
	}).Return([]*models.User{{ID: "u-1"}}, int64(11), nil)

	users, total, err := NewService(repo).List(context.Background(), "  pri ", 10, 10)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, int64(11), total)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockUserRepository)
		wantErr   error
	}{
		{
			name: "employee",
			setupMock: func(m *MockUserRepository) {
				m.On("GetByID", mock.Anything, "u-1").Return(&models.User{ID: "u-1", Role: models.RoleEmployee}, nil)
				m.On("Delete", mock.Anything, "u-1").Return(nil)
			},
		},
		{
			name: "super admin is protected",
			setupMock: func(m *MockUserRepository) {
				m.On("GetByID", mock.Anything, "u-1").Return(&models.User{ID: "u-1", Role: models.RoleSuperAdmin}, nil)
			},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name: "missing",
			setupMock: func(m *MockUserRepository) {
				m.On("GetByID", mock.Anything, "u-1").Return(nil, repositories.ErrUserNotFound)
			},
			wantErr: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			err := NewService(repo).Delete(context.Background(), "u-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	self := &models.UserClaims{UserID: "u-1", Role: models.RoleEmployee}
	admin := &models.UserClaims{UserID: "admin-1", Role: models.RoleSuperAdmin}

	tests := []struct {
		name      string
		actor     *models.UserClaims
		input     *models.UpdateProfileInput
		setupMock func(*MockUserRepository)
		wantErr   error
		check     func(*testing.T, *models.User)
	}{
		{
			name:  "self edit",
			actor: self,
			input: &models.UpdateProfileInput{Name: strPtr(" Sam K "), AvatarURL: strPtr("https://cdn.test/a.png")},
			setupMock: func(m *MockUserRepository) {
				m.On("GetByID", mock.Anything, "u-1").Return(&models.User{ID: "u-1", Name: "Sam", Designation: models.DesignationDeveloper}, nil)
				m.On("Update", mock.Anything, mock.Anything).Return(nil)
			},
			check: func(t *testing.T, u *models.User) {
				assert.Equal(t, "Sam K", u.Name)
				assert.Equal(t, "https://cdn.test/a.png", u.AvatarURL)
				assert.Equal(t, models.DesignationDeveloper, u.Designation)
			},
		},
		{
			name:  "admin edits anyone",
			actor: admin,
			input: &models.UpdateProfileInput{Designation: strPtr(models.DesignationUpseller)},
			setupMock: func(m *MockUserRepository) {
				m.On("GetByID", mock.Anything, "u-1").Return(&models.User{ID: "u-1"}, nil)
				m.On("Update", mock.Anything, mock.Anything).Return(nil)
			},
			check: func(t *testing.T, u *models.User) {
				assert.Equal(t, models.DesignationUpseller, u.Designation)
			},
		},
		{
			name:      "employee cannot edit others",
			actor:     &models.UserClaims{UserID: "u-2", Role: models.RoleEmployee},
			input:     &models.UpdateProfileInput{Name: strPtr("X")},
			setupMock: func(m *MockUserRepository) {},
			wantErr:   apperrors.ErrForbidden,
		},
		{
			name:      "bad avatar url",
			actor:     self,
			input:     &models.UpdateProfileInput{AvatarURL: strPtr("not a url")},
			setupMock: func(m *MockUserRepository) {},
			wantErr:   apperrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			user, err := NewService(repo).UpdateProfile(context.Background(), tt.actor, "u-1", tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, user)
			repo.AssertExpectations(t)
		})
	}
}
