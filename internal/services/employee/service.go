// Package employee manages employee accounts and user profiles.
package employee

import (
	"context"
	"errors"
	"log"
	"strings"

	apperrors "officedesk/internal/errors"
	"officedesk/internal/models"
	"officedesk/internal/repositories"
	"officedesk/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Create(ctx context.Context, input *models.CreateEmployeeInput, createdBy string) (*models.User, error)
	List(ctx context.Context, search string, offset, limit int) ([]*models.User, int64, error)
	Delete(ctx context.Context, id string) error
	GetProfile(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, actor *models.UserClaims, targetID string, input *models.UpdateProfileInput) (*models.User, error)
}

type service struct {
	repo repositories.UserRepository
}

func NewService(repo repositories.UserRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input *models.CreateEmployeeInput, createdBy string) (*models.User, error) {
	v := validation.New()
	v.CreateEmployee(input)
	if err := v.Err(); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &models.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Password:     string(hashed),
		Role:         models.RoleEmployee,
		Designation:  input.Designation,
		TokenVersion: 1,
	}
	if createdBy != "" {
		user.CreatedBy = &createdBy
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, err
	}

	log.Printf("Employee %s (%s) created by %s", user.ID, user.Designation, createdBy)
	return user, nil
}

func (s *service) List(ctx context.Context, search string, offset, limit int) ([]*models.User, int64, error) {
	return s.repo.List(ctx, repositories.UserFilter{
		Role:   models.RoleEmployee,
		Search: strings.TrimSpace(search),
		Offset: offset,
		Limit:  limit,
	})
}

// Delete removes an employee account. Super admins cannot be deleted here.
func (s *service) Delete(ctx context.Context, id string) error {
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return err
	}
	if user.Role != models.RoleEmployee {
		return apperrors.New(apperrors.ErrForbidden, "only employee accounts can be deleted")
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) GetProfile(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.New(apperrors.ErrNotFound, "user not found")
	}
	return user, err
}

// UpdateProfile applies a partial update; users edit themselves, super admins anyone.
func (s *service) UpdateProfile(ctx context.Context, actor *models.UserClaims, targetID string, input *models.UpdateProfileInput) (*models.User, error) {
	if actor == nil || (actor.UserID != targetID && !actor.IsSuperAdmin()) {
		return nil, apperrors.ErrForbidden
	}

	v := validation.New()
	v.UpdateProfile(input)
	if err := v.Err(); err != nil {
		return nil, err
	}

	user, err := s.GetProfile(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Designation != nil {
		user.Designation = *input.Designation
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
