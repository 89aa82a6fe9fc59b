package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	apperrors "officedesk/internal/errors"
	"officedesk/internal/models"
	"officedesk/internal/repositories"
	"officedesk/internal/utils"
	"officedesk/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// Tokens is the pair handed out on login and refresh.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Service interface {
	Login(ctx context.Context, email, password, role string) (*models.User, *Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*Tokens, error)
	Logout(ctx context.Context, userID string) error
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserTokenVersion(ctx context.Context, userID string) (int, error)
}

type service struct {
	userRepo repositories.UserRepository
}

func NewService(userRepo repositories.UserRepository) Service {
	if userRepo == nil {
		panic("userRepo is required")
	}
	return &service{
		userRepo: userRepo,
	}
}

// Login checks the credentials and that the account holds role. A wrong
// role is reported exactly like a wrong password.
func (s *service) Login(ctx context.Context, email, password, role string) (*models.User, *Tokens, error) {
	v := validation.New()
	v.Login(email, password)
	if err := v.Err(); err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, err
		}
		log.Printf("Login failed: user not found for %s", email)
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("Login failed: incorrect password for user %s", user.ID)
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if user.Role != role {
		log.Printf("Login failed: user %s is %s, wanted %s", user.ID, user.Role, role)
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *service) RefreshTokens(ctx context.Context, refreshToken string) (*Tokens, error) {
	_, claims, err := utils.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrInvalidCredentials, "invalid refresh token")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.New(apperrors.ErrInvalidCredentials, "user not found")
		}
		return nil, err
	}

	if user.TokenVersion != claims.TokenVersion {
		return nil, apperrors.New(apperrors.ErrInvalidCredentials, "token has been revoked")
	}

	return issueTokens(user)
}

func (s *service) Logout(ctx context.Context, userID string) error {
	return s.userRepo.IncrementTokenVersion(ctx, userID)
}

func (s *service) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return apperrors.New(apperrors.ErrInvalidCredentials, "invalid old password")
	}

	v := validation.New()
	v.Password("password", newPassword)
	if err := v.Err(); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	user.Password = string(hashed)
	user.TokenVersion++ // Invalidate existing tokens

	return s.userRepo.Update(ctx, user)
}

func (s *service) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.New(apperrors.ErrNotFound, "user not found")
	}
	return user, err
}

func (s *service) GetUserTokenVersion(ctx context.Context, userID string) (int, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.TokenVersion, nil
}

// ClaimsFor builds the token claims of a user.
func ClaimsFor(user *models.User) *models.UserClaims {
	return &models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Role:         user.Role,
		Designation:  user.Designation,
		Permissions:  models.GetDefaultPermissions(user.Role, user.Designation),
		TokenVersion: user.TokenVersion,
	}
}

func issueTokens(user *models.User) (*Tokens, error) {
	access, refresh, err := utils.GenerateTokens(ClaimsFor(user))
	if err != nil {
		log.Println("Error generating tokens:", err)
		return nil, errors.New("error generating tokens")
	}
	return &Tokens{AccessToken: access, RefreshToken: refresh}, nil
}
