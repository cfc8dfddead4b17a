package service

import (
	"errors"

	"github.com/google/uuid"

	"go-laundry-console/internal/model"
	"go-laundry-console/internal/repository"
	"go-laundry-console/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
	ResetPassword(username, oldPassword, newPassword string) error
}

type LoginResponse struct {
	Token    string             `json:"token"`
	User     model.UserResponse `json:"user"`
	Features []model.Feature    `json:"features"` // Flat feature list for the client-side menu
}

type TokenValidationResponse struct {
	User     model.UserResponse `json:"user"`
	Features []model.Feature    `json:"features"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// Single session: rotate the token version so earlier tokens die
	newTokenVersion := uuid.New().String()
	if err := s.userRepo.UpdateTokenVersion(user.ID, newTokenVersion); err != nil {
		return nil, errors.New("failed to update session")
	}

	token, err := jwt.GenerateToken(user.ID, user.Username, user.Name, string(user.Role), newTokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:    token,
		User:     user.ToResponse(),
		Features: user.Role.AccessibleFeatures(),
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if user.TokenVersion != claims.TokenVersion {
		return nil, jwt.ErrInvalidToken
	}

	return &TokenValidationResponse{
		User:     user.ToResponse(),
		Features: user.Role.AccessibleFeatures(),
	}, nil
}

func (s *authService) ResetPassword(username, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return ErrUserNotFound
	}

	if !user.CheckPassword(oldPassword) {
		return ErrWrongPassword
	}

	if err := user.SetPassword(newPassword); err != nil {
		return errors.New("failed to hash new password")
	}

	return s.userRepo.UpdatePassword(user.ID, user.Password)
}
