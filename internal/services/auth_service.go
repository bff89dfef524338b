package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yukikurage/blog/internal/models"
	"github.com/yukikurage/blog/internal/repository"
	"github.com/yukikurage/blog/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrDuplicateUsername    = errors.New("user with this username already exists")
	ErrDuplicateEmail       = errors.New("user with this email already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new user after checking that username and email are free.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	if err := s.ensureUsernameFree(username); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent registration; tell which column collided.
			return nil, s.duplicateCause(username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("Registered user %q (id=%d)", user.Username, user.ID)
	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user. Unknown
// usernames and wrong passwords produce the same error. The username is
// trimmed the same way Register trims it.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, input.Password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// GetUserByUsername retrieves a user by username.
func (s *AuthService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdateUsername renames a user. Submitting the current username again is a no-op.
func (s *AuthService) UpdateUsername(userID uint64, username string) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	if username == user.Username {
		return user, nil
	}

	if err := s.ensureUsernameFree(username); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateUsername(userID, username); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrDuplicateUsername
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrUserNotFound
		default:
			return nil, fmt.Errorf("failed to update username: %w", err)
		}
	}

	user.Username = username
	return user, nil
}

func (s *AuthService) ensureUsernameFree(username string) error {
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}
	return nil
}

// duplicateCause decides which unique column a failed insert collided with
func (s *AuthService) duplicateCause(username string) error {
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return ErrDuplicateUsername
	}
	return ErrDuplicateEmail
}
